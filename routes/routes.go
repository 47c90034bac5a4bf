package routes

import (
	"net/http"
	"time"

	"github.com/xtharshh/kwick-backend/config"
	"github.com/xtharshh/kwick-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware whitelists the configured frontend origin.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origin := config.AppConfig.CORSAllowedOrigin
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cors.New(cfg)
}

// RegisterUserRoutes registers customer account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users/register", hb.User.RegisterUserHandler)
	r.GET("/users/profile", hb.User.GetUserProfileHandler)
	r.PUT("/users/profile", hb.User.UpdateUserProfileHandler)
	r.GET("/users/profile/:mobileNumber", hb.User.GetUserProfileHandler)
	r.PUT("/users/profile/:mobileNumber", hb.User.UpdateUserProfileHandler)
	r.GET("/users", hb.User.ListUsersHandler)
	r.GET("/users/:mobileNumber", hb.User.GetUserProfileHandler)
	r.GET("/users/:mobileNumber/balance", hb.User.GetUserBalanceHandler)
	r.POST("/user/update-balance", hb.User.UpdateUserBalanceHandler)
}

// RegisterWorkerRoutes registers worker account and wallet endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/workers/register", hb.Worker.RegisterWorkerHandler)
	r.GET("/workers/profile", hb.Worker.GetWorkerProfileHandler)
	r.PUT("/workers/profile", hb.Worker.UpdateWorkerProfileHandler)
	r.GET("/workers/profile/:mobileNumber", hb.Worker.GetWorkerProfileHandler)
	r.PUT("/workers/profile/:mobileNumber", hb.Worker.UpdateWorkerProfileHandler)
	r.GET("/workers/:mobileNumber", hb.Worker.GetWorkerProfileHandler)
	r.GET("/workers/balance/:mobileNumber", hb.Worker.GetWorkerBalanceHandler)
	r.POST("/workers/addMoney", hb.Worker.AddMoneyHandler)
	r.POST("/workers/withdrawMoney", hb.Worker.WithdrawMoneyHandler)
	r.GET("/workerTransactions/:mobileNumber", hb.Transaction.GetWorkerTransactionsHandler)
}

// RegisterTransactionRoutes registers wallet ledger endpoints.
func RegisterTransactionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/transactions", hb.Transaction.CreateTransactionHandler)
	r.GET("/transactions/:mobileNumber", hb.Transaction.GetTransactionsHandler)
}

// RegisterBookingRoutes registers service booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/service-booking", hb.Booking.CreateBookingHandler)
	r.GET("/service-booking/all-pending", hb.Booking.GetAllPendingBookingsHandler)
	r.GET("/service-booking/order/:orderId", hb.Booking.GetBookingByOrderIDHandler)
	r.GET("/service-booking/:mobileNumber", hb.Booking.GetBookingsHandler)
	r.GET("/service-bookings/latest", hb.Booking.GetLatestBookingsHandler)
	r.POST("/service-booking/:bookingId/price", hb.Booking.UpdatePriceHandler)
	r.POST("/service-request", hb.ServiceRequest.CreateServiceRequestHandler)
}

// RegisterMessageRoutes registers chat endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/messages", hb.Message.CreateMessageHandler)
	r.GET("/api/messages", hb.Message.GetMessagesHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "kwick backend up"})
	})
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(CORSMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterTransactionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)

	r.GET("/ws", hb.WebSocket.ServeWS)
}
