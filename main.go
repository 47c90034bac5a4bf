package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtharshh/kwick-backend/config"
	"github.com/xtharshh/kwick-backend/database"
	bookingRepoPkg "github.com/xtharshh/kwick-backend/database/repository/booking"
	messageRepoPkg "github.com/xtharshh/kwick-backend/database/repository/message"
	requestRepoPkg "github.com/xtharshh/kwick-backend/database/repository/request"
	transactionRepoPkg "github.com/xtharshh/kwick-backend/database/repository/transaction"
	userRepoPkg "github.com/xtharshh/kwick-backend/database/repository/user"
	workerRepoPkg "github.com/xtharshh/kwick-backend/database/repository/worker"
	"github.com/xtharshh/kwick-backend/handlers"
	"github.com/xtharshh/kwick-backend/middleware"
	"github.com/xtharshh/kwick-backend/realtime"
	"github.com/xtharshh/kwick-backend/routes"
	"github.com/xtharshh/kwick-backend/services/booking"
	"github.com/xtharshh/kwick-backend/services/chat"
	"github.com/xtharshh/kwick-backend/services/negotiation"
	"github.com/xtharshh/kwick-backend/services/user"
	"github.com/xtharshh/kwick-backend/services/wallet"
	"github.com/xtharshh/kwick-backend/services/worker"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	transactionRepo := transactionRepoPkg.NewMongoTransactionRepo()
	requestRepo := requestRepoPkg.NewMongoServiceRequestRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// realtime hub and negotiation core.
	hub := realtime.NewHub()
	negotiationService := &negotiation.DefaultNegotiationService{
		BookingRepo: bookingRepo,
		WorkerRepo:  workerRepo,
		Offers:      negotiation.NewOfferStore(),
		Broadcaster: hub,
	}
	eventHandler := realtime.NewEventHandler(hub, negotiationService)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	workerService := &worker.DefaultWorkerService{Repo: workerRepo}
	walletService := &wallet.DefaultWalletService{
		Users:   userRepo,
		Workers: workerRepo,
		Txns:    transactionRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		UserRepo:    userRepo,
		Negotiation: negotiationService,
	}
	chatService := &chat.DefaultChatService{
		Repo:  messageRepo,
		Cache: utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:           handlers.NewUserHandler(userService),
		Worker:         handlers.NewWorkerHandler(workerService, walletService),
		Transaction:    handlers.NewTransactionHandler(walletService),
		Booking:        handlers.NewBookingHandler(bookingService),
		ServiceRequest: handlers.NewServiceRequestHandler(requestRepo, hub),
		Message:        handlers.NewMessageHandler(chatService),
		WebSocket:      handlers.NewWebSocketHandler(hub, eventHandler),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
