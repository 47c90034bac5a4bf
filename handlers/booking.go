package handlers

import (
	"errors"
	"net/http"

	"github.com/xtharshh/kwick-backend/services/booking"
	"github.com/xtharshh/kwick-backend/services/negotiation"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingHandler serves the booking lifecycle endpoints, including the
// request/response twin of the realtime price-update path.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /service-booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Time, date, and number of rooms are required"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingsHandler handles GET /service-booking/:mobileNumber.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetByMobileNumber(c.Request.Context(), c.Param("mobileNumber"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByOrderIDHandler handles GET /service-booking/order/:orderId.
func (h *BookingHandler) GetBookingByOrderIDHandler(c *gin.Context) {
	b, err := h.Service.GetByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetLatestBookingsHandler handles GET /service-bookings/latest.
func (h *BookingHandler) GetLatestBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if len(bookings) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No pending bookings found"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllPendingBookingsHandler handles GET /service-booking/all-pending.
func (h *BookingHandler) GetAllPendingBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdatePriceHandler handles POST /service-booking/:bookingId/price. It
// performs the same negotiating transition as the realtime updatePrice
// event, through the same state machine.
func (h *BookingHandler) UpdatePriceHandler(c *gin.Context) {
	var body struct {
		Price      float64 `json:"price"`
		WorkerData struct {
			MobileNumber string `json:"mobileNumber"`
		} `json:"workerData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdatePrice(c.Request.Context(), c.Param("bookingId"), body.Price, negotiation.WorkerData{
		MobileNumber: body.WorkerData.MobileNumber,
	})
	if err != nil {
		c.JSON(negotiationStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// negotiationStatus maps the state machine's error taxonomy to HTTP codes.
func negotiationStatus(err error) int {
	var validationErr *negotiation.ValidationError
	var notFoundErr *negotiation.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
