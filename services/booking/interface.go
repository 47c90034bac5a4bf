package booking

import (
	"context"

	bookingRepo "github.com/xtharshh/kwick-backend/database/repository/booking"
	userRepo "github.com/xtharshh/kwick-backend/database/repository/user"
	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/negotiation"
)

// CreateBookingInput carries the fields a customer submits for a new
// service booking.
type CreateBookingInput struct {
	MobileNumber     string   `json:"mobileNumber"`
	SelectedServices []string `json:"selectedServices"`
	NumberOfRooms    int      `json:"numberOfRooms"`
	Date             string   `json:"date"` // "2006-01-02" or RFC 3339
	Time             string   `json:"time"`
	Comments         string   `json:"comments"`
	Areas            []string `json:"areas"`
	Price            float64  `json:"price"`
}

// BookingService manages the durable booking lifecycle around the
// negotiation core.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.ServiceBooking, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.ServiceBooking, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.ServiceBooking, error)
	GetPending(ctx context.Context) ([]models.BookingWithCustomer, error)
	// UpdatePrice is the request/response twin of the realtime updatePrice
	// event. It funnels through the same state machine entry point so both
	// paths apply identical validation and emit the same priceUpdate.
	UpdatePrice(ctx context.Context, bookingID string, price float64, worker negotiation.WorkerData) (*models.ServiceBooking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Negotiation negotiation.Service
}
