package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/negotiation"
)

// ErrMissingFields rejects a booking without its required schedule fields.
var ErrMissingFields = errors.New("time, date, and number of rooms are required")

func parseBookingDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid booking date %q", value)
}

// Create validates and persists a new booking in pending state, resolving
// the owning customer from the mobile number.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateBookingInput) (*models.ServiceBooking, error) {
	if input.Time == "" || input.Date == "" || input.NumberOfRooms == 0 {
		return nil, ErrMissingFields
	}

	date, err := parseBookingDate(input.Date)
	if err != nil {
		return nil, err
	}

	customer, err := s.UserRepo.GetByMobileNumber(ctx, input.MobileNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking customer: %w", err)
	}

	booking := &models.ServiceBooking{
		CustomerID:       customer.ID,
		MobileNumber:     input.MobileNumber,
		SelectedServices: input.SelectedServices,
		NumberOfRooms:    input.NumberOfRooms,
		Date:             date,
		Time:             input.Time,
		Comments:         input.Comments,
		Areas:            input.Areas,
		Status:           models.BookingStatusPending,
		Price:            input.Price,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByMobileNumber lists a customer's bookings.
func (s *DefaultBookingService) GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.ServiceBooking, error) {
	return s.Repo.GetByMobileNumber(ctx, mobileNumber)
}

// GetByOrderID fetches a booking by its order id.
func (s *DefaultBookingService) GetByOrderID(ctx context.Context, orderID string) (*models.ServiceBooking, error) {
	return s.Repo.GetByOrderID(ctx, orderID)
}

// GetPending lists pending bookings with customer details for workers.
func (s *DefaultBookingService) GetPending(ctx context.Context) ([]models.BookingWithCustomer, error) {
	return s.Repo.GetPendingWithCustomer(ctx)
}

// UpdatePrice runs the negotiating transition through the state machine
// and returns the booking as updated by it.
func (s *DefaultBookingService) UpdatePrice(ctx context.Context, bookingID string, price float64, worker negotiation.WorkerData) (*models.ServiceBooking, error) {
	if _, err := s.Negotiation.SubmitOffer(ctx, bookingID, price, worker); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, bookingID)
}
