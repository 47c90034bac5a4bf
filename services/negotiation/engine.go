package negotiation

import (
	"context"
	"errors"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Events emitted by the state machine. Accept/decline/resolve outcomes go
// to every connection suffixed with the booking id, since the offering
// worker is not tracked across reconnects.
const (
	EventPriceUpdate   = "priceUpdate"
	EventBidAccepted   = "bidAccepted:"
	EventBidDeclined   = "bidDeclined:"
	EventBookingUpdate = "bookingUpdate:"
)

// SubmitOffer validates and applies a worker's price offer.
func (s *DefaultNegotiationService) SubmitOffer(ctx context.Context, bookingID string, price float64, worker WorkerData) (*models.Bid, error) {
	if bookingID == "" {
		return nil, NewValidationError("missing required data: bookingId")
	}
	if worker.MobileNumber == "" {
		return nil, NewValidationError("worker mobile number is required")
	}
	if price <= 0 {
		return nil, NewValidationError("invalid price value")
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "booking", Key: bookingID}
		}
		return nil, &StoreError{Op: "fetch booking", Err: err}
	}

	w, err := s.WorkerRepo.GetByMobileNumber(ctx, worker.MobileNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "worker", Key: worker.MobileNumber}
		}
		return nil, &StoreError{Op: "fetch worker", Err: err}
	}

	if _, err := s.BookingRepo.UpdateByID(ctx, bookingID, bson.M{
		"status": models.BookingStatusNegotiating,
		"price":  price,
	}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "booking", Key: bookingID}
		}
		return nil, &StoreError{Op: "update booking", Err: err}
	}

	bid := models.Bid{
		BookingID: bookingID,
		Price:     price,
		WorkerDetails: models.WorkerDetails{
			WorkerID:  w.ID,
			FirstName: w.FirstName,
			LastName:  w.LastName,
			Location:  w.City,
		},
		Status: models.BookingStatusPending,
	}
	s.Offers.Put(bid)

	s.Broadcaster.SendToRoom(booking.CustomerID, EventPriceUpdate, bid)
	utils.GetLogger().Debug("price update sent",
		zap.String("bookingId", bookingID),
		zap.String("customerId", booking.CustomerID),
		zap.Float64("price", price))

	return &bid, nil
}

// AcceptOffer confirms the booking at the accepted price.
func (s *DefaultNegotiationService) AcceptOffer(ctx context.Context, bookingID string, price float64) (*models.ServiceBooking, error) {
	if bookingID == "" {
		return nil, NewValidationError("missing required data: bookingId")
	}

	booking, err := s.BookingRepo.UpdateByID(ctx, bookingID, bson.M{
		"status": models.BookingStatusConfirmed,
		"price":  price,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "booking", Key: bookingID}
		}
		return nil, &StoreError{Op: "update booking", Err: err}
	}

	s.Offers.Delete(bookingID)
	s.Broadcaster.SendToAll(EventBidAccepted+bookingID, map[string]any{"booking": booking})

	return booking, nil
}

// DeclineOffer returns the booking to pending and drops the rejected offer.
func (s *DefaultNegotiationService) DeclineOffer(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return NewValidationError("missing required data: bookingId")
	}

	booking, err := s.BookingRepo.UpdateByID(ctx, bookingID, bson.M{
		"status": models.BookingStatusPending,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "booking", Key: bookingID}
		}
		return &StoreError{Op: "update booking", Err: err}
	}

	// The decline leaves the price field untouched, so the booking's price
	// is the one the rejected offer set.
	s.Offers.PurgeByPrice(bookingID, booking.Price)
	s.Broadcaster.SendToAll(EventBidDeclined+bookingID, nil)

	return nil
}

// PriceResponse resolves a customer's answer to the current price.
func (s *DefaultNegotiationService) PriceResponse(ctx context.Context, bookingID string, accepted bool) (string, error) {
	if bookingID == "" {
		return "", NewValidationError("missing required data: bookingId")
	}

	status := models.BookingStatusPending
	if accepted {
		status = models.BookingStatusConfirmed
	}

	if _, err := s.BookingRepo.UpdateByID(ctx, bookingID, bson.M{"status": status}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", &NotFoundError{Resource: "booking", Key: bookingID}
		}
		return "", &StoreError{Op: "update booking", Err: err}
	}

	s.Broadcaster.SendToAll(EventBookingUpdate+bookingID, map[string]any{"status": status})

	return status, nil
}
