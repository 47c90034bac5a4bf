package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking. A fresh id and orderId are assigned when
// absent, and the status defaults to pending.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.ServiceBooking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.OrderID == "" {
		booking.OrderID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID returns a booking by its unique ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByOrderID returns a booking by its order identifier.
func (r *mongoBookingRepo) GetByOrderID(ctx context.Context, orderID string) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	if err := r.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with orderId %s: %w", orderID, err)
	}
	return &booking, nil
}

// GetByMobileNumber returns all bookings placed from a mobile number.
func (r *mongoBookingRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.ServiceBooking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"mobileNumber": mobileNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", mobileNumber, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.ServiceBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateByID applies the given field set and returns the updated document.
func (r *mongoBookingRepo) UpdateByID(ctx context.Context, id string, fields bson.M) (*models.ServiceBooking, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.ServiceBooking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &updated, nil
}
