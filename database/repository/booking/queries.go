package bookingRepo

import (
	"context"
	"fmt"

	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetPendingWithCustomer returns all pending bookings, newest first, each
// joined with the owning customer's public details.
func (r *mongoBookingRepo) GetPendingWithCustomer(ctx context.Context) ([]models.BookingWithCustomer, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.BookingStatusPending}},
		{"$sort": bson.M{"date": -1, "time": -1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "customerId",
			"foreignField": "id",
			"as":           "customer",
		}},
		{"$unwind": bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"customer.balance":   0,
			"customer.dob":       0,
			"customer.email":     0,
			"customer.street":    0,
			"customer.landmark":  0,
			"customer.state":     0,
			"customer.pincode":   0,
			"customer.age":       0,
			"customer.userType":  0,
			"customer.createdAt": 0,
			"customer.updatedAt": 0,
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingWithCustomer
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode pending bookings: %w", err)
	}
	return bookings, nil
}
