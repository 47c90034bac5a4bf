package bookingRepo

import (
	"context"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the durable store for service bookings. The booking
// document is the single source of truth for negotiation status and price.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.ServiceBooking) error
	GetByID(ctx context.Context, id string) (*models.ServiceBooking, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.ServiceBooking, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.ServiceBooking, error)
	GetPendingWithCustomer(ctx context.Context) ([]models.BookingWithCustomer, error)
	// UpdateByID applies the given field set and returns the updated
	// document, or mongo.ErrNoDocuments if no booking matches.
	UpdateByID(ctx context.Context, id string, fields bson.M) (*models.ServiceBooking, error)
}

type mongoBookingRepo struct {
	coll     *mongo.Collection
	userColl *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:     db.Collection("servicebookings"),
		userColl: db.Collection("users"),
	}
}
