package userRepo

import (
	"context"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the durable store for customer accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateByMobileNumber applies the given field set and returns the
	// updated document, or mongo.ErrNoDocuments if no user matches.
	UpdateByMobileNumber(ctx context.Context, mobileNumber string, fields bson.M) (*models.User, error)
	SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}
