package userRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new user document.
func (r *mongoUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByMobileNumber retrieves a user by mobile number.
func (r *mongoUserRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"mobileNumber": mobileNumber}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to fetch user with mobile %s: %w", mobileNumber, err)
	}
	return &user, nil
}

// GetAll returns every user document.
func (r *mongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// UpdateByMobileNumber applies the given field set and returns the updated document.
func (r *mongoUserRepo) UpdateByMobileNumber(ctx context.Context, mobileNumber string, fields bson.M) (*models.User, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"mobileNumber": mobileNumber}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update user with mobile %s: %w", mobileNumber, err)
	}
	return &updated, nil
}

// SetBalance overwrites the user's wallet balance.
func (r *mongoUserRepo) SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.User, error) {
	return r.UpdateByMobileNumber(ctx, mobileNumber, bson.M{"balance": balance})
}
