package workerRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new worker document.
func (r *mongoWorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	if worker.ID == "" {
		worker.ID = uuid.New().String()
	}
	worker.UserType = "worker"
	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

// GetByMobileNumber retrieves a worker by mobile number.
func (r *mongoWorkerRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"mobileNumber": mobileNumber}).Decode(&worker); err != nil {
		return nil, fmt.Errorf("failed to fetch worker with mobile %s: %w", mobileNumber, err)
	}
	return &worker, nil
}

// UpdateByMobileNumber applies the given field set and returns the updated document.
func (r *mongoWorkerRepo) UpdateByMobileNumber(ctx context.Context, mobileNumber string, fields bson.M) (*models.Worker, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Worker
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"mobileNumber": mobileNumber}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update worker with mobile %s: %w", mobileNumber, err)
	}
	return &updated, nil
}

// SetBalance overwrites the worker's wallet balance.
func (r *mongoWorkerRepo) SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.Worker, error) {
	return r.UpdateByMobileNumber(ctx, mobileNumber, bson.M{"balance": balance})
}
