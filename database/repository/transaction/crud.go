package transactionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new transaction record.
func (r *mongoTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, txn); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByMobileNumber returns all transactions for a mobile number, newest first.
func (r *mongoTransactionRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"mobileNumber": mobileNumber}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for %s: %w", mobileNumber, err)
	}
	defer cursor.Close(ctx)

	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txns, nil
}
