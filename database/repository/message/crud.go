package messageRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new chat message.
func (r *mongoMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetSince returns all messages at or after the given instant, oldest first.
func (r *mongoMessageRepo) GetSince(ctx context.Context, since time.Time) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"timestamp": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return msgs, nil
}
