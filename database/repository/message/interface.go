package messageRepo

import (
	"context"
	"time"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository is the durable store for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetSince(ctx context.Context, since time.Time) ([]models.Message, error)
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo returns a MessageRepository backed by MongoDB.
func NewMongoMessageRepo() MessageRepository {
	return &mongoMessageRepo{coll: database.DB().Collection("messages")}
}
