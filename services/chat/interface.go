package chat

import (
	"context"
	"time"

	messageRepo "github.com/xtharshh/kwick-backend/database/repository/message"
	"github.com/xtharshh/kwick-backend/models"

	"github.com/go-redis/redis/v8"
)

// RecentWindow is how far back chat reads look.
const RecentWindow = 10 * time.Minute

// ChatService persists chat messages and serves the recent window.
type ChatService interface {
	SaveMessage(ctx context.Context, message, role string) (*models.Message, error)
	RecentMessages(ctx context.Context) ([]models.Message, error)
}

// DefaultChatService implements ChatService with MongoDB as the durable
// store and Redis as the hot cache for the recent window.
type DefaultChatService struct {
	Repo  messageRepo.MessageRepository
	Cache *redis.Client
}
