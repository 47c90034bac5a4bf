package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const recentMessagesKey = "messages:recent"

// ErrEmptyMessage rejects a chat message without content or role.
var ErrEmptyMessage = errors.New("message and role are required")

// SaveMessage persists the message and mirrors it into the Redis window.
// A cache failure is logged and ignored; Mongo remains authoritative.
func (s *DefaultChatService) SaveMessage(ctx context.Context, message, role string) (*models.Message, error) {
	if message == "" || role == "" {
		return nil, ErrEmptyMessage
	}

	msg := &models.Message{Message: message, Role: role}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(msg); err == nil {
			entry := &redis.Z{Score: float64(msg.Timestamp.UnixNano()), Member: string(raw)}
			if err := s.Cache.ZAdd(ctx, recentMessagesKey, entry).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache message", zap.Error(err))
			}
		}
	}
	return msg, nil
}

// RecentMessages returns messages from the last ten minutes, oldest first.
// The Redis window is tried first; Mongo is the fallback.
func (s *DefaultChatService) RecentMessages(ctx context.Context) ([]models.Message, error) {
	since := time.Now().Add(-RecentWindow)

	if s.Cache != nil {
		if msgs, err := s.recentFromCache(ctx, since); err == nil && len(msgs) > 0 {
			return msgs, nil
		}
	}
	return s.Repo.GetSince(ctx, since)
}

func (s *DefaultChatService) recentFromCache(ctx context.Context, since time.Time) ([]models.Message, error) {
	// Trim entries that fell out of the window while reading.
	cutoff := strconv.FormatInt(since.UnixNano(), 10)
	s.Cache.ZRemRangeByScore(ctx, recentMessagesKey, "-inf", "("+cutoff)

	raws, err := s.Cache.ZRangeByScore(ctx, recentMessagesKey, &redis.ZRangeBy{Min: cutoff, Max: "+inf"}).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]models.Message, 0, len(raws))
	for _, raw := range raws {
		var msg models.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
