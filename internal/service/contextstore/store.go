package contextstore

import (
	"PharmaCS/entity"
	"PharmaCS/internal/config"
	"PharmaCS/internal/lib/sl"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"

	"github.com/redis/go-redis/v9"
)

const contextKeyPrefix = "chat:context:"

// Store keeps the last turn of each conversation in Redis, one JSON blob per
// conversation id. Writes are upserts; the previous turn is overwritten.
type Store struct {
	client *redis.Client
	log    *slog.Logger
}

func NewStore(conf *config.Config, logger *slog.Logger) *Store {
	if !conf.Redis.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(conf.Redis.Host, conf.Redis.Port),
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	return &Store{
		client: client,
		log:    logger.With(sl.Module("contextstore")),
	}
}

// Save upserts the turn context for a conversation. Last write wins.
func (s *Store) Save(ctx context.Context, cc entity.ConversationContext) error {
	payload, err := json.Marshal(cc)
	if err != nil {
		return fmt.Errorf("marshal conversation context: %w", err)
	}

	key := contextKeyPrefix + cc.ConversationID
	if err = s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set conversation context: %w", err)
	}

	return nil
}
