package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a new Redis client
func New(addr, password string, db int, ttl time.Duration) *Storage {
	return &Storage{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     100,
			MinIdleConns: 10,
		}),
		ttl: ttl,
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Storage) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

func (s *Storage) SetDialogState(ctx context.Context, chatID int64, state *DialogState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	return s.client.Set(ctx, buildStateKey(chatID), data, s.ttl).Err()
}

// GetDialogState returns an empty state for chats without one.
func (s *Storage) GetDialogState(ctx context.Context, chatID int64) (*DialogState, error) {
	data, err := s.client.Get(ctx, buildStateKey(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &DialogState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}

	var state DialogState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &state, nil
}

func (s *Storage) DropDialogState(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, buildStateKey(chatID)).Err()
}

// CheckRateLimit counts an action in a fixed window and reports whether the
// limit is exceeded.
func (s *Storage) CheckRateLimit(ctx context.Context, chatID int64, action string, limit int64, window time.Duration) (bool, error) {
	key := buildRateLimitKey(chatID, action)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > limit, nil
}

func buildStateKey(chatID int64) string {
	return fmt.Sprintf("state:%d", chatID)
}

func buildRateLimitKey(chatID int64, action string) string {
	return fmt.Sprintf("ratelimit:%d:%s", chatID, action)
}
