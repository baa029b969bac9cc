package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store counts requests per key inside a fixed window. Counters live in an
// external store so every instance shares the same view; nothing is held in
// process memory.
type Store interface {
	Hit(ctx context.Context, key string) (count int64, retryAfter time.Duration, err error)
}

type RedisStore struct {
	client *redis.Client
	window time.Duration
}

func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{client: client, window: window}
}

func (s *RedisStore) Hit(ctx context.Context, key string) (int64, time.Duration, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return count, s.window, err
		}
		return count, s.window, nil
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		return count, s.window, nil
	}

	return count, ttl, nil
}

var _ Store = (*RedisStore)(nil)
