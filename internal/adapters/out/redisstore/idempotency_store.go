package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "idempotency:"

// IdempotencyStore implements ports.IdempotencyStore with SET NX.
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, ttl).Result()
}

func (s *IdempotencyStore) Forget(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}
