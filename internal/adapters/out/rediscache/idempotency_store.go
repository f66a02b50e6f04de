// Package rediscache provides the Redis-backed idempotency store.
// Checkout idempotency keys are claimed with SET NX so that two concurrent
// submissions of the same key race on a single atomic operation.
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// IdempotencyStore implements the idempotency port on Redis.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a store using the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Reserve atomically claims the key for the given value with a TTL.
// Returns true when the key was free and is now claimed. When the key was
// already taken, returns false together with the previously stored value.
func (s *IdempotencyStore) Reserve(
	ctx context.Context,
	key, value string,
	ttl time.Duration,
) (bool, string, error) {
	claimed, err := s.client.SetNX(ctx, keyPrefix+key, value, ttl).Result()
	if err != nil {
		return false, "", err
	}
	if claimed {
		return true, "", nil
	}

	existing, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		// The claim may have expired between SetNX and Get; the caller
		// treats this as a transient failure and the client retries.
		return false, "", err
	}

	return false, existing, nil
}

// Release frees a claimed key, used when the checkout behind it failed.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
