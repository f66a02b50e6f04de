package ports

import (
	"context"
	"time"
)

// IdempotencyStore remembers checkout idempotency keys and the order each key
// produced. A repeated checkout with a key already in the store returns the
// recorded order ID instead of placing a second order.
type IdempotencyStore interface {
	// Reserve atomically claims the key for the given value with a TTL.
	// Returns true when the key was free and is now claimed, false with the
	// previously stored value when the key was already taken.
	Reserve(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error)

	// Release frees a claimed key, used when the checkout behind it failed.
	Release(ctx context.Context, key string) error
}
