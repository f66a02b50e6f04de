package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer has at most one cart, keyed by customer ID.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, including its
	// items, coupon, and totals.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's cart.
	// Returns ObjectNotFound when the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
