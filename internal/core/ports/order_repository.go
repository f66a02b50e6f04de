package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrOrderNumberConflict indicates the order's display number is already
// taken. Callers regenerate the number and retry.
var ErrOrderNumberConflict = errors.New("order number already exists")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are the historical record: they are created once at checkout,
// advanced through status updates, and never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate. The order number carries a unique
	// constraint; a conflicting number fails the insert with
	// ErrOrderNumberConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, tracking, and delivery timestamp changes to an
	// existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves the customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// HasDeliveredOrderWithProduct reports whether the customer has at least
	// one delivered order containing the product. Used to derive the
	// verified purchase flag on reviews.
	HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID kernel.UUID) (bool, error)
}
