package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review aggregate. A customer has at most one review
	// per product; implementations enforce this with a unique constraint.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review, including its helpful
	// voter set.
	Update(ctx context.Context, aggregate *review.Review) error

	// Delete removes a review permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a review aggregate by its unique identifier.
	// Returns ObjectNotFound when no such review exists.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetAllByProduct retrieves every review of the product.
	GetAllByProduct(ctx context.Context, productID kernel.UUID) ([]*review.Review, error)

	// GetByProductAndCustomer retrieves the customer's review of the product.
	// Returns ObjectNotFound when the customer has not reviewed it.
	GetByProductAndCustomer(ctx context.Context, productID, customerID kernel.UUID) (*review.Review, error)
}
