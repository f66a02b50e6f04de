package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog and its
// stock counters. Reserve and Release form the inventory ledger: every stock
// change flows through them as an atomic conditional update, so the counter
// can never go negative under concurrent checkouts.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns ObjectNotFound when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Reserve atomically decrements the product's stock by quantity.
	// Fails with InsufficientStock when fewer than quantity units remain,
	// leaving the counter untouched.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) error

	// Release atomically returns quantity units to the product's stock.
	Release(ctx context.Context, productID kernel.UUID, quantity int) error

	// UpdateRating replaces the product's aggregated review rating.
	UpdateRating(ctx context.Context, productID kernel.UUID, rating product.Rating) error
}
