// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// StockRestorationRepoFactory provides access to the stock restoration
	// repository within a transaction.
	StockRestorationRepoFactory interface {
		StockRestorationRepository() ports.StockRestorationRepository
	}

	// CartUoW manages transactions for cart editing operations. Cart commands
	// read the catalog for prices and live stock but never modify it.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: creating the order and
	// clearing the cart atomically. Stock reservations happen outside this
	// transaction through the product repository's conditional updates.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order lifecycle operations, including
	// the stock restoration records written on cancellation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StockRestorationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review operations. Review commands
	// read orders for the verified purchase flag and write the product's
	// recomputed rating in the same transaction as the review change.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		ProductRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// RestorationUoW manages transactions for the stock restoration job.
	RestorationUoW interface {
		TxManager
		ProductRepoFactory
		StockRestorationRepoFactory
	}

	// RestorationUoWFactory creates new restoration unit of work instances.
	RestorationUoWFactory interface {
		Create() RestorationUoW
	}
)
