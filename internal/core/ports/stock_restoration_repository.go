package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// StockRestorationRepository defines the persistence contract for pending
// stock restorations written during order cancellation. Pending rows are the
// recovery log: the restoration job replays them until each completes.
type StockRestorationRepository interface {
	// Add persists a new restoration record.
	Add(ctx context.Context, aggregate *product.StockRestoration) error

	// Update persists the completed flag of an existing record.
	Update(ctx context.Context, aggregate *product.StockRestoration) error

	// GetAllPending retrieves every restoration not yet completed.
	GetAllPending(ctx context.Context) ([]*product.StockRestoration, error)
}
