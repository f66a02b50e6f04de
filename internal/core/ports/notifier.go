package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// Notifier delivers customer-facing notifications about order events.
// Notification is fire and forget: failures are logged, never propagated,
// so a broken channel cannot fail a checkout or a status update.
type Notifier interface {
	// OrderConfirmation announces a newly placed order.
	OrderConfirmation(ctx context.Context, aggregate *order.Order)

	// OrderStatusChanged announces a fulfillment status change.
	OrderStatusChanged(ctx context.Context, aggregate *order.Order)

	// OrderCancelled announces an order cancellation.
	OrderCancelled(ctx context.Context, aggregate *order.Order)
}
