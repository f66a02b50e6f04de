// Package notify provides the outbound notification adapter.
// Notifications are announcements only: they are emitted after the
// transaction commits and a failure to deliver never fails the operation
// that triggered them.
package notify

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// SlogNotifier emits order notifications to the structured log.
// Stands in for a mail or push gateway; swapping the transport only
// requires another Notifier implementation.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// OrderConfirmation announces a newly placed order.
func (n *SlogNotifier) OrderConfirmation(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order confirmation",
		"order_number", aggregate.Number(),
		"customer_id", aggregate.CustomerID().String(),
		"total", aggregate.Totals().Total(),
	)
}

// OrderStatusChanged announces a fulfillment status change.
func (n *SlogNotifier) OrderStatusChanged(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_number", aggregate.Number(),
		"customer_id", aggregate.CustomerID().String(),
		"status", aggregate.Status().String(),
	)
}

// OrderCancelled announces an order cancellation.
func (n *SlogNotifier) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order cancelled",
		"order_number", aggregate.Number(),
		"customer_id", aggregate.CustomerID().String(),
	)
}
