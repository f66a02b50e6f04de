package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles fulfillment-side status advances.
// Cancellation goes through CancelOrderCommand instead because it carries
// stock restoration side effects this handler must not perform.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle advances the order to the target status through the aggregate's
// transition methods and persists the result.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	customerOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.applyTransition(customerOrder, cmd); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, customerOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, customerOrder)
	h.logger.Info("order status updated",
		"orderId", customerOrder.ID().String(),
		"status", customerOrder.Status().String())
	return nil
}

func (h *UpdateOrderStatusCommandHandler) applyTransition(customerOrder *order.Order, cmd UpdateOrderStatusCommand) error {
	switch cmd.Status() {
	case order.StatusConfirmed:
		return customerOrder.Confirm()
	case order.StatusProcessing:
		return customerOrder.StartProcessing()
	case order.StatusShipped:
		return customerOrder.Ship(cmd.Tracking())
	case order.StatusDelivered:
		return customerOrder.Deliver()
	default:
		return errs.NewInvalidTransitionError(customerOrder.Status().String(), cmd.Status().String())
	}
}
