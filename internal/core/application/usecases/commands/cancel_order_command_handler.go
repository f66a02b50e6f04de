package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellations.
//
// The cancellation transaction writes the status change together with one
// pending StockRestoration row per order item. After the commit the handler
// attempts the releases immediately; rows it cannot complete stay pending and
// the restoration job retries them. The status machine rejects a second
// cancel, so the restoration rows are written at most once per order and
// stock can never be released twice.
type CancelOrderCommandHandler struct {
	uowFactory         OrderUoWFactory
	restorationFactory RestorationUoWFactory
	notifier           ports.Notifier
	logger             *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restorationFactory RestorationUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:         uowFactory,
		restorationFactory: restorationFactory,
		notifier:           notifier,
		logger:             logger.With("component", "cancel_order"),
	}
}

// Handle cancels the order and schedules every item quantity for restoration.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if !customerOrder.IsOwnedBy(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("order", cmd.OrderID().String())
	}

	if err = customerOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, customerOrder); err != nil {
		return err
	}

	restorationRepo := uow.StockRestorationRepository()
	restorations := make([]*product.StockRestoration, 0, len(customerOrder.Items()))
	for _, item := range customerOrder.Items() {
		restoration, err := product.NewStockRestoration(
			kernel.NewUUID(), customerOrder.ID(), item.ProductID(), item.Quantity(),
		)
		if err != nil {
			return err
		}
		if err = restorationRepo.Add(ctx, restoration); err != nil {
			return err
		}
		restorations = append(restorations, restoration)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, restoration := range restorations {
		if err = CompleteStockRestoration(ctx, h.restorationFactory, restoration); err != nil {
			h.logger.Warn("deferred stock restoration to background job",
				"restorationId", restoration.ID().String(),
				"productId", restoration.ProductID().String(),
				"error", err)
		}
	}

	h.notifier.OrderCancelled(ctx, customerOrder)
	return nil
}

// CompleteStockRestoration releases the restoration's quantity back to stock
// and marks the row completed in one transaction, so a replayed row can never
// release the same quantity twice. Shared by the cancellation handler's
// immediate pass and the background restoration job.
func CompleteStockRestoration(
	ctx context.Context,
	factory RestorationUoWFactory,
	restoration *product.StockRestoration,
) error {
	if restoration.IsCompleted() {
		return nil
	}

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Release(ctx, restoration.ProductID(), restoration.Quantity()); err != nil {
		return err
	}

	restoration.MarkCompleted()
	if err := uow.StockRestorationRepository().Update(ctx, restoration); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
