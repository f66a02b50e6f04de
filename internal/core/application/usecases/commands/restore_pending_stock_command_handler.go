package commands

import (
	"context"
	"log/slog"
)

// RestorePendingStockCommandHandler replays pending stock restorations left
// behind when a cancellation's immediate release pass failed. Each row is
// completed in its own transaction; a row that fails again simply stays
// pending for the next pass.
type RestorePendingStockCommandHandler struct {
	uowFactory RestorationUoWFactory
	logger     *slog.Logger
}

// NewRestorePendingStockCommandHandler creates a handler for restoration passes.
func NewRestorePendingStockCommandHandler(
	uowFactory RestorationUoWFactory,
	logger *slog.Logger,
) RestorePendingStockCommandHandler {
	return RestorePendingStockCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "restore_pending_stock"),
	}
}

// Handle releases every pending restoration it can and reports the first
// listing error. Per-row failures are logged, not propagated, so one bad row
// cannot block the rest of the backlog.
func (h *RestorePendingStockCommandHandler) Handle(ctx context.Context, cmd RestorePendingStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	pending, err := uow.StockRestorationRepository().GetAllPending(ctx)
	rollbackErr := uow.Rollback(ctx)
	if err != nil {
		return err
	}
	if rollbackErr != nil {
		return rollbackErr
	}

	for _, restoration := range pending {
		if err := CompleteStockRestoration(ctx, h.uowFactory, restoration); err != nil {
			h.logger.Warn("stock restoration still pending",
				"restorationId", restoration.ID().String(),
				"productId", restoration.ProductID().String(),
				"error", err)
			continue
		}

		h.logger.Info("stock restored",
			"restorationId", restoration.ID().String(),
			"productId", restoration.ProductID().String(),
			"quantity", restoration.Quantity())
	}

	return nil
}
