package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// RemoveCartItemCommandHandler handles removing a line from a cart and
// recomputing the totals.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	pricing    cart.TotalsPolicy
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, pricing cart.TotalsPolicy) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle removes the line and persists the recalculated cart.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerCart.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}
	customerCart.Recalculate(h.pricing)

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
