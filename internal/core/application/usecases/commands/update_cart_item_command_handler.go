package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// UpdateCartItemCommandHandler handles quantity changes on existing cart
// lines. Increases re-check live stock; decreases always succeed.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	pricing    cart.TotalsPolicy
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory, pricing cart.TotalsPolicy) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the quantity update and recomputes totals atomically.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	item := customerCart.Item(cmd.ItemID())
	if item == nil {
		return errs.NewObjectNotFoundError("cartItem", cmd.ItemID().String())
	}

	if cmd.Quantity() > item.Quantity() {
		product, err := uow.ProductRepository().Get(ctx, item.ProductID())
		if err != nil {
			return err
		}
		if cmd.Quantity() > product.Stock() {
			return errs.NewInsufficientStockError(product.Name(), cmd.Quantity(), product.Stock())
		}
	}

	if err = customerCart.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}
	customerCart.Recalculate(h.pricing)

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
