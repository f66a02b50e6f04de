package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// ApplyCouponCommandHandler handles applying a coupon to a cart. The code is
// resolved against the coupon catalog before it touches the aggregate, so an
// unknown code never dirties the cart.
type ApplyCouponCommandHandler struct {
	uowFactory CartUoWFactory
	coupons    ports.CouponResolver
	pricing    cart.TotalsPolicy
}

// NewApplyCouponCommandHandler creates a handler for coupon application.
func NewApplyCouponCommandHandler(
	uowFactory CartUoWFactory,
	coupons ports.CouponResolver,
	pricing cart.TotalsPolicy,
) ApplyCouponCommandHandler {
	return ApplyCouponCommandHandler{
		uowFactory: uowFactory,
		coupons:    coupons,
		pricing:    pricing,
	}
}

// Handle resolves the code, applies the coupon, and recomputes totals.
func (h *ApplyCouponCommandHandler) Handle(ctx context.Context, cmd ApplyCouponCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	coupon, err := h.coupons.Resolve(ctx, cmd.Code())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = customerCart.ApplyCoupon(coupon); err != nil {
		return err
	}
	customerCart.Recalculate(h.pricing)

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
