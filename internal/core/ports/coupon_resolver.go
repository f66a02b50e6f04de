package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// CouponResolver looks up the discount rule behind a coupon code.
// The lookup is read-only and case insensitive; the catalog of valid codes
// lives outside the domain, typically in configuration.
type CouponResolver interface {
	// Resolve returns the coupon for the given code.
	// Fails with InvalidCoupon when the code is unknown.
	Resolve(ctx context.Context, code string) (cart.Coupon, error)
}
