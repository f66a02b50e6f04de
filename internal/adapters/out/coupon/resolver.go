// Package coupon provides a configuration-backed coupon resolver.
// Codes and their discount rules are loaded at startup; there is no coupon
// management surface, so an unknown code is simply invalid.
package coupon

import (
	"context"
	"strings"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

// StaticResolver resolves coupon codes against a fixed in-memory table.
type StaticResolver struct {
	coupons map[string]cart.Coupon
}

// NewStaticResolver creates a resolver for the given coupons, indexed by code.
// Code matching is case-insensitive.
func NewStaticResolver(coupons []cart.Coupon) *StaticResolver {
	table := make(map[string]cart.Coupon, len(coupons))
	for _, c := range coupons {
		table[strings.ToUpper(c.Code())] = c
	}

	return &StaticResolver{coupons: table}
}

// Resolve returns the coupon for the given code.
// Fails with InvalidCoupon when the code is unknown.
func (r *StaticResolver) Resolve(_ context.Context, code string) (cart.Coupon, error) {
	c, ok := r.coupons[strings.ToUpper(code)]
	if !ok {
		return cart.Coupon{}, errs.NewInvalidCouponError(code)
	}

	return c, nil
}
