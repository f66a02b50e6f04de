package services

import (
	"storefront/internal/core/domain/model/cart"
)

// Pricer computes cart totals from the pricing configuration. It is a domain
// service implementing cart.TotalsPolicy; the rates are injected so tests and
// deployments can vary them without touching cart logic.
//
// Rules:
//   - tax = subtotal * taxRate
//   - shipping = 0 when subtotal exceeds the free shipping threshold,
//     otherwise the flat shipping fee
//   - a percentage coupon discounts subtotal * value / 100, a fixed coupon
//     discounts the flat value
//   - total = subtotal + tax + shipping - discount, clamped at 0
type Pricer struct {
	taxRate               float64
	shippingFee           float64
	freeShippingThreshold float64
}

// NewPricer creates a Pricer with the given rates.
func NewPricer(taxRate, shippingFee, freeShippingThreshold float64) Pricer {
	return Pricer{
		taxRate:               taxRate,
		shippingFee:           shippingFee,
		freeShippingThreshold: freeShippingThreshold,
	}
}

// Totals computes the monetary summary for the given subtotal and coupon.
// A zero coupon yields no discount.
func (p Pricer) Totals(subtotal float64, coupon cart.Coupon) cart.Totals {
	tax := subtotal * p.taxRate

	shipping := p.shippingFee
	if subtotal > p.freeShippingThreshold {
		shipping = 0
	}

	var discount float64
	if !coupon.IsZero() {
		switch coupon.DiscountType() {
		case cart.DiscountPercentage:
			discount = subtotal * coupon.Discount() / 100
		case cart.DiscountFixed:
			discount = coupon.Discount()
		}
	}

	total := subtotal + tax + shipping - discount
	if total < 0 {
		total = 0
	}

	return cart.NewTotals(subtotal, tax, shipping, discount, total)
}
