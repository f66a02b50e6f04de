package cart

import "math"

// Totals holds the monetary summary of a cart. It is a pure function of the
// current items and coupon, recomputed after every mutation and never edited
// in place.
//
// Invariants:
//   - subtotal equals the sum of all item line totals
//   - total equals subtotal + tax + shipping - discount
//   - no field is ever NaN or infinite: invalid arithmetic collapses to 0
//     instead of poisoning downstream values. This fallback is a deliberate
//     reliability contract.
type Totals struct {
	subtotal float64
	tax      float64
	shipping float64
	discount float64
	total    float64
}

// NewTotals creates a Totals value, collapsing any NaN or infinite
// component to 0.
func NewTotals(subtotal, tax, shipping, discount, total float64) Totals {
	return Totals{
		subtotal: sanitizeAmount(subtotal),
		tax:      sanitizeAmount(tax),
		shipping: sanitizeAmount(shipping),
		discount: sanitizeAmount(discount),
		total:    sanitizeAmount(total),
	}
}

// ZeroTotals returns the totals of an empty cart.
func ZeroTotals() Totals {
	return Totals{}
}

// Subtotal returns the sum of all line totals.
func (t Totals) Subtotal() float64 {
	return t.subtotal
}

// Tax returns the tax amount.
func (t Totals) Tax() float64 {
	return t.tax
}

// Shipping returns the shipping fee.
func (t Totals) Shipping() float64 {
	return t.shipping
}

// Discount returns the amount subtracted by the active coupon.
func (t Totals) Discount() float64 {
	return t.discount
}

// Total returns the final amount payable.
func (t Totals) Total() float64 {
	return t.total
}

// sanitizeAmount collapses NaN and infinite values to 0 so a single bad
// intermediate never propagates through the totals.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
