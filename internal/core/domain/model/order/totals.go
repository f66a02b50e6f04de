package order

import "math"

// Totals is the monetary summary snapshotted from the cart at commit time.
// It is carried verbatim onto the order and never recomputed afterwards.
type Totals struct {
	subtotal float64
	tax      float64
	shipping float64
	discount float64
	total    float64
}

// NewTotals creates an order totals snapshot, collapsing any NaN or infinite
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

// Subtotal returns the snapshotted sum of line totals.
func (t Totals) Subtotal() float64 { return t.subtotal }

// Tax returns the snapshotted tax amount.
func (t Totals) Tax() float64 { return t.tax }

// Shipping returns the snapshotted shipping fee.
func (t Totals) Shipping() float64 { return t.shipping }

// Discount returns the snapshotted coupon discount.
func (t Totals) Discount() float64 { return t.discount }

// Total returns the snapshotted amount payable.
func (t Totals) Total() float64 { return t.total }

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
