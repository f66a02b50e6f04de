package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// TotalsPolicy computes the monetary summary for a subtotal under the active
// business rules (tax rate, shipping fee, coupon discounts). It is injected
// into Recalculate so that rates live in configuration, not in the aggregate.
type TotalsPolicy interface {
	Totals(subtotal float64, coupon Coupon) Totals
}

// Cart is the draft of a customer's intended purchase. It is the aggregate
// root for line items, the active coupon, and the computed totals.
//
// Cart follows these invariants:
//   - Owned by exactly one customer
//   - Each line's total equals its unit price times its quantity
//   - Totals are recomputed via Recalculate after every mutation
//   - Emptied at checkout, never deleted
//
// A cart is a disposable draft, not a ledger: concurrent edits by the same
// customer resolve last-write-wins.
type Cart struct {
	// id is the unique identifier for the cart
	id kernel.UUID

	// customerID is the owning customer's ID (one cart per customer)
	customerID kernel.UUID

	// items is the ordered sequence of cart lines
	items []*Item

	// coupon is the active discount rule (zero value when none)
	coupon Coupon

	// totals is the monetary summary computed from items and coupon
	totals Totals

	// isConstructed ensures the cart was created via a constructor
	isConstructed bool
}

// NewCart creates an empty cart for a customer. Carts are created lazily on
// the customer's first add.
func NewCart(id, customerID kernel.UUID) (*Cart, error) {
	cart := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(
		cart.setID(id),
		cart.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return cart, nil
}

// RestoreCart reconstructs a cart from persistence, including its lines,
// coupon, and last computed totals.
func RestoreCart(id, customerID kernel.UUID, items []*Item, coupon Coupon, totals Totals) (*Cart, error) {
	cart, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	if !coupon.IsZero() {
		if err = coupon.Validate(); err != nil {
			return nil, err
		}
	}

	cart.items = items
	cart.coupon = coupon
	cart.totals = totals
	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

// Coupon returns the active coupon. The zero value means no coupon is applied.
func (c *Cart) Coupon() Coupon {
	return c.coupon
}

// Totals returns the monetary summary from the last Recalculate call.
func (c *Cart) Totals() Totals {
	return c.totals
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// QuantityOf returns the quantity of the given product already in the cart,
// or 0 when the product is not present.
func (c *Cart) QuantityOf(productID kernel.UUID) int {
	for _, item := range c.items {
		if item.productID.IsEqual(productID) {
			return item.quantity
		}
	}
	return 0
}

// AddItem adds quantity units of a product at the given unit price.
// When the product is already in the cart, the quantities merge into the
// existing line and its original add-time price is kept. Otherwise a new
// line is appended.
//
// Availability against live stock is the caller's responsibility; the
// aggregate only enforces line-level invariants.
func (c *Cart) AddItem(productID kernel.UUID, quantity int, unitPrice float64) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	for _, item := range c.items {
		if item.productID.IsEqual(productID) {
			item.setQuantity(item.quantity + quantity)
			return nil
		}
	}

	item, err := newItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItemQuantity sets the quantity of the line with the given item id.
// Lines are addressed by item id, not by product id.
func (c *Cart) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	item := c.findItem(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("cartItem", itemID.String())
	}

	item.setQuantity(quantity)
	return nil
}

// RemoveItem deletes the line with the given item id.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	for i, item := range c.items {
		if item.id.IsEqual(itemID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartItem", itemID.String())
}

// Item returns the line with the given item id, or nil when absent.
func (c *Cart) Item(itemID kernel.UUID) *Item {
	return c.findItem(itemID)
}

// Clear removes all lines and the active coupon. Used both by the explicit
// clear operation and when a checkout empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.coupon = Coupon{}
	c.totals = ZeroTotals()
}

// ApplyCoupon sets the active coupon, replacing any previously applied one.
// At most one coupon is active at a time.
func (c *Cart) ApplyCoupon(coupon Coupon) error {
	if err := coupon.Validate(); err != nil {
		return err
	}
	c.coupon = coupon
	return nil
}

// Recalculate recomputes the totals from the current lines and coupon under
// the given policy. It is idempotent and must be called after every mutation.
// An empty cart always has zero totals.
func (c *Cart) Recalculate(policy TotalsPolicy) {
	if c.IsEmpty() {
		c.totals = ZeroTotals()
		return
	}

	var subtotal float64
	for _, item := range c.items {
		subtotal += sanitizeAmount(item.lineTotal)
	}

	c.totals = policy.Totals(sanitizeAmount(subtotal), c.coupon)
}

func (c *Cart) findItem(itemID kernel.UUID) *Item {
	for _, item := range c.items {
		if item.id.IsEqual(itemID) {
			return item
		}
	}
	return nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
