package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the immutable record created once from a cart at checkout. It is
// the aggregate root that manages the fulfillment lifecycle from Pending
// through Delivered, or to Cancelled.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and customer
//   - Item snapshots, address, payment method, and totals never change after creation
//   - Only status, tracking, and deliveredAt are mutable, through validated transitions
//   - Orders are never deleted; they are the historical record
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the unique human-facing order number
	number string

	// customerID is the owning customer's ID
	customerID kernel.UUID

	// items is the immutable snapshot captured at checkout
	items []Item

	// shippingAddress is the destination captured at checkout
	shippingAddress Address

	// paymentInfo is the recorded payment metadata
	paymentInfo PaymentInfo

	// status is the current state in the fulfillment lifecycle
	status Status

	// totals is the monetary snapshot carried verbatim from the cart
	totals Totals

	// couponCode is the code of the coupon applied at checkout, if any
	couponCode string

	// tracking holds optional carrier details set when the order ships
	tracking Tracking

	// deliveredAt is stamped exactly once, on the transition to Delivered
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Pending status from a checkout snapshot.
// The items slice must be non-empty; every element was validated by NewItem.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentInfo PaymentInfo,
	totals Totals,
	couponCode string,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.shippingAddress = shippingAddress
	o.paymentInfo = paymentInfo
	o.totals = totals
	o.couponCode = couponCode
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status, tracking details, and delivery timestamp.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentInfo PaymentInfo,
	totals Totals,
	couponCode string,
	status Status,
	tracking Tracking,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, items, shippingAddress, paymentInfo, totals, couponCode)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.tracking = tracking
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the unique human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Items returns the immutable item snapshot captured at checkout.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the destination captured at checkout.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// PaymentInfo returns the recorded payment metadata.
func (o *Order) PaymentInfo() PaymentInfo {
	return o.paymentInfo
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Totals returns the monetary snapshot taken from the cart at commit time.
func (o *Order) Totals() Totals {
	return o.totals
}

// CouponCode returns the applied coupon code, or "" when none was used.
func (o *Order) CouponCode() string {
	return o.couponCode
}

// Tracking returns the carrier tracking details, zero when not yet shipped.
func (o *Order) Tracking() Tracking {
	return o.tracking
}

// DeliveredAt returns the delivery timestamp, nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Confirm moves the order from Pending to Confirmed.
// Forward transitions carry no inventory side effects.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProcessing moves the order from Confirmed to Processing.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship moves the order from Processing to Shipped and records the optional
// tracking details.
func (o *Order) Ship(tracking Tracking) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.tracking = tracking
	return nil
}

// Deliver moves the order from Shipped to Delivered, a terminal state, and
// stamps deliveredAt.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel moves the order to Cancelled, a terminal state. The caller is
// responsible for releasing every item quantity back to stock; the snapshot
// remains readable through Items for exactly that purpose.
//
// Cancelling a delivered or already-cancelled order fails with
// InvalidTransition and leaves state unchanged, making retried cancellations
// safe: stock can never be released twice for the same order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
