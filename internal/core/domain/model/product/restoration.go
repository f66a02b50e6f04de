package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrRestorationIsNotConstructed is returned when using an improperly
// initialized StockRestoration.
var ErrRestorationIsNotConstructed = errors.New("StockRestoration must be created via NewStockRestoration constructor")

// StockRestoration is a durable intent to return a reserved quantity back to
// stock after an order cancellation. Rows are written in the same transaction
// that cancels the order and completed asynchronously, so a crash between the
// commit and the release never loses stock. Replaying a completed row is a
// no-op, giving at-least-once delivery without double restoration.
type StockRestoration struct {
	// id uniquely identifies the restoration
	id kernel.UUID
	// orderID is the cancelled order the quantity came from
	orderID kernel.UUID
	// productID is the product to return the quantity to
	productID kernel.UUID
	// quantity is the amount to add back to stock
	quantity int
	// completed marks whether the stock has been returned
	completed bool
	// guard ensures the restoration was created via a constructor
	guard guard.ConstructorGuard
}

// NewStockRestoration creates a pending restoration for one order item.
func NewStockRestoration(id, orderID, productID kernel.UUID, quantity int) (*StockRestoration, error) {
	restoration := &StockRestoration{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restoration.setID(id),
		restoration.setOrderID(orderID),
		restoration.setProductID(productID),
		restoration.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return restoration, nil
}

// RestoreStockRestoration reconstructs a restoration from persistent storage.
func RestoreStockRestoration(id, orderID, productID kernel.UUID, quantity int, completed bool) (*StockRestoration, error) {
	restoration, err := NewStockRestoration(id, orderID, productID, quantity)
	if err != nil {
		return nil, err
	}

	restoration.completed = completed
	return restoration, nil
}

// Validate checks if the StockRestoration was properly constructed.
func (r *StockRestoration) Validate() error {
	if r == nil {
		return ErrRestorationIsNotConstructed
	}
	return r.guard.Validate(ErrRestorationIsNotConstructed)
}

// ID returns the restoration's unique identifier.
func (r *StockRestoration) ID() kernel.UUID {
	return r.id
}

// OrderID returns the cancelled order the quantity came from.
func (r *StockRestoration) OrderID() kernel.UUID {
	return r.orderID
}

// ProductID returns the product to return the quantity to.
func (r *StockRestoration) ProductID() kernel.UUID {
	return r.productID
}

// Quantity returns the amount to add back to stock.
func (r *StockRestoration) Quantity() int {
	return r.quantity
}

// IsCompleted reports whether the stock has already been returned.
func (r *StockRestoration) IsCompleted() bool {
	return r.completed
}

// MarkCompleted records that the quantity was returned to stock.
func (r *StockRestoration) MarkCompleted() {
	r.completed = true
}

func (r *StockRestoration) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *StockRestoration) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *StockRestoration) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *StockRestoration) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	r.quantity = quantity
	return nil
}
