package cart

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is a single line of a cart: a product reference, a quantity, and the
// unit price captured when the product was first added. The price is fixed at
// add time and never re-read from the catalog, so a later price change does
// not silently reprice a draft cart.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice float64
	lineTotal float64
}

// newItem creates a cart line for a product at the given unit price.
func newItem(productID kernel.UUID, quantity int, unitPrice float64) (*Item, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}

	item := &Item{
		id:        kernel.NewUUID(),
		productID: productID,
		unitPrice: sanitizeAmount(unitPrice),
	}
	item.setQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs a cart line from persistence.
func RestoreItem(id, productID kernel.UUID, quantity int, unitPrice float64) (*Item, error) {
	item, err := newItem(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

// ID returns the line's unique identifier. Update and remove operations
// address lines by this id, not by product.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units on this line.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at add time.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// LineTotal returns unit price times quantity.
func (i *Item) LineTotal() float64 {
	return i.lineTotal
}

// setQuantity updates the quantity and keeps lineTotal consistent with it.
func (i *Item) setQuantity(quantity int) {
	i.quantity = quantity
	i.lineTotal = sanitizeAmount(i.unitPrice * float64(quantity))
}
