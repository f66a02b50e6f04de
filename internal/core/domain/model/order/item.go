package order

import (
	"errors"
	"fmt"
	"math"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is an immutable snapshot of one cart line taken at checkout. It copies
// the product's name, image, and price at that instant, so later catalog edits
// never alter the historical record of what was bought and for how much.
type Item struct {
	productID kernel.UUID
	name      string
	image     string
	unitPrice float64
	quantity  int
	lineTotal float64
}

// NewItem creates an order line snapshot. The line total is derived from the
// unit price and quantity; invalid arithmetic collapses to 0.
func NewItem(productID kernel.UUID, name, image string, unitPrice float64, quantity int) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.image = image
	item.lineTotal = item.unitPrice * float64(item.quantity)
	if math.IsNaN(item.lineTotal) || math.IsInf(item.lineTotal, 0) {
		item.lineTotal = 0
	}

	return item, nil
}

// ProductID returns the snapshotted product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name at checkout time.
func (i Item) Name() string {
	return i.name
}

// Image returns the product image URL at checkout time.
func (i Item) Image() string {
	return i.image
}

// UnitPrice returns the unit price at checkout time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() float64 {
	return i.lineTotal
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%v is not a valid price", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
