package product

import (
	"errors"
	"math"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Rating is the aggregated review rating of a product. It is always derived
// from the full set of the product's reviews, never edited directly.
type Rating struct {
	average float64
	count   int
}

// NewRating creates a rating snapshot. A non-finite average collapses to zero
// so a corrupted aggregate can never leak NaN into responses.
func NewRating(average float64, count int) Rating {
	if math.IsNaN(average) || math.IsInf(average, 0) {
		average = 0
	}
	if count < 0 {
		count = 0
	}
	return Rating{average: average, count: count}
}

// Average returns the mean rating across all reviews, 0 when there are none.
func (r Rating) Average() float64 {
	return r.average
}

// Count returns the number of reviews the average was computed over.
func (r Rating) Count() int {
	return r.count
}

// Product represents a sellable catalog item. It is an aggregate root that
// owns the stock counter guarded by the inventory ledger.
//
// Business rules:
//   - Product must have a valid UUID, non-empty name, and non-negative price
//   - Stock never goes below zero; reservations are rejected instead
//   - Rating is recomputed from reviews, never mutated incrementally
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the display name of the product
	name string
	// description is the free-form catalog description
	description string
	// image is the catalog image reference
	image string
	// price is the current unit price; order items snapshot it at add time
	price float64
	// stock is the on-hand quantity available for reservation
	stock int
	// active marks whether the product is currently sellable
	active bool
	// rating is the aggregate derived from the product's reviews
	rating Rating
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with zero rating and the given stock.
func NewProduct(id kernel.UUID, name, description, image string, price float64, stock int) (*Product, error) {
	product := &Product{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.image = image
	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage, including its
// activity flag and aggregated rating.
func RestoreProduct(
	id kernel.UUID,
	name, description, image string,
	price float64,
	stock int,
	active bool,
	rating Rating,
) (*Product, error) {
	product, err := NewProduct(id, name, description, image, price, stock)
	if err != nil {
		return nil, err
	}

	product.active = active
	product.rating = rating
	return product, nil
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// Description returns the catalog description.
func (p *Product) Description() string {
	return p.description
}

// Image returns the catalog image reference.
func (p *Product) Image() string {
	return p.image
}

// Price returns the current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Stock returns the on-hand quantity available for reservation.
func (p *Product) Stock() int {
	return p.stock
}

// IsActive reports whether the product is currently sellable.
func (p *Product) IsActive() bool {
	return p.active
}

// Rating returns the aggregated review rating.
func (p *Product) Rating() Rating {
	return p.rating
}

// HasStock reports whether the requested quantity can be reserved right now.
// The check is advisory; the authoritative guard is the conditional update in
// the inventory ledger.
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && quantity <= p.stock
}

// Reserve decrements the stock counter for the given quantity. It fails with
// InsufficientStock when the quantity exceeds what is on hand, leaving stock
// unchanged.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity > p.stock {
		return errs.NewInsufficientStockError(p.name, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Release returns a previously reserved quantity back to stock.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	p.stock += quantity
	return nil
}

// UpdateRating replaces the aggregated rating with a freshly computed one.
func (p *Product) UpdateRating(rating Rating) {
	p.rating = rating
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	p.stock = stock
	return nil
}
