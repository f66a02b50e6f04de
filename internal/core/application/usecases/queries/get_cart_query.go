package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the shopping cart of a single customer.
// A customer who has not added anything yet gets an empty cart view
// rather than an error.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("Cart total: %.2f (%d items)\n", cart.Total, len(cart.Items))
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose cart is requested.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartItemResponse represents one cart line in the read model.
type GetCartItemResponse struct {
	ItemID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   float64
	Quantity    int
	LineTotal   float64
}

// GetCartQueryResponse represents the cart read model with priced lines
// and the totals breakdown computed at the last mutation.
type GetCartQueryResponse struct {
	CartID     kernel.UUID
	CustomerID kernel.UUID
	Items      []GetCartItemResponse
	CouponCode string
	Subtotal   float64
	Tax        float64
	Shipping   float64
	Discount   float64
	Total      float64
}
