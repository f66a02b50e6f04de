package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetMyOrdersQueryIsNotConstructed = errors.New(
		"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
	)
)

// GetMyOrdersQuery retrieves the order history of a single customer.
// Returns summaries sorted newest first.
//
// Example:
//
//	query, err := NewGetMyOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %.2f\n", o.Number, o.Status, o.Total)
//	}
type GetMyOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the given customer's orders.
func NewGetMyOrdersQuery(customerID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose orders are requested.
func (q GetMyOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// GetMyOrdersQueryResponse is a single order summary in the history listing.
type GetMyOrdersQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Status    string
	ItemCount int
	Total     float64
	CreatedAt time.Time
}
