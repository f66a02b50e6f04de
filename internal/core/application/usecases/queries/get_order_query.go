package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full detail.
// The requesting customer must own the order; anyone else gets an
// unauthorized error even when the order exists.
//
// Example:
//
//	query, err := NewGetOrderQuery(customerID, orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", detail.Number, detail.Status)
type GetOrderQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order on behalf of a customer.
func NewGetOrderQuery(customerID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer requesting the order.
func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderItemResponse is one immutable snapshot line of the order.
type GetOrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Image     string
	UnitPrice float64
	Quantity  int
	LineTotal float64
}

// GetOrderAddressResponse is the shipping address captured at checkout.
type GetOrderAddressResponse struct {
	FullName     string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	PostalCode   string
}

// GetOrderTrackingResponse is the shipment tracking detail, present once
// the order has been shipped.
type GetOrderTrackingResponse struct {
	Carrier        string
	TrackingNumber string
	TrackingURL    string
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Status          string
	Items           []GetOrderItemResponse
	ShippingAddress GetOrderAddressResponse
	PaymentMethod   string
	CouponCode      string
	Subtotal        float64
	Tax             float64
	Shipping        float64
	Discount        float64
	Total           float64
	Tracking        *GetOrderTrackingResponse
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}
