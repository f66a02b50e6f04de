// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The shipping address and tracking detail are embedded with column prefixes,
// and the order number carries a unique constraint.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	Status        int
	PaymentMethod int
	CouponCode    string
	Subtotal      float64
	Tax           float64
	Shipping      float64
	Discount      float64
	Total         float64
	Address       AddressDTO     `gorm:"embedded;embeddedPrefix:ship_"`
	Tracking      TrackingDTO    `gorm:"embedded;embeddedPrefix:tracking_"`
	DeliveredAt   *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	FullName     string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	PostalCode   string
}

// TrackingDTO represents the embedded shipment tracking detail within the order table.
type TrackingDTO struct {
	Carrier string
	Number  string
	URL     string
}

// OrderItemDTO represents one immutable snapshot line of an order.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Image     string
	UnitPrice float64
	Quantity  int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Image:     item.Image(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	address := aggregate.ShippingAddress()
	tracking := aggregate.Tracking()
	totals := aggregate.Totals()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.Number(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentInfo().Method()),
		CouponCode:    aggregate.CouponCode(),
		Subtotal:      totals.Subtotal(),
		Tax:           totals.Tax(),
		Shipping:      totals.Shipping(),
		Discount:      totals.Discount(),
		Total:         totals.Total(),
		Address: AddressDTO{
			FullName:     address.FullName(),
			PhoneNumber:  address.PhoneNumber(),
			AddressLine1: address.AddressLine1(),
			AddressLine2: address.AddressLine2(),
			City:         address.City(),
			State:        address.State(),
			Country:      address.Country(),
			PostalCode:   address.PostalCode(),
		},
		Tracking: TrackingDTO{
			Carrier: tracking.Carrier(),
			Number:  tracking.TrackingNumber(),
			URL:     tracking.TrackingURL(),
		},
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, tracking, and the
// delivery timestamp using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Image, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.FullName,
		dto.Address.PhoneNumber,
		dto.Address.AddressLine1,
		dto.Address.AddressLine2,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Country,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	paymentInfo, err := order.NewPaymentInfo(order.PaymentMethod(dto.PaymentMethod))
	if err != nil {
		return nil, err
	}

	totals := order.NewTotals(dto.Subtotal, dto.Tax, dto.Shipping, dto.Discount, dto.Total)
	tracking := order.NewTracking(dto.Tracking.Carrier, dto.Tracking.Number, dto.Tracking.URL)

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		items,
		address,
		paymentInfo,
		totals,
		dto.CouponCode,
		order.Status(dto.Status),
		tracking,
		dto.DeliveredAt,
	)
}
