// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The totals breakdown is stored denormalized so cart reads never have to
// re-run the pricing policy.
type CartDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CouponCode     string
	CouponDiscount float64
	CouponType     int
	Subtotal       float64
	Tax            float64
	Shipping       float64
	Discount       float64
	Total          float64
	Items          []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one mutable cart line. Position records the line's
// place in the aggregate's item sequence so reads preserve insertion order.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Position  int
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:        item.ID().Bytes(),
			CartID:    aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Position:  position,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	totals := aggregate.Totals()
	coupon := aggregate.Coupon()

	return CartDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		CouponCode:     coupon.Code(),
		CouponDiscount: coupon.Discount(),
		CouponType:     int(coupon.DiscountType()),
		Subtotal:       totals.Subtotal(),
		Tax:            totals.Tax(),
		Shipping:       totals.Shipping(),
		Discount:       totals.Discount(),
		Total:          totals.Total(),
		Items:          items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
// Reconstructs the complete aggregate including lines, coupon, and totals
// using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := cart.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var coupon cart.Coupon
	if dto.CouponCode != "" {
		coupon, err = cart.NewCoupon(dto.CouponCode, dto.CouponDiscount, cart.DiscountType(dto.CouponType))
		if err != nil {
			return nil, err
		}
	}

	totals := cart.NewTotals(dto.Subtotal, dto.Tax, dto.Shipping, dto.Discount, dto.Total)

	return cart.RestoreCart(id, customerID, items, coupon, totals)
}
