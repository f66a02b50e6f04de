// Package restorationrepo provides persistence for pending stock restorations.
// Restoration rows are the durable work queue behind order cancellation: each
// row represents stock units that still have to be returned to a product.
package restorationrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// StockRestorationDTO represents the database structure for restoration records.
type StockRestorationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Completed bool `gorm:"index"`
}

// TableName specifies the database table name for restoration entities.
func (StockRestorationDTO) TableName() string {
	return "stock_restorations"
}

// fromDomain converts a restoration domain aggregate to its database representation.
func fromDomain(aggregate *product.StockRestoration) StockRestorationDTO {
	return StockRestorationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),
		Quantity:  aggregate.Quantity(),
		Completed: aggregate.IsCompleted(),
	}
}

// toDomain converts a database DTO to a restoration domain aggregate.
func toDomain(dto StockRestorationDTO) (*product.StockRestoration, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreStockRestoration(id, orderID, productID, dto.Quantity, dto.Completed)
}
