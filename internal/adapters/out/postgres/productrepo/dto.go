// Package productrepo provides data transfer objects and mapping functions for product persistence.
// The stock counter lives in this table and is only ever changed through
// atomic conditional updates, never read-modify-write.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	Image         string
	Price         float64
	Stock         int
	Active        bool
	RatingAverage float64
	RatingCount   int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Image:         aggregate.Image(),
		Price:         aggregate.Price(),
		Stock:         aggregate.Stock(),
		Active:        aggregate.IsActive(),
		RatingAverage: aggregate.Rating().Average(),
		RatingCount:   aggregate.Rating().Count(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Image,
		dto.Price,
		dto.Stock,
		dto.Active,
		product.NewRating(dto.RatingAverage, dto.RatingCount),
	)
}
