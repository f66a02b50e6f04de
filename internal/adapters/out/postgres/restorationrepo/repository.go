package restorationrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormStockRestorationRepository implements StockRestorationRepository using GORM.
type GormStockRestorationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRestorationRepository creates a new GORM restoration repository.
func NewGormStockRestorationRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRestorationRepository {
	return &GormStockRestorationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restoration record to the database.
func (r *GormStockRestorationRepository) Add(ctx context.Context, aggregate *product.StockRestoration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the completed flag of an existing record.
func (r *GormStockRestorationRepository) Update(ctx context.Context, aggregate *product.StockRestoration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StockRestorationDTO{}).
		Where("id = ?", dto.ID).
		Select("completed").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllPending retrieves every restoration not yet completed, oldest first.
func (r *GormStockRestorationRepository) GetAllPending(ctx context.Context) ([]*product.StockRestoration, error) {
	var dtos []StockRestorationDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "completed = ?", false).Error
	if err != nil {
		return nil, err
	}

	restorations := make([]*product.StockRestoration, 0, len(dtos))
	for _, dto := range dtos {
		restoration, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restorations = append(restorations, restoration)
	}

	return restorations, nil
}
