// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
// The helpful voter set is stored as a Postgres text array, so vote counts
// are always derived from actual voter identities.
package reviewrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReviewDTO represents the database structure for persisting review aggregates.
// One review per customer per product is enforced with a composite unique index.
type ReviewDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_product_customer"`
	CustomerID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_product_customer"`
	Rating           int
	Title            string
	Comment          string
	VerifiedPurchase bool
	HelpfulVoters    pq.StringArray `gorm:"type:text[]"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	voters := make(pq.StringArray, 0, len(aggregate.HelpfulVoters()))
	for _, voterID := range aggregate.HelpfulVoters() {
		voters = append(voters, voterID.String())
	}

	return ReviewDTO{
		ID:               aggregate.ID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Rating:           aggregate.Rating(),
		Title:            aggregate.Title(),
		Comment:          aggregate.Comment(),
		VerifiedPurchase: aggregate.IsVerifiedPurchase(),
		HelpfulVoters:    voters,
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	voters := make([]kernel.UUID, 0, len(dto.HelpfulVoters))
	for _, raw := range dto.HelpfulVoters {
		voterID, voterErr := kernel.UUIDFromString(raw)
		if voterErr != nil {
			return nil, voterErr
		}
		voters = append(voters, voterID)
	}

	return review.RestoreReview(
		id,
		productID,
		customerID,
		dto.Rating,
		dto.Title,
		dto.Comment,
		dto.VerifiedPurchase,
		voters,
		dto.CreatedAt,
	)
}
