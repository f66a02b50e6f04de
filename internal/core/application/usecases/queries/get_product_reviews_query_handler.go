package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductReviewsQueryHandler retrieves a product's reviews from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The helpful count is derived from the voter array, so the listing and the
// toggle command can never disagree.
type GetProductReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductReviewsQueryHandler creates a handler for review listing queries.
// Requires a GORM database connection for query execution.
func NewGetProductReviewsQueryHandler(db *gorm.DB) GetProductReviewsQueryHandler {
	return GetProductReviewsQueryHandler{db: db}
}

func orderClause(sort ReviewSort) string {
	switch sort {
	case ReviewSortHelpful:
		return "helpful_count DESC, created_at DESC"
	case ReviewSortRatingHigh:
		return "rating DESC, created_at DESC"
	case ReviewSortRatingLow:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// Handle executes the query and returns the sorted review listing.
// A product with no reviews yields an empty listing with a zero average,
// never an error.
func (h GetProductReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetProductReviewsQuery,
) (GetProductReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductReviewsQueryResponse{}, err
	}

	response := GetProductReviewsQueryResponse{
		ProductID: query.ProductID(),
		Reviews:   make([]GetProductReviewResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			rating,
			title,
			comment,
			verified_purchase,
			COALESCE(cardinality(helpful_voters), 0) AS helpful_count,
			created_at
		FROM reviews
		WHERE product_id = ?
		ORDER BY `+orderClause(query.Sort()),
		query.ProductID().Bytes()).Rows()
	if err != nil {
		return GetProductReviewsQueryResponse{}, err
	}
	defer rows.Close()

	ratingSum := 0

	for rows.Next() {
		var rev GetProductReviewResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&rev.Rating,
			&rev.Title,
			&rev.Comment,
			&rev.VerifiedPurchase,
			&rev.HelpfulCount,
			&rev.CreatedAt,
		)
		if err != nil {
			return GetProductReviewsQueryResponse{}, err
		}

		rev.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetProductReviewsQueryResponse{}, err
		}
		rev.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return GetProductReviewsQueryResponse{}, err
		}

		ratingSum += rev.Rating
		response.Reviews = append(response.Reviews, rev)
	}

	if err = rows.Err(); err != nil {
		return GetProductReviewsQueryResponse{}, err
	}

	response.ReviewCount = len(response.Reviews)
	if response.ReviewCount > 0 {
		response.AverageRating = float64(ratingSum) / float64(response.ReviewCount)
	}

	return response, nil
}
