package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetProductReviewsQueryIsNotConstructed = errors.New(
		"GetProductReviewsQuery must be created via NewGetProductReviewsQuery constructor",
	)
)

// ReviewSort selects the ordering of a product's review listing.
type ReviewSort int

const (
	// ReviewSortUnknown represents an invalid or undefined sort order.
	ReviewSortUnknown ReviewSort = iota

	// ReviewSortNewest orders reviews by creation time, newest first.
	ReviewSortNewest

	// ReviewSortHelpful orders reviews by helpful vote count, highest first.
	ReviewSortHelpful

	// ReviewSortRatingHigh orders reviews by rating, highest first.
	ReviewSortRatingHigh

	// ReviewSortRatingLow orders reviews by rating, lowest first.
	ReviewSortRatingLow
)

func getReviewSortStrings() map[ReviewSort]string {
	return map[ReviewSort]string{
		ReviewSortNewest:     "newest",
		ReviewSortHelpful:    "helpful",
		ReviewSortRatingHigh: "rating-high",
		ReviewSortRatingLow:  "rating-low",
	}
}

// ReviewSortFromString parses a sort order from its string form.
// An empty string defaults to the newest-first ordering.
func ReviewSortFromString(s string) (ReviewSort, error) {
	if s == "" {
		return ReviewSortNewest, nil
	}

	for sort, name := range getReviewSortStrings() {
		if name == s {
			return sort, nil
		}
	}

	return ReviewSortUnknown, errs.NewValueIsInvalidError("sort")
}

// String returns the string form of the sort order.
func (s ReviewSort) String() string {
	if name, ok := getReviewSortStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the sort order is one of the known values.
func (s ReviewSort) Validate() error {
	if _, ok := getReviewSortStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("sort")
	}
	return nil
}

// GetProductReviewsQuery retrieves all reviews of a product together with
// the aggregate rating summary.
//
// Example:
//
//	query, err := NewGetProductReviewsQuery(productID, ReviewSortHelpful)
//	if err != nil {
//	    return err
//	}
//
//	listing, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get reviews: %w", err)
//	}
//
//	fmt.Printf("%.1f stars over %d reviews\n", listing.AverageRating, listing.ReviewCount)
type GetProductReviewsQuery struct {
	productID kernel.UUID
	sort      ReviewSort

	guard guard.ConstructorGuard
}

// NewGetProductReviewsQuery creates a query for a product's review listing.
func NewGetProductReviewsQuery(productID kernel.UUID, sort ReviewSort) (GetProductReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductReviewsQuery{}, err
	}
	if err := sort.Validate(); err != nil {
		return GetProductReviewsQuery{}, err
	}

	return GetProductReviewsQuery{
		productID: productID,
		sort:      sort,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the product whose reviews are requested.
func (q GetProductReviewsQuery) ProductID() kernel.UUID {
	return q.productID
}

// Sort returns the requested ordering.
func (q GetProductReviewsQuery) Sort() ReviewSort {
	return q.sort
}

// Validate ensures the query was created through the constructor.
func (q GetProductReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductReviewsQueryIsNotConstructed)
}

// GetProductReviewResponse is a single review in the listing.
type GetProductReviewResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Rating           int
	Title            string
	Comment          string
	VerifiedPurchase bool
	HelpfulCount     int
	CreatedAt        time.Time
}

// GetProductReviewsQueryResponse is the review listing read model with
// the product's aggregate rating.
type GetProductReviewsQueryResponse struct {
	ProductID     kernel.UUID
	AverageRating float64
	ReviewCount   int
	Reviews       []GetProductReviewResponse
}
