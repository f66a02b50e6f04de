package services

import (
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/review"
)

// AggregateRating recomputes a product's rating from its full review set.
// An empty set yields the zero rating rather than a division by zero; the
// NaN guard in product.NewRating backs this up.
func AggregateRating(reviews []*review.Review) product.Rating {
	if len(reviews) == 0 {
		return product.NewRating(0, 0)
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating()
	}

	return product.NewRating(float64(sum)/float64(len(reviews)), len(reviews))
}
