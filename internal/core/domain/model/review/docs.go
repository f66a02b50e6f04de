// Package review provides the Review aggregate: a customer's 1-5 star rating
// of a product with an optional comment, a verified purchase flag, and
// per-voter helpful votes.
//
// Reviews are the single source of truth for rating data. The product's
// aggregate rating is recomputed from the full review set whenever a review
// is created, edited, or deleted.
package review
