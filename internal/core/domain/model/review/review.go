package review

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// minRating is the lowest accepted star rating.
	minRating = 1
	// maxRating is the highest accepted star rating.
	maxRating = 5
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a customer's rating of a product. It is an aggregate root and the
// single source of truth for rating data; the product's aggregate rating is
// always recomputed from the full review set.
//
// Business rules:
//   - Rating is an integer from 1 to 5 inclusive
//   - A customer writes at most one review per product
//   - verifiedPurchase is derived from the customer's delivered orders and
//     never changes after creation
//   - A helpful vote toggles per voter; voting twice removes the vote
type Review struct {
	// id uniquely identifies the review
	id kernel.UUID
	// productID is the reviewed product
	productID kernel.UUID
	// customerID is the review author
	customerID kernel.UUID
	// rating is the star rating, 1 to 5
	rating int
	// title is the short review headline
	title string
	// comment is the free-form review body
	comment string
	// verifiedPurchase marks whether the author had a delivered order
	// containing the product at creation time
	verifiedPurchase bool
	// helpfulVoters are the customers who currently mark the review helpful
	helpfulVoters []kernel.UUID
	// createdAt is the creation timestamp, used for newest-first sorting
	createdAt time.Time
	// guard ensures the review was created via a constructor
	guard guard.ConstructorGuard
}

// NewReview creates a review with no helpful votes.
func NewReview(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	rating int,
	title, comment string,
	verifiedPurchase bool,
) (*Review, error) {
	review := &Review{
		verifiedPurchase: verifiedPurchase,
		createdAt:        time.Now().UTC(),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		review.setID(id),
		review.setProductID(productID),
		review.setCustomerID(customerID),
		review.setRating(rating),
		review.setTitle(title),
	); err != nil {
		return nil, err
	}

	review.comment = comment
	return review, nil
}

// RestoreReview reconstructs a review from persistent storage, including its
// helpful voters and original creation timestamp.
func RestoreReview(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	rating int,
	title, comment string,
	verifiedPurchase bool,
	helpfulVoters []kernel.UUID,
	createdAt time.Time,
) (*Review, error) {
	review, err := NewReview(id, productID, customerID, rating, title, comment, verifiedPurchase)
	if err != nil {
		return nil, err
	}

	review.helpfulVoters = make([]kernel.UUID, len(helpfulVoters))
	copy(review.helpfulVoters, helpfulVoters)
	review.createdAt = createdAt
	return review, nil
}

// Validate checks if the Review was properly constructed.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ProductID returns the reviewed product's identifier.
func (r *Review) ProductID() kernel.UUID {
	return r.productID
}

// CustomerID returns the author's identifier.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// IsOwnedBy reports whether the review was written by the given customer.
func (r *Review) IsOwnedBy(customerID kernel.UUID) bool {
	return r.customerID.IsEqual(customerID)
}

// Rating returns the star rating, 1 to 5.
func (r *Review) Rating() int {
	return r.rating
}

// Title returns the review headline.
func (r *Review) Title() string {
	return r.title
}

// Comment returns the review body.
func (r *Review) Comment() string {
	return r.comment
}

// IsVerifiedPurchase reports whether the author had a delivered order
// containing the product when the review was created.
func (r *Review) IsVerifiedPurchase() bool {
	return r.verifiedPurchase
}

// HelpfulVoters returns the customers who currently mark the review helpful.
func (r *Review) HelpfulVoters() []kernel.UUID {
	voters := make([]kernel.UUID, len(r.helpfulVoters))
	copy(voters, r.helpfulVoters)
	return voters
}

// HelpfulCount returns the current number of helpful votes.
func (r *Review) HelpfulCount() int {
	return len(r.helpfulVoters)
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// Edit replaces the rating, title, and comment. The verified purchase flag is
// not re-derived; it reflects the state at creation time.
func (r *Review) Edit(rating int, title, comment string) error {
	if err := errors.Join(
		r.setRating(rating),
		r.setTitle(title),
	); err != nil {
		return err
	}

	r.comment = comment
	return nil
}

// ToggleHelpful flips the given voter's helpful vote and reports whether the
// review is now marked helpful by that voter.
func (r *Review) ToggleHelpful(voterID kernel.UUID) (bool, error) {
	if err := voterID.Validate(); err != nil {
		return false, err
	}

	for i, voter := range r.helpfulVoters {
		if voter.IsEqual(voterID) {
			r.helpfulVoters = append(r.helpfulVoters[:i], r.helpfulVoters[i+1:]...)
			return false, nil
		}
	}

	r.helpfulVoters = append(r.helpfulVoters, voterID)
	return true, nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	r.title = title
	return nil
}
