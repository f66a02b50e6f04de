package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateReviewCommandIsNotConstructed = errors.New(
		"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
	)
)

// UpdateReviewCommand represents the author's request to edit their review.
type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	reviewID   kernel.UUID
	rating     int
	title      string
	comment    string

	guard guard.ConstructorGuard
}

// NewUpdateReviewCommand creates a command to edit an existing review.
func NewUpdateReviewCommand(
	customerID, reviewID kernel.UUID,
	rating int,
	title, comment string,
) (UpdateReviewCommand, error) {
	command := UpdateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setReviewID(reviewID),
		command.setRating(rating),
		command.setTitle(title),
	); err != nil {
		return UpdateReviewCommand{}, err
	}

	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

// CustomerID returns the requesting customer's identifier.
func (c UpdateReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ReviewID returns the review to edit.
func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Rating returns the new star rating.
func (c UpdateReviewCommand) Rating() int {
	return c.rating
}

// Title returns the new headline.
func (c UpdateReviewCommand) Title() string {
	return c.title
}

// Comment returns the new body.
func (c UpdateReviewCommand) Comment() string {
	return c.comment
}

func (c *UpdateReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *UpdateReviewCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	c.rating = rating
	return nil
}

func (c *UpdateReviewCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}
