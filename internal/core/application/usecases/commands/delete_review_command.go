package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteReviewCommandIsNotConstructed = errors.New(
		"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
	)
)

// DeleteReviewCommand represents the author's request to delete their review.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	reviewID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review.
func NewDeleteReviewCommand(customerID, reviewID kernel.UUID) (DeleteReviewCommand, error) {
	command := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setReviewID(reviewID),
	); err != nil {
		return DeleteReviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// CustomerID returns the requesting customer's identifier.
func (c DeleteReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ReviewID returns the review to delete.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c *DeleteReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}
