package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
)

// AddReviewCommand represents a request to review a product. Each customer may
// review a product once; the verified purchase flag is derived by the handler,
// never supplied by the client.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	rating     int
	title      string
	comment    string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to add a product review.
func NewAddReviewCommand(
	customerID, productID kernel.UUID,
	rating int,
	title, comment string,
) (AddReviewCommand, error) {
	command := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setProductID(productID),
		command.setRating(rating),
		command.setTitle(title),
	); err != nil {
		return AddReviewCommand{}, err
	}

	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// CustomerID returns the review author's identifier.
func (c AddReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the reviewed product's identifier.
func (c AddReviewCommand) ProductID() kernel.UUID {
	return c.productID
}

// Rating returns the star rating, 1 to 5.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Title returns the review headline.
func (c AddReviewCommand) Title() string {
	return c.title
}

// Comment returns the review body, possibly empty.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddReviewCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	c.rating = rating
	return nil
}

func (c *AddReviewCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}
