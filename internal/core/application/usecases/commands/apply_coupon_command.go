package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrApplyCouponCommandIsNotConstructed = errors.New(
		"ApplyCouponCommand must be created via NewApplyCouponCommand constructor",
	)
)

// ApplyCouponCommand represents a request to apply a coupon code to the
// customer's cart. A newly applied coupon replaces any previous one.
type ApplyCouponCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	code       string

	guard guard.ConstructorGuard
}

// NewApplyCouponCommand creates a command to apply a coupon code.
// The code is matched case sensitively and must be non-empty.
func NewApplyCouponCommand(customerID kernel.UUID, code string) (ApplyCouponCommand, error) {
	command := ApplyCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setCode(code),
	); err != nil {
		return ApplyCouponCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyCouponCommand) Validate() error {
	return c.guard.Validate(ErrApplyCouponCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ApplyCouponCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Code returns the coupon code as entered by the customer.
func (c ApplyCouponCommand) Code() string {
	return c.code
}

func (c *ApplyCouponCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ApplyCouponCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("coupon code")
	}

	c.code = code
	return nil
}
