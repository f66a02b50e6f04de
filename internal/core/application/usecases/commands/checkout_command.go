package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to convert the customer's cart into an
// order: reserve stock for every line, snapshot the cart into an immutable
// order, and empty the cart. The operation is all-or-nothing.
//
// The optional idempotency key makes retried checkouts safe: a repeated key
// returns the order placed by the first attempt instead of placing another.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	shippingAddress order.Address
	paymentMethod   order.PaymentMethod
	idempotencyKey  string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The address was validated by
// order.NewAddress and the payment method by order.PaymentMethodFromString;
// an empty idempotency key disables replay protection for this request.
func NewCheckoutCommand(
	customerID kernel.UUID,
	shippingAddress order.Address,
	paymentMethod order.PaymentMethod,
	idempotencyKey string,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	command.shippingAddress = shippingAddress
	command.idempotencyKey = idempotencyKey
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the destination for the order.
func (c CheckoutCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

// PaymentMethod returns the selected payment method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// IdempotencyKey returns the client-supplied replay key, "" when absent.
func (c CheckoutCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
