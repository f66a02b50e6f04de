package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod identifies how the customer intends to pay. It is recorded as
// metadata only; no settlement happens in this system.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard is a credit or debit card.
	PaymentMethodCard

	// PaymentMethodPaypal is a PayPal account.
	PaymentMethodPaypal

	// PaymentMethodStripe is a Stripe checkout.
	PaymentMethodStripe

	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCard:   "card",
		PaymentMethodPaypal: "paypal",
		PaymentMethodStripe: "stripe",
		PaymentMethodCOD:    "cod",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// String returns the wire/display name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the method is one of the accepted values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("paymentMethod")
	}
	return nil
}

// PaymentStatus tracks the recorded state of a payment.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending is the initial payment status.
	PaymentStatusPending

	// PaymentStatusCompleted indicates the payment was recorded as settled.
	PaymentStatusCompleted

	// PaymentStatusFailed indicates the payment was recorded as failed.
	PaymentStatusFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusPending:   "pending",
		PaymentStatusCompleted: "completed",
		PaymentStatusFailed:    "failed",
	}
}

// String returns the wire/display name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentInfo records the payment metadata carried on an order.
type PaymentInfo struct {
	method        PaymentMethod
	transactionID string
	status        PaymentStatus
}

// NewPaymentInfo creates payment metadata for a fresh order with the payment
// in Pending status.
func NewPaymentInfo(method PaymentMethod) (PaymentInfo, error) {
	if err := method.Validate(); err != nil {
		return PaymentInfo{}, err
	}
	return PaymentInfo{
		method: method,
		status: PaymentStatusPending,
	}, nil
}

// RestorePaymentInfo reconstructs payment metadata from persistence.
func RestorePaymentInfo(method PaymentMethod, transactionID string, status PaymentStatus) (PaymentInfo, error) {
	if err := method.Validate(); err != nil {
		return PaymentInfo{}, err
	}
	return PaymentInfo{
		method:        method,
		transactionID: transactionID,
		status:        status,
	}, nil
}

// Method returns the recorded payment method.
func (p PaymentInfo) Method() PaymentMethod {
	return p.method
}

// TransactionID returns the external transaction reference, if any.
func (p PaymentInfo) TransactionID() string {
	return p.transactionID
}

// Status returns the recorded payment status.
func (p PaymentInfo) Status() PaymentStatus {
	return p.status
}
