package order

import (
	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │              │            │
//	   └────────────┴──────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves either state.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	StatusPending

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed

	// StatusProcessing indicates the order is being picked and packed.
	StatusProcessing

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	// Terminal: no further transitions are allowed.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled and its stock released.
	// Terminal: no further transitions are allowed.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Only valid statuses parse; anything else fails with a validation error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire/display name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (Confirmed, nil) on a valid transition, or (0, InvalidTransition)
// with the status unchanged otherwise.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError(s.String(), StatusConfirmed.String())
	}
	return StatusConfirmed, nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Confirmed -> Processing
func (s Status) StartProcessing() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewInvalidTransitionError(s.String(), StatusProcessing.String())
	}
	return StatusProcessing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped
func (s Status) Ship() (Status, error) {
	if s != StatusProcessing {
		return 0, errs.NewInvalidTransitionError(s.String(), StatusShipped.String())
	}
	return StatusShipped, nil
}

// Deliver transitions the status to Delivered, a terminal state.
//
// Valid transitions:
//   - Shipped -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != StatusShipped {
		return 0, errs.NewInvalidTransitionError(s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled, a terminal state.
//
// Valid transitions:
//   - Pending, Confirmed, Processing, Shipped -> Cancelled
//
// Cancelling a delivered or already-cancelled order fails with
// InvalidTransition and the status is unchanged, so a retried cancel can
// never release stock twice.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
