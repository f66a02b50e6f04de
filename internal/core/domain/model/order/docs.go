// Package order provides domain entities and business logic for order management
// in the storefront system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root created once from a cart at checkout
//   - Status: A state machine that enforces valid fulfillment transitions
//   - Item: An immutable snapshot of a cart line at checkout time
//   - Address, PaymentInfo, Totals, Tracking: value objects snapshotted onto the order
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number, customer, and items
//   - Status follows pending -> confirmed -> processing -> shipped -> delivered,
//     with cancellation allowed from every non-terminal state
//   - Delivered and cancelled are terminal states
//   - Everything except status, tracking, and the delivery timestamp is immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
