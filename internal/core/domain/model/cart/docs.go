// Package cart provides domain entities and business logic for the customer's
// draft purchase in the storefront system. It implements the Cart aggregate
// root with line items, coupon handling, and deterministic totals.
//
// The package includes:
//   - Cart: The aggregate root owning line items, the active coupon, and totals
//   - Item: A cart line with the unit price captured at add time
//   - Coupon: A discount rule value object (percentage or fixed)
//   - Totals: The monetary summary, guaranteed free of NaN values
//
// Key business rules:
//   - One cart per customer; created lazily, emptied rather than deleted
//   - A product already in the cart merges quantities into its existing line
//   - Line totals always equal unit price times quantity
//   - Totals are recomputed through an injected TotalsPolicy after every mutation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package cart
