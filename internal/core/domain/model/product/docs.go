// Package product provides the catalog side of the storefront domain: the
// Product aggregate with its stock counter and aggregated review rating, and
// the StockRestoration record used to return stock after cancellations.
//
// Stock is the single source of truth for availability. Reservations and
// releases ultimately happen through conditional updates in the persistence
// layer; the in-memory Reserve and Release methods mirror the same rules for
// domain logic and tests.
package product
