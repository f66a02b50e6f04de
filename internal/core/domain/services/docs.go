// Package services provides domain services that implement business logic
// spanning multiple aggregates: pricing carts from the injected rate
// configuration and aggregating product ratings from review sets.
package services
