package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// Identifiers must come from NewUUID, UUIDFromString, or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// storefront: products, carts, orders, and reviews all key on it. It wraps
// github.com/google/uuid so the domain never handles raw identifier bytes.
//
// The zero value is invalid. Construct through one of the factory functions:
//
//	// A fresh identifier for a new aggregate.
//	productID := kernel.NewUUID()
//
//	// From the text form carried in headers and URLs.
//	customerID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
//
// UUID is immutable and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random version 4 UUID. This is how new aggregates
// get their identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its text form. It accepts the canonical
// hyphenated format plus the braced and urn:uuid variants. Request handlers
// use it to turn path parameters and the X-User-Id header into identifiers.
//
// Example:
//
//	id, err := kernel.UUIDFromString(ctx.Param("productId"))
//	if err != nil {
//	    return fmt.Errorf("invalid product ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice. Repositories use it
// when scanning identifier columns back out of Postgres. A slice of the
// wrong length or a nil UUID yields an error.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical hyphenated form, suitable for logs, JSON
// responses, and text columns. The zero value renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence DTOs and query
// arguments. Take a slice of the result (id.Bytes()[:]) when a []byte is
// needed. Keep usage confined to adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call it on every incoming identifier.
//
// Example:
//
//	func NewProduct(id kernel.UUID) (*Product, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid product ID: %w", err)
//	    }
//	    return &Product{id: id}, nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
