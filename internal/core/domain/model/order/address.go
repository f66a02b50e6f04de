package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// Address is the shipping destination snapshotted onto an order at checkout.
// All fields except the second address line are required.
type Address struct {
	fullName     string
	phoneNumber  string
	addressLine1 string
	addressLine2 string
	city         string
	state        string
	country      string
	postalCode   string
}

// NewAddress creates a validated shipping address.
func NewAddress(fullName, phoneNumber, addressLine1, addressLine2, city, state, country, postalCode string) (Address, error) {
	addr := Address{
		addressLine2: addressLine2,
	}

	if err := errors.Join(
		addr.setRequired(&addr.fullName, fullName, "fullName"),
		addr.setRequired(&addr.phoneNumber, phoneNumber, "phoneNumber"),
		addr.setRequired(&addr.addressLine1, addressLine1, "addressLine1"),
		addr.setRequired(&addr.city, city, "city"),
		addr.setRequired(&addr.state, state, "state"),
		addr.setRequired(&addr.country, country, "country"),
		addr.setRequired(&addr.postalCode, postalCode, "postalCode"),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// FullName returns the recipient's full name.
func (a Address) FullName() string { return a.fullName }

// PhoneNumber returns the recipient's phone number.
func (a Address) PhoneNumber() string { return a.phoneNumber }

// AddressLine1 returns the first address line.
func (a Address) AddressLine1() string { return a.addressLine1 }

// AddressLine2 returns the optional second address line.
func (a Address) AddressLine2() string { return a.addressLine2 }

// City returns the destination city.
func (a Address) City() string { return a.city }

// State returns the destination state or region.
func (a Address) State() string { return a.state }

// Country returns the destination country.
func (a Address) Country() string { return a.country }

// PostalCode returns the destination postal code.
func (a Address) PostalCode() string { return a.postalCode }

func (a *Address) setRequired(field *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}
