package cart

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// DiscountType describes how a coupon's discount value is applied
// to a cart subtotal.
type DiscountType int

const (
	// DiscountUnknown represents an invalid or undefined discount type.
	DiscountUnknown DiscountType = iota

	// DiscountPercentage applies the discount as a percentage of the subtotal.
	DiscountPercentage

	// DiscountFixed subtracts the discount as a flat amount.
	DiscountFixed
)

func getDiscountTypeStrings() map[DiscountType]string {
	return map[DiscountType]string{
		DiscountUnknown:    "unknown",
		DiscountPercentage: "percentage",
		DiscountFixed:      "fixed",
	}
}

// DiscountTypeFromString parses the wire/config representation of a discount type.
// Returns an error for anything other than "percentage" or "fixed".
func DiscountTypeFromString(s string) (DiscountType, error) {
	switch s {
	case "percentage":
		return DiscountPercentage, nil
	case "fixed":
		return DiscountFixed, nil
	default:
		return DiscountUnknown, errs.NewValueIsInvalidErrorWithCause(
			"discountType",
			fmt.Errorf("%q is not a valid discount type", s),
		)
	}
}

// String returns the human-readable name of the discount type.
func (d DiscountType) String() string {
	if str, ok := getDiscountTypeStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the discount type is one of the known values.
func (d DiscountType) Validate() error {
	if d != DiscountPercentage && d != DiscountFixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"discountType",
			fmt.Errorf("%d is not a valid discount type", d),
		)
	}
	return nil
}

// Coupon is a value object describing a discount rule applied to a cart.
// At most one coupon is active per cart; applying a new one replaces it.
type Coupon struct {
	code         string
	discount     float64
	discountType DiscountType
}

// NewCoupon creates a validated Coupon.
// The code must be non-empty, the discount positive, and the type known.
func NewCoupon(code string, discount float64, discountType DiscountType) (Coupon, error) {
	if code == "" {
		return Coupon{}, errs.NewValueIsRequiredError("coupon code")
	}
	if discount <= 0 {
		return Coupon{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%v is not greater than 0", discount),
		)
	}
	if err := discountType.Validate(); err != nil {
		return Coupon{}, err
	}

	return Coupon{
		code:         code,
		discount:     discount,
		discountType: discountType,
	}, nil
}

// Code returns the coupon code as entered by the customer.
func (c Coupon) Code() string {
	return c.code
}

// Discount returns the discount value. Its meaning depends on DiscountType:
// a percentage of the subtotal or a flat amount.
func (c Coupon) Discount() float64 {
	return c.discount
}

// DiscountType returns how the discount value is applied.
func (c Coupon) DiscountType() DiscountType {
	return c.discountType
}

// IsZero reports whether the coupon is the zero value (no coupon).
func (c Coupon) IsZero() bool {
	return c == Coupon{}
}

// Validate checks that the coupon carries a code, a positive discount,
// and a known discount type.
func (c Coupon) Validate() error {
	if c.code == "" {
		return errs.NewValueIsRequiredError("coupon code")
	}
	if c.discount <= 0 {
		return errs.NewValueIsInvalidError("discount")
	}
	return c.discountType.Validate()
}
