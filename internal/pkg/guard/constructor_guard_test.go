package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// nil error should use the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by command structs to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Coupon struct {
		code     string
		discount float64
		guard    guard.ConstructorGuard
	}

	var errCouponNotConstructed = errors.New("Coupon must be created via NewCoupon")

	newCoupon := func(code string, discount float64) (Coupon, error) {
		if code == "" {
			return Coupon{}, errors.New("code is required")
		}
		if discount < 0 {
			return Coupon{}, errors.New("discount cannot be negative")
		}
		return Coupon{
			code:     code,
			discount: discount,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateCoupon := func(c Coupon) error {
		return c.guard.Validate(errCouponNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		coupon, err := newCoupon("SAVE10", 10)

		require.NoError(t, err)
		require.NoError(t, validateCoupon(coupon))
		assert.Equal(t, "SAVE10", coupon.code)
		assert.InDelta(t, 10.0, coupon.discount, 0.0001)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var coupon Coupon // zero value

		err := validateCoupon(coupon)

		require.Error(t, err)
		assert.Equal(t, errCouponNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCoupon("", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code is required")

		_, err = newCoupon("SAVE10", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discount cannot be negative")
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that guards can be copied by value.
func TestConstructorGuardImmutability(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	guardCopy := g // pass by value

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}
