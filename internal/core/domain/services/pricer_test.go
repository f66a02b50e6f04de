package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandardPricer() services.Pricer {
	return services.NewPricer(0.10, 10, 50)
}

func TestPricer_Totals(t *testing.T) {
	t.Run("three twenty dollar items ship free", func(t *testing.T) {
		totals := newStandardPricer().Totals(60, cart.Coupon{})

		assert.InDelta(t, 60.0, totals.Subtotal(), 0.0001)
		assert.InDelta(t, 6.0, totals.Tax(), 0.0001)
		assert.InDelta(t, 0.0, totals.Shipping(), 0.0001)
		assert.InDelta(t, 0.0, totals.Discount(), 0.0001)
		assert.InDelta(t, 66.0, totals.Total(), 0.0001)
	})

	t.Run("small order pays flat shipping", func(t *testing.T) {
		totals := newStandardPricer().Totals(30, cart.Coupon{})

		assert.InDelta(t, 3.0, totals.Tax(), 0.0001)
		assert.InDelta(t, 10.0, totals.Shipping(), 0.0001)
		assert.InDelta(t, 43.0, totals.Total(), 0.0001)
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		totals := newStandardPricer().Totals(50, cart.Coupon{})
		assert.InDelta(t, 10.0, totals.Shipping(), 0.0001)

		totals = newStandardPricer().Totals(50.01, cart.Coupon{})
		assert.InDelta(t, 0.0, totals.Shipping(), 0.0001)
	})

	t.Run("percentage coupon discounts subtotal share", func(t *testing.T) {
		coupon, err := cart.NewCoupon("SAVE10", 10, cart.DiscountPercentage)
		require.NoError(t, err)

		totals := newStandardPricer().Totals(100, coupon)

		assert.InDelta(t, 10.0, totals.Discount(), 0.0001)
		assert.InDelta(t, 100.0, totals.Total(), 0.0001)
	})

	t.Run("fixed coupon discounts flat amount", func(t *testing.T) {
		coupon, err := cart.NewCoupon("SAVE20", 20, cart.DiscountFixed)
		require.NoError(t, err)

		totals := newStandardPricer().Totals(100, coupon)

		assert.InDelta(t, 20.0, totals.Discount(), 0.0001)
		assert.InDelta(t, 90.0, totals.Total(), 0.0001)
	})

	t.Run("total never goes below zero", func(t *testing.T) {
		coupon, err := cart.NewCoupon("MEGA", 500, cart.DiscountFixed)
		require.NoError(t, err)

		totals := newStandardPricer().Totals(10, coupon)

		assert.InDelta(t, 0.0, totals.Total(), 0.0001)
	})

	t.Run("zero subtotal still carries shipping", func(t *testing.T) {
		totals := newStandardPricer().Totals(0, cart.Coupon{})

		assert.InDelta(t, 0.0, totals.Subtotal(), 0.0001)
		assert.InDelta(t, 10.0, totals.Shipping(), 0.0001)
		assert.InDelta(t, 10.0, totals.Total(), 0.0001)
	})
}
