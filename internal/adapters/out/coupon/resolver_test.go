package coupon_test

import (
	"testing"

	"storefront/internal/adapters/out/coupon"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_Resolve(t *testing.T) {
	save10, err := cart.NewCoupon("SAVE10", 10, cart.DiscountPercentage)
	require.NoError(t, err)
	save20, err := cart.NewCoupon("SAVE20", 20, cart.DiscountFixed)
	require.NoError(t, err)

	resolver := coupon.NewStaticResolver([]cart.Coupon{save10, save20})

	resolved, err := resolver.Resolve(t.Context(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", resolved.Code())
	assert.Equal(t, cart.DiscountPercentage, resolved.DiscountType())

	resolved, err = resolver.Resolve(t.Context(), "save20")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", resolved.Code())

	_, err = resolver.Resolve(t.Context(), "BOGUS")
	require.ErrorIs(t, err, errs.ErrInvalidCoupon)
}
