package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress(
		"Ada Lovelace", "+1-555-0100", "12 Analytical Way", "",
		"London", "Greater London", "UK", "NW1 2DB",
	)
	require.NoError(t, err)
	return addr
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Mechanical Keyboard", "keyboard.jpg", 20, 3)
	require.NoError(t, err)
	return []order.Item{item}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	payment, err := order.NewPaymentInfo(order.PaymentMethodCard)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(),
		kernel.NewUUID(),
		newTestItems(t),
		newTestAddress(t),
		payment,
		order.NewTotals(60, 6, 0, 0, 66),
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with snapshot", func(t *testing.T) {
		o := newTestOrder(t)

		assert.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.DeliveredAt())
		assert.True(t, o.Tracking().IsZero())
		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 60.0, o.Items()[0].LineTotal(), 0.0001)
		assert.InDelta(t, 66.0, o.Totals().Total(), 0.0001)
	})

	t.Run("rejects empty item snapshot", func(t *testing.T) {
		payment, err := order.NewPaymentInfo(order.PaymentMethodCard)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(),
			nil, newTestAddress(t), payment, order.NewTotals(0, 0, 0, 0, 0), "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		payment, err := order.NewPaymentInfo(order.PaymentMethodCard)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(),
			newTestItems(t), newTestAddress(t), payment, order.NewTotals(60, 6, 0, 0, 66), "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ForwardTransitions(t *testing.T) {
	t.Run("full happy path stamps deliveredAt last", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.StatusConfirmed, o.Status())

		require.NoError(t, o.StartProcessing())
		assert.Equal(t, order.StatusProcessing, o.Status())

		tracking := order.NewTracking("UPS", "1Z999", "https://track.example/1Z999")
		require.NoError(t, o.Ship(tracking))
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Equal(t, "UPS", o.Tracking().Carrier())
		assert.Nil(t, o.DeliveredAt())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("cannot advance past delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.Ship(order.Tracking{}))
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Confirm(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("cannot skip states", func(t *testing.T) {
		o := newTestOrder(t)

		require.ErrorIs(t, o.Ship(order.Tracking{}), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("allowed from every non-terminal status", func(t *testing.T) {
		advance := []func(o *order.Order) error{
			nil, // pending
			func(o *order.Order) error { return o.Confirm() },
			func(o *order.Order) error { return o.StartProcessing() },
			func(o *order.Order) error { return o.Ship(order.Tracking{}) },
		}

		for steps := range advance {
			o := newTestOrder(t)
			for i := 1; i <= steps; i++ {
				require.NoError(t, advance[i](o))
			}

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.StatusCancelled, o.Status())
		}
	})

	t.Run("rejected on delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.Ship(order.Tracking{}))
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("retried cancel is rejected cleanly", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestOrder_Ownership(t *testing.T) {
	customerID := kernel.NewUUID()
	payment, err := order.NewPaymentInfo(order.PaymentMethodCOD)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(), customerID,
		newTestItems(t), newTestAddress(t), payment, order.NewTotals(60, 6, 0, 0, 66), "SAVE10",
	)
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(customerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	assert.Equal(t, "SAVE10", o.CouponCode())
}

func TestNewItem(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Desk Lamp", "lamp.jpg", 12.5, 4)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, item.LineTotal(), 0.0001)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, "Desk Lamp", "", 12.5, 1)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), "", "", 12.5, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewItem(kernel.NewUUID(), "Desk Lamp", "", -1, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem(kernel.NewUUID(), "Desk Lamp", "", 12.5, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("requires all mandatory fields", func(t *testing.T) {
		_, err := order.NewAddress("", "", "", "", "", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("second address line is optional", func(t *testing.T) {
		addr, err := order.NewAddress(
			"Ada Lovelace", "+1-555-0100", "12 Analytical Way", "",
			"London", "Greater London", "UK", "NW1 2DB",
		)
		require.NoError(t, err)
		assert.Empty(t, addr.AddressLine2())
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	for _, s := range []string{"card", "paypal", "stripe", "cod"} {
		method, err := order.PaymentMethodFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, method.String())
	}

	_, err := order.PaymentMethodFromString("barter")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewNumber(t *testing.T) {
	first := order.NewNumber()
	second := order.NewNumber()

	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, first)
	assert.NotEqual(t, first, second)
}
