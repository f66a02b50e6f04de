package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusUnknown, "unknown"},
		{order.StatusPending, "pending"},
		{order.StatusConfirmed, "confirmed"},
		{order.StatusProcessing, "processing"},
		{order.StatusShipped, "shipped"},
		{order.StatusDelivered, "delivered"},
		{order.StatusCancelled, "cancelled"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusShipped,
		order.StatusDelivered,
		order.StatusCancelled,
	} {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, order.StatusUnknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all valid statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("shippedd")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_HappyPathTransitions(t *testing.T) {
	s := order.StatusPending

	s, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, s)

	s, err = s.StartProcessing()
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, s)

	s, err = s.Ship()
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, s)

	s, err = s.Deliver()
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, s)
	assert.True(t, s.IsTerminal())
}

func TestStatus_IllegalForwardTransitions(t *testing.T) {
	testCases := []struct {
		name       string
		transition func(order.Status) (order.Status, error)
		from       []order.Status
	}{
		{
			name:       "confirm",
			transition: order.Status.Confirm,
			from: []order.Status{
				order.StatusConfirmed, order.StatusProcessing, order.StatusShipped,
				order.StatusDelivered, order.StatusCancelled, order.StatusUnknown,
			},
		},
		{
			name:       "start processing",
			transition: order.Status.StartProcessing,
			from: []order.Status{
				order.StatusPending, order.StatusProcessing, order.StatusShipped,
				order.StatusDelivered, order.StatusCancelled, order.StatusUnknown,
			},
		},
		{
			name:       "ship",
			transition: order.Status.Ship,
			from: []order.Status{
				order.StatusPending, order.StatusConfirmed, order.StatusShipped,
				order.StatusDelivered, order.StatusCancelled, order.StatusUnknown,
			},
		},
		{
			name:       "deliver",
			transition: order.Status.Deliver,
			from: []order.Status{
				order.StatusPending, order.StatusConfirmed, order.StatusProcessing,
				order.StatusDelivered, order.StatusCancelled, order.StatusUnknown,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, from := range tc.from {
				_, err := tc.transition(from)
				require.Error(t, err, "from %s", from)
			}
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("allowed from every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{
			order.StatusPending, order.StatusConfirmed, order.StatusProcessing, order.StatusShipped,
		} {
			s, err := from.Cancel()
			require.NoError(t, err, "from %s", from)
			assert.Equal(t, order.StatusCancelled, s)
		}
	})

	t.Run("rejected from terminal statuses", func(t *testing.T) {
		_, err := order.StatusDelivered.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.StatusCancelled.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejected from unknown status", func(t *testing.T) {
		_, err := order.StatusUnknown.Cancel()
		require.Error(t, err)
	})
}
