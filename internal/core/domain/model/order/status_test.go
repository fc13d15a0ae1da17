package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("zero value is Unknown", func(t *testing.T) {
		var s order.Status

		assert.Equal(t, order.Unknown, s)
		require.Error(t, s.Validate())
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := append([]order.Status{order.Unknown}, order.AllStatuses()...)

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every name it prints", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, s := range []string{"", "pending", "Pending", "UNKNOWN", "SHIPPING", " PAID"} {
			t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
				_, err := order.ParseStatus(s)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.AwaitingPayment, "AWAITING_PAYMENT"},
		{order.Paid, "PAID"},
		{order.Confirmed, "CONFIRMED"},
		{order.Shipped, "SHIPPED"},
		{order.Delivered, "DELIVERED"},
		{order.Failed, "FAILED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.Pending:         {order.AwaitingPayment, order.Paid, order.Failed, order.Cancelled},
		order.AwaitingPayment: {order.Paid, order.Failed, order.Cancelled},
		order.Paid:            {order.Confirmed, order.Cancelled},
		order.Confirmed:       {order.Shipped, order.Cancelled},
		order.Shipped:         {order.Delivered},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			name := fmt.Sprintf("%s -> %s", from, to)
			expected := false
			for _, s := range legal[from] {
				if s == to {
					expected = true
				}
			}

			t.Run(name, func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if expected {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}

				var illegal *errs.IllegalTransitionError
				require.ErrorAs(t, err, &illegal)
				assert.Equal(t, from.String(), illegal.From)
				assert.Equal(t, to.String(), illegal.To)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Equal(t, len(s.Successors()) == 0, s.IsTerminal(), s.String())
	}
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionTo_InvalidValues(t *testing.T) {
	_, err := order.Unknown.TransitionTo(order.Paid)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.Pending.TransitionTo(order.Status(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
