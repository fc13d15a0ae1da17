package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func ptr[T any](v T) *T {
	return &v
}

// createValidOrder builds the 2600 - 50 coupon order: 1000 x1 and 800 x2.
func createValidOrder(t *testing.T) *order.Order {
	t.Helper()

	l1, err := order.NewLine("coat-1", "L", "navy", money(t, "1000"), 1)
	require.NoError(t, err)
	l2, err := order.NewLine("dress-1", "M", "black", money(t, "800"), 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(money(t, "2600"), money(t, "50"), money(t, "0"), money(t, "2550"), "INDIRIM10")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{l1, l2}, totals, createdAt)
	require.NoError(t, err)
	return o
}

func orderAt(t *testing.T, path ...order.Status) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	for i, s := range path {
		_, err := o.Transition(s, "admin", createdAt.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, err)
	}
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, "2550.00", o.Totals().Total().String())
		assert.Equal(t, "INDIRIM10", o.Totals().CouponCode())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, 0, o.PersistedVersion())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
		assert.Empty(t, o.History())
	})

	t.Run("should fail without lines and id", func(t *testing.T) {
		totals, err := order.NewTotals(money(t, "0"), money(t, "0"), money(t, "50"), money(t, "50"), "")
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.UUID{}, nil, totals, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrLinesAreRequired)
	})

	t.Run("should fail when subtotal does not match lines", func(t *testing.T) {
		line, err := order.NewLine("coat-1", "", "", money(t, "1000"), 1)
		require.NoError(t, err)
		totals, err := order.NewTotals(money(t, "900"), money(t, "0"), money(t, "50"), money(t, "950"), "")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), []order.Line{line}, totals, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not match line totals")
	})
}

func TestNewTotals(t *testing.T) {
	t.Run("should floor total at zero", func(t *testing.T) {
		totals, err := order.NewTotals(money(t, "10"), money(t, "100"), money(t, "50"), money(t, "0"), "BIG")

		require.NoError(t, err)
		assert.True(t, totals.Total().IsZero())
	})

	t.Run("should reject inconsistent total", func(t *testing.T) {
		_, err := order.NewTotals(money(t, "1200"), money(t, "0"), money(t, "50"), money(t, "1200"), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLine(t *testing.T) {
	line, err := order.NewLine(" dress-1 ", "M", "black", money(t, "800"), 2)
	require.NoError(t, err)
	assert.Equal(t, "dress-1:M:black", line.ItemKey())
	assert.Equal(t, "1600.00", line.LineTotal().String())

	_, err = order.NewLine("", "", "", money(t, "1"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrProductIDIsRequired)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestOrder_Transition(t *testing.T) {
	t.Run("pending to shipped is illegal", func(t *testing.T) {
		o := createValidOrder(t)

		change, err := o.Transition(order.Shipped, "admin", createdAt.Add(time.Hour))

		var illegal *errs.IllegalTransitionError
		require.ErrorAs(t, err, &illegal)
		assert.Equal(t, "PENDING", illegal.From)
		assert.Equal(t, "SHIPPED", illegal.To)
		assert.True(t, change.IsEmpty())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("pending to awaiting payment succeeds", func(t *testing.T) {
		o := createValidOrder(t)
		at := createdAt.Add(time.Hour)

		change, err := o.Transition(order.AwaitingPayment, "ops@shop", at)

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingPayment, o.Status())
		assert.Equal(t, order.ChangeStatus, change.Kind)
		assert.Equal(t, order.Pending, change.From)
		assert.Equal(t, order.AwaitingPayment, change.To)
		assert.Equal(t, "ops@shop", change.Actor)
		assert.Equal(t, 2, change.Version)
		assert.Equal(t, 2, o.Version())
		assert.Equal(t, at, o.UpdatedAt())
		assert.Equal(t, []order.StatusChange{
			{From: order.Pending, To: order.AwaitingPayment, At: at, Actor: "ops@shop"},
		}, o.History())
	})

	t.Run("full happy path", func(t *testing.T) {
		o := orderAt(t, order.AwaitingPayment, order.Paid, order.Confirmed, order.Shipped, order.Delivered)

		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.History(), 5)
		assert.Equal(t, 6, o.Version())
	})

	t.Run("every request from a terminal status is rejected", func(t *testing.T) {
		terminal := map[order.Status][]order.Status{
			order.Delivered: {order.AwaitingPayment, order.Paid, order.Confirmed, order.Shipped, order.Delivered},
			order.Failed:    {order.Failed},
			order.Cancelled: {order.Cancelled},
		}

		for status, path := range terminal {
			o := orderAt(t, path...)
			require.Equal(t, status, o.Status())

			for _, target := range order.AllStatuses() {
				_, err := o.Transition(target, "admin", createdAt.Add(time.Hour))

				require.ErrorIs(t, err, errs.ErrIllegalTransition, "%s -> %s", status, target)
			}
		}
	})

	t.Run("requires actor", func(t *testing.T) {
		o := createValidOrder(t)

		_, err := o.Transition(order.Paid, "  ", createdAt)

		require.ErrorIs(t, err, order.ErrActorIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_SetShippingInfo(t *testing.T) {
	t.Run("should set fields and keep status", func(t *testing.T) {
		o := orderAt(t, order.Paid, order.Confirmed)
		at := createdAt.Add(time.Hour)

		change, err := o.SetShippingInfo(order.ShippingUpdate{
			Carrier:        ptr("Yurtici"),
			TrackingNumber: ptr(" 123456 "),
			TrackingURL:    ptr("https://track.example.com/123456"),
		}, at)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, order.Shipment{
			Carrier:        "Yurtici",
			TrackingNumber: "123456",
			TrackingURL:    "https://track.example.com/123456",
		}, o.Shipment())
		assert.Equal(t, order.ChangeShipping, change.Kind)
		assert.Equal(t, []string{"carrier", "trackingNumber", "trackingUrl"}, change.Fields)
		assert.Equal(t, 4, o.Version())
		assert.Equal(t, at, o.UpdatedAt())
	})

	t.Run("nil fields are untouched and unchanged values are a no-op", func(t *testing.T) {
		o := createValidOrder(t)
		_, err := o.SetShippingInfo(order.ShippingUpdate{Carrier: ptr("MNG")}, createdAt)
		require.NoError(t, err)
		version := o.Version()

		change, err := o.SetShippingInfo(order.ShippingUpdate{Carrier: ptr("MNG")}, createdAt.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, change.IsEmpty())
		assert.Equal(t, version, o.Version())
		assert.Equal(t, "MNG", o.Shipment().Carrier)
	})

	t.Run("empty string clears a field", func(t *testing.T) {
		o := createValidOrder(t)
		_, err := o.SetShippingInfo(order.ShippingUpdate{TrackingNumber: ptr("1")}, createdAt)
		require.NoError(t, err)

		_, err = o.SetShippingInfo(order.ShippingUpdate{TrackingNumber: ptr("")}, createdAt)

		require.NoError(t, err)
		assert.Empty(t, o.Shipment().TrackingNumber)
	})

	t.Run("should reject relative or non-http tracking url", func(t *testing.T) {
		for _, raw := range []string{"track/123", "ftp://example.com/1", "https://"} {
			o := createValidOrder(t)

			_, err := o.SetShippingInfo(order.ShippingUpdate{TrackingURL: ptr(raw)}, createdAt)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
			assert.Empty(t, o.Shipment().TrackingURL)
		}
	})

	t.Run("should reject terminal orders", func(t *testing.T) {
		o := orderAt(t, order.Cancelled)

		_, err := o.SetShippingInfo(order.ShippingUpdate{Carrier: ptr("MNG")}, createdAt)

		require.ErrorIs(t, err, order.ErrOrderIsClosed)
		assert.Contains(t, err.Error(), "CANCELLED")
	})
}

func TestOrder_SetAdminNotes(t *testing.T) {
	t.Run("allowed in terminal statuses", func(t *testing.T) {
		o := orderAt(t, order.Failed)

		change := o.SetAdminNotes("card declined twice", createdAt.Add(time.Hour))

		assert.Equal(t, order.ChangeNotes, change.Kind)
		assert.Equal(t, "card declined twice", o.AdminNotes())
	})

	t.Run("setting the same text twice is idempotent", func(t *testing.T) {
		o := createValidOrder(t)
		o.SetAdminNotes("gift wrap", createdAt.Add(time.Minute))
		version, updated := o.Version(), o.UpdatedAt()

		change := o.SetAdminNotes("gift wrap", createdAt.Add(time.Hour))

		assert.True(t, change.IsEmpty())
		assert.Equal(t, version, o.Version())
		assert.Equal(t, updated, o.UpdatedAt())
		assert.Equal(t, "gift wrap", o.AdminNotes())
	})
}

func TestRestoreOrder(t *testing.T) {
	src := orderAt(t, order.Paid)
	src.SetAdminNotes("vip", createdAt.Add(time.Hour))

	t.Run("should restore a consistent order", func(t *testing.T) {
		o, err := order.RestoreOrder(src.ID(), src.Lines(), src.Totals(), src.Status(), src.Shipment(),
			src.AdminNotes(), src.CreatedAt(), src.UpdatedAt(), src.History(), src.Version())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.IsEqual(src))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.Equal(t, 3, o.PersistedVersion())
	})

	t.Run("should reject status that does not match history", func(t *testing.T) {
		_, err := order.RestoreOrder(src.ID(), src.Lines(), src.Totals(), order.Shipped, src.Shipment(),
			src.AdminNotes(), src.CreatedAt(), src.UpdatedAt(), src.History(), src.Version())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject illegal history and bad version", func(t *testing.T) {
		history := []order.StatusChange{{From: order.Pending, To: order.Shipped, At: createdAt, Actor: "x"}}

		_, err := order.RestoreOrder(src.ID(), src.Lines(), src.Totals(), order.Shipped, src.Shipment(),
			"", src.CreatedAt(), src.UpdatedAt(), history, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not follow")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_MarkPersisted(t *testing.T) {
	o := orderAt(t, order.AwaitingPayment)
	require.Equal(t, 0, o.PersistedVersion())

	o.MarkPersisted()

	assert.Equal(t, 2, o.PersistedVersion())
	assert.Equal(t, o.Version(), o.PersistedVersion())
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
