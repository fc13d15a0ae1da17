package services_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newCoupon(t *testing.T, code string, kind coupon.Kind, value string, terms coupon.Terms) *coupon.Coupon {
	t.Helper()
	c, err := coupon.NewCoupon(code, kind, decimal.RequireFromString(value), true, terms)
	require.NoError(t, err)
	return c
}

func lineItem(t *testing.T, productID, price string, quantity int) cart.LineItem {
	t.Helper()
	k, err := cart.NewItemKey(productID, cart.Variant{})
	require.NoError(t, err)
	item, err := cart.NewLineItem(k, money(t, price), quantity, quantity)
	require.NoError(t, err)
	return item
}

func TestComputeSubtotal(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		assert.True(t, services.ComputeSubtotal(nil).IsZero())
	})

	t.Run("exact where floats drift", func(t *testing.T) {
		items := []cart.LineItem{
			lineItem(t, "a", "0.10", 1),
			lineItem(t, "b", "0.20", 1),
			lineItem(t, "c", "19.99", 3),
		}

		assert.Equal(t, "60.27", services.ComputeSubtotal(items).String())
	})

	t.Run("independent of item order", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))

		for range 50 {
			items := make([]cart.LineItem, 0, 6)
			expected := decimal.Zero
			for i := range 6 {
				minor := rng.Int64N(500_000)
				qty := rng.IntN(9) + 1
				price := kernel.MoneyFromMinorUnits(minor)
				k, err := cart.NewItemKey(string(rune('a'+i)), cart.Variant{})
				require.NoError(t, err)
				item, err := cart.NewLineItem(k, price, qty, qty)
				require.NoError(t, err)
				items = append(items, item)
				expected = expected.Add(price.Decimal().Mul(decimal.NewFromInt(int64(qty))))
			}

			got := services.ComputeSubtotal(items)
			rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

			assert.True(t, got.Decimal().Equal(expected), "%s != %s", got, expected)
			assert.True(t, got.Equal(services.ComputeSubtotal(items)))
		}
	})
}

func TestComputeShipping(t *testing.T) {
	threshold, flat := money(t, "2500"), money(t, "50")

	testCases := []struct {
		subtotal string
		expected string
	}{
		{"0", "50.00"},
		{"1200", "50.00"},
		{"2499.99", "50.00"},
		{"2500", "0.00"},
		{"2500.01", "0.00"},
		{"10000", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.subtotal, func(t *testing.T) {
			got := services.ComputeShipping(money(t, tc.subtotal), threshold, flat)

			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestApplyCoupon(t *testing.T) {
	eligibility := coupon.Eligibility{At: now}

	t.Run("percentage is capped", func(t *testing.T) {
		c := newCoupon(t, "INDIRIM10", coupon.Percentage, "10", coupon.Terms{Cap: ptr(money(t, "50"))})

		discount, err := services.ApplyCoupon(money(t, "2600"), c, eligibility)

		require.NoError(t, err)
		assert.Equal(t, "50.00", discount.String())
	})

	t.Run("fixed is clamped to subtotal", func(t *testing.T) {
		c := newCoupon(t, "FLAT500", coupon.Fixed, "500", coupon.Terms{})

		discount, err := services.ApplyCoupon(money(t, "120"), c, eligibility)

		require.NoError(t, err)
		assert.Equal(t, "120.00", discount.String())
	})

	t.Run("nil coupon yields zero and coupon invalid", func(t *testing.T) {
		discount, err := services.ApplyCoupon(money(t, "100"), nil, eligibility)

		var couponErr *errs.CouponInvalidError
		require.ErrorAs(t, err, &couponErr)
		assert.Equal(t, errs.CouponUnknown, couponErr.Reason)
		assert.True(t, discount.IsZero())
	})

	t.Run("expired coupon yields zero and coupon invalid", func(t *testing.T) {
		c := newCoupon(t, "OLD", coupon.Fixed, "10", coupon.Terms{ValidUntil: ptr(now.Add(-time.Hour))})

		discount, err := services.ApplyCoupon(money(t, "100"), c, eligibility)

		require.ErrorIs(t, err, errs.ErrCouponInvalid)
		assert.True(t, discount.IsZero())
	})

	t.Run("minimum uses the given subtotal", func(t *testing.T) {
		c := newCoupon(t, "MIN", coupon.Fixed, "10", coupon.Terms{MinSubtotal: money(t, "100")})

		_, err := services.ApplyCoupon(money(t, "99.99"), c, coupon.Eligibility{Subtotal: money(t, "1000"), At: now})

		require.ErrorIs(t, err, errs.ErrCouponInvalid)
	})

	t.Run("never exceeds min of subtotal and cap for any rate", func(t *testing.T) {
		limit := money(t, "300")
		for _, rate := range []string{"0.5", "10", "99.99", "100", "150", "1000"} {
			c := newCoupon(t, "R", coupon.Percentage, rate, coupon.Terms{Cap: &limit})
			for _, subtotal := range []string{"0", "1", "250", "299.99", "300", "5000"} {
				s := money(t, subtotal)

				discount, err := services.ApplyCoupon(s, c, eligibility)

				require.NoError(t, err)
				assert.False(t, s.Min(limit).LessThan(discount), "rate %s subtotal %s gave %s", rate, subtotal, discount)
			}
		}
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("floors at zero for any discount", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 5))

		for range 200 {
			subtotal := kernel.MoneyFromMinorUnits(rng.Int64N(1_000_000))
			shipping := kernel.MoneyFromMinorUnits(rng.Int64N(10_000))
			discount := kernel.MoneyFromMinorUnits(rng.Int64N(3_000_000))

			total := services.ComputeTotal(subtotal, shipping, discount)

			assert.False(t, total.Decimal().IsNegative())
		}
	})

	t.Run("subtracts discount", func(t *testing.T) {
		assert.Equal(t, "1250.00", services.ComputeTotal(money(t, "1200"), money(t, "50"), money(t, "0")).String())
		assert.Equal(t, "0.00", services.ComputeTotal(money(t, "10"), money(t, "50"), money(t, "100")).String())
	})
}

func TestPricingEngine_Quote(t *testing.T) {
	engine := services.NewPricingEngine(services.DefaultShippingRules())

	buildCart := func(t *testing.T, code string) cart.Cart {
		t.Helper()
		c, err := cart.NewCart().AddItem("coat-1", 1, cart.Variant{}, money(t, "1000"), 10)
		require.NoError(t, err)
		c, err = c.AddItem("dress-1", 2, cart.Variant{Size: "M"}, money(t, "800"), 10)
		require.NoError(t, err)
		if code != "" {
			c, err = c.ApplyCouponCode(code)
			require.NoError(t, err)
		}
		return c
	}

	t.Run("two items with INDIRIM10 totals 2550", func(t *testing.T) {
		c := buildCart(t, "indirim10")
		cp := newCoupon(t, "INDIRIM10", coupon.Percentage, "10", coupon.Terms{Cap: ptr(money(t, "50"))})

		q := engine.Quote(c, cp, now)

		require.NoError(t, q.CouponErr)
		assert.Equal(t, "2600.00", q.Subtotal.String())
		assert.Equal(t, "50.00", q.Discount.String())
		assert.Equal(t, "0.00", q.Shipping.String())
		assert.Equal(t, "2550.00", q.Total.String())
		assert.Equal(t, "INDIRIM10", q.CouponCode)
		assert.Len(t, q.Items, 2)
	})

	t.Run("subtotal 1200 without coupon totals 1250", func(t *testing.T) {
		c, err := cart.NewCart().AddItem("skirt-1", 2, cart.Variant{}, money(t, "600"), 5)
		require.NoError(t, err)

		q := engine.Quote(c, nil, now)

		require.NoError(t, q.CouponErr)
		assert.Equal(t, "1200.00", q.Subtotal.String())
		assert.Equal(t, "50.00", q.Shipping.String())
		assert.Equal(t, "1250.00", q.Total.String())
		assert.Empty(t, q.CouponCode)
	})

	t.Run("unknown coupon prices without discount", func(t *testing.T) {
		q := engine.Quote(buildCart(t, "NOPE"), nil, now)

		var couponErr *errs.CouponInvalidError
		require.ErrorAs(t, q.CouponErr, &couponErr)
		assert.Equal(t, "NOPE", couponErr.Code)
		assert.Equal(t, errs.CouponUnknown, couponErr.Reason)
		assert.Equal(t, "2600.00", q.Total.String())
	})

	t.Run("coupon out of product scope", func(t *testing.T) {
		cp := newCoupon(t, "SHOES", coupon.Fixed, "100", coupon.Terms{ProductIDs: []string{"shoe-1"}})

		q := engine.Quote(buildCart(t, "SHOES"), cp, now)

		require.ErrorIs(t, q.CouponErr, errs.ErrCouponInvalid)
		assert.True(t, q.Discount.IsZero())
	})

	t.Run("empty cart costs nothing", func(t *testing.T) {
		q := engine.Quote(cart.NewCart(), nil, now)

		assert.True(t, q.Total.IsZero())
		assert.True(t, q.Shipping.IsZero())
	})

	t.Run("uses configured rules", func(t *testing.T) {
		custom := services.NewPricingEngine(services.ShippingRules{
			FreeShippingThreshold: money(t, "5000"),
			FlatShippingCost:      money(t, "79.90"),
		})

		q := custom.Quote(buildCart(t, ""), nil, now)

		assert.Equal(t, "79.90", q.Shipping.String())
		assert.Equal(t, "2679.90", q.Total.String())
	})
}

func ptr[T any](v T) *T {
	return &v
}
