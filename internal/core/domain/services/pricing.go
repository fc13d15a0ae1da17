package services

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	DefaultFreeShippingThresholdMinor int64 = 2500_00
	DefaultFlatShippingCostMinor      int64 = 50_00
)

// ShippingRules configure ComputeShipping.
type ShippingRules struct {
	FreeShippingThreshold kernel.Money
	FlatShippingCost      kernel.Money
}

// DefaultShippingRules is free shipping from 2500, 50 below it.
func DefaultShippingRules() ShippingRules {
	return ShippingRules{
		FreeShippingThreshold: kernel.MoneyFromMinorUnits(DefaultFreeShippingThresholdMinor),
		FlatShippingCost:      kernel.MoneyFromMinorUnits(DefaultFlatShippingCostMinor),
	}
}

// ComputeSubtotal sums unit price × quantity over items. Decimal addition is exact, so
// the result does not depend on item order.
func ComputeSubtotal(items []cart.LineItem) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// ComputeShipping is 0 when subtotal reaches the threshold, the flat cost otherwise.
// A subtotal exactly at the threshold ships free.
func ComputeShipping(subtotal, freeShippingThreshold, flatShippingCost kernel.Money) kernel.Money {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return kernel.ZeroMoney()
	}
	return flatShippingCost
}

// ApplyCoupon returns min(candidate, cap, subtotal) where candidate is the coupon's
// undiscounted reduction.
//
// A nil coupon, or one that fails CheckApplicable, yields 0 together with a
// *errs.CouponInvalidError. That error is informational: pricing continues without the
// discount.
func ApplyCoupon(subtotal kernel.Money, c *coupon.Coupon, eligibility coupon.Eligibility) (kernel.Money, error) {
	if c == nil {
		return kernel.ZeroMoney(), errs.NewCouponInvalidError("", errs.CouponUnknown)
	}

	eligibility.Subtotal = subtotal
	if err := c.CheckApplicable(eligibility); err != nil {
		return kernel.ZeroMoney(), err
	}

	discount := c.Candidate(subtotal)
	if limit := c.Terms().Cap; limit != nil {
		discount = discount.Min(*limit)
	}
	return discount.Min(subtotal), nil
}

// ComputeTotal is max(0, subtotal + shipping - discount).
func ComputeTotal(subtotal, shipping, discount kernel.Money) kernel.Money {
	return subtotal.Add(shipping).SubFloorZero(discount)
}

// Quote is the priced summary of a cart.
//
// CouponCode is set only when a coupon actually applied. When the cart names a coupon
// that does not apply, CouponErr holds the *errs.CouponInvalidError and Discount is 0.
type Quote struct {
	Items      []cart.LineItem
	Subtotal   kernel.Money
	Discount   kernel.Money
	Shipping   kernel.Money
	Total      kernel.Money
	CouponCode string
	CouponErr  error
}

// PricingEngine prices carts with fixed shipping rules.
type PricingEngine struct {
	rules ShippingRules
}

// NewPricingEngine creates an engine that prices every cart with the given shipping rules.
//
// Parameters:
//   - rules: free shipping threshold and flat cost; DefaultShippingRules gives 2500 and 50
//
// Returns:
//   - PricingEngine: a value type, safe to share between goroutines
//
// Example:
//
//	engine := NewPricingEngine(DefaultShippingRules())
//	c, _ := coupons.Get(ctx, cart.CouponCode())
//	quote := engine.Quote(cart, c, time.Now())
//	if quote.CouponErr != nil {
//	    // The coupon was dropped; the quote is still valid without it
//	}
func NewPricingEngine(rules ShippingRules) PricingEngine {
	return PricingEngine{rules: rules}
}

// Rules returns the shipping rules the engine was created with.
func (e PricingEngine) Rules() ShippingRules {
	return e.rules
}

// Quote prices c. cp is the registry entry for c.CouponCode(), or nil when the registry
// does not know the code. An empty cart costs nothing, shipping included.
func (e PricingEngine) Quote(c cart.Cart, cp *coupon.Coupon, at time.Time) Quote {
	items := c.Items()
	subtotal := ComputeSubtotal(items)

	shipping := kernel.ZeroMoney()
	if !c.IsEmpty() {
		shipping = ComputeShipping(subtotal, e.rules.FreeShippingThreshold, e.rules.FlatShippingCost)
	}

	q := Quote{
		Items:    items,
		Subtotal: subtotal,
		Discount: kernel.ZeroMoney(),
		Shipping: shipping,
	}

	if code := c.CouponCode(); code != "" {
		if cp == nil || cp.Code() != code {
			q.CouponErr = errs.NewCouponInvalidError(code, errs.CouponUnknown)
		} else {
			discount, err := ApplyCoupon(subtotal, cp, coupon.Eligibility{ProductIDs: c.ProductIDs(), At: at})
			if err != nil {
				q.CouponErr = err
			} else {
				q.Discount = discount
				q.CouponCode = code
			}
		}
	}

	q.Total = ComputeTotal(q.Subtotal, q.Shipping, q.Discount)
	return q
}
