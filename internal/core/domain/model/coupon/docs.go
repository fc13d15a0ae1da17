// Package coupon models discount coupons as the coupon registry defines them.
//
// A Coupon is read-only for the pricing engine: it reports whether it applies to a cart
// (CheckApplicable) and what it would take off a subtotal before clamping (Candidate).
// Clamping to the cap and to the subtotal is done by services.ApplyCoupon.
package coupon
