package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ApplyCartCouponCommandHandler stores a coupon code on the cart.
//
// Codes the registry does not know are rejected with *errs.CouponInvalidError (reason
// "unknown") and the cart is left alone. Known codes are always stored; when they do not
// apply to the cart yet (minimum not reached, out of scope, not yet valid) the reason is
// returned as CartResult.Violation and pricing grants no discount until it does.
type ApplyCartCouponCommandHandler struct {
	carts   ports.CartRepository
	coupons ports.CouponRegistry
	now     func() time.Time
}

func NewApplyCartCouponCommandHandler(
	carts ports.CartRepository,
	coupons ports.CouponRegistry,
) ApplyCartCouponCommandHandler {
	return ApplyCartCouponCommandHandler{
		carts:   carts,
		coupons: coupons,
		now:     time.Now,
	}
}

func (h *ApplyCartCouponCommandHandler) Handle(ctx context.Context, cmd ApplyCartCouponCommand) (CartResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartResult{}, err
	}

	c, err := h.coupons.Get(ctx, cmd.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CartResult{}, errs.NewCouponInvalidError(cmd.Code(), errs.CouponUnknown)
	}
	if err != nil {
		return CartResult{}, err
	}

	next, err := h.carts.Update(ctx, cmd.CartID(), func(current cart.Cart) (cart.Cart, error) {
		return current.ApplyCouponCode(cmd.Code())
	})
	if err != nil {
		return CartResult{}, err
	}

	violation := c.CheckApplicable(coupon.Eligibility{
		Subtotal:   services.ComputeSubtotal(next.Items()),
		ProductIDs: next.ProductIDs(),
		At:         h.now(),
	})

	return CartResult{CartID: cmd.CartID(), Cart: next, Violation: violation}, nil
}
