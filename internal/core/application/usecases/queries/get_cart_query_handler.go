package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetCartQueryHandler loads a cart and prices it with the current coupon definition.
// A missing cart is priced as an empty one.
type GetCartQueryHandler struct {
	carts   ports.CartRepository
	coupons ports.CouponRegistry
	engine  services.PricingEngine
	now     func() time.Time
}

func NewGetCartQueryHandler(
	carts ports.CartRepository,
	coupons ports.CouponRegistry,
	engine services.PricingEngine,
) GetCartQueryHandler {
	return GetCartQueryHandler{
		carts:   carts,
		coupons: coupons,
		engine:  engine,
		now:     time.Now,
	}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.carts.Get(ctx, query.CartID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	var cp *coupon.Coupon
	if code := c.CouponCode(); code != "" {
		cp, err = h.coupons.Get(ctx, code)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return GetCartQueryResponse{}, err
		}
	}

	return GetCartQueryResponse{
		CartID:          query.CartID(),
		RequestedCoupon: c.CouponCode(),
		Quote:           h.engine.Quote(c, cp, h.now()),
	}, nil
}
