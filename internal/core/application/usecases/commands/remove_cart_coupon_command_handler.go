package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

type RemoveCartCouponCommandHandler struct {
	carts ports.CartRepository
}

func NewRemoveCartCouponCommandHandler(carts ports.CartRepository) RemoveCartCouponCommandHandler {
	return RemoveCartCouponCommandHandler{carts: carts}
}

func (h *RemoveCartCouponCommandHandler) Handle(ctx context.Context, cmd RemoveCartCouponCommand) (CartResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartResult{}, err
	}

	next, err := h.carts.Update(ctx, cmd.CartID(), func(current cart.Cart) (cart.Cart, error) {
		return current.ClearCoupon(), nil
	})
	if err != nil {
		return CartResult{}, err
	}

	return CartResult{CartID: cmd.CartID(), Cart: next}, nil
}
