package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// RemoveCartItemCommandHandler removes a line. A missing line is not an error.
type RemoveCartItemCommandHandler struct {
	carts ports.CartRepository
}

func NewRemoveCartItemCommandHandler(carts ports.CartRepository) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{carts: carts}
}

func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (CartResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartResult{}, err
	}

	next, err := h.carts.Update(ctx, cmd.CartID(), func(current cart.Cart) (cart.Cart, error) {
		return current.RemoveItem(cmd.ItemKey()), nil
	})
	if err != nil {
		return CartResult{}, err
	}

	return CartResult{CartID: cmd.CartID(), Cart: next}, nil
}
