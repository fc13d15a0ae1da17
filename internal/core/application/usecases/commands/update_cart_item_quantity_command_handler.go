package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// UpdateCartItemQuantityCommandHandler changes a line quantity against the stock on hand.
// Unlike adding, an update above the stock is rejected outright with
// *errs.StockExceededError carrying the stock as maximum.
type UpdateCartItemQuantityCommandHandler struct {
	carts ports.CartRepository
	stock ports.StockService
}

func NewUpdateCartItemQuantityCommandHandler(
	carts ports.CartRepository,
	stock ports.StockService,
) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		carts: carts,
		stock: stock,
	}
}

func (h *UpdateCartItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCartItemQuantityCommand,
) (CartResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartResult{}, err
	}

	available, err := h.stock.Available(ctx, cmd.ItemKey().String())
	if err != nil {
		return CartResult{}, err
	}

	next, err := h.carts.Update(ctx, cmd.CartID(), func(current cart.Cart) (cart.Cart, error) {
		return current.UpdateQuantity(cmd.ItemKey(), cmd.Quantity(), available)
	})
	if err != nil {
		return CartResult{}, err
	}

	return CartResult{CartID: cmd.CartID(), Cart: next}, nil
}
