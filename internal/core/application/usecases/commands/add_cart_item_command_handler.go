package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler adds an item at the catalog's current price, clamped to the
// stock on hand.
//
// A clamp is not a failure: the clamped cart is saved and returned with the
// *errs.StockExceededError as CartResult.Violation. When nothing can be added the cart
// is left alone and the same error kind is returned as the error.
type AddCartItemCommandHandler struct {
	carts    ports.CartRepository
	products ports.ProductCatalog
	stock    ports.StockService
}

// NewAddCartItemCommandHandler creates the handler behind "add to cart".
// Requires the cart store, the catalog for the current price, and the stock service
// for the clamp.
func NewAddCartItemCommandHandler(
	carts ports.CartRepository,
	products ports.ProductCatalog,
	stock ports.StockService,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		carts:    carts,
		products: products,
		stock:    stock,
	}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (CartResult, error) {
	if err := cmd.Validate(); err != nil {
		return CartResult{}, err
	}

	product, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return CartResult{}, err
	}
	if err = product.CheckForSale(); err != nil {
		return CartResult{}, err
	}

	key, err := cart.NewItemKey(cmd.ProductID(), cmd.Variant())
	if err != nil {
		return CartResult{}, err
	}

	available, err := h.stock.Available(ctx, key.String())
	if err != nil {
		return CartResult{}, err
	}

	var violation error
	next, err := h.carts.Update(ctx, cmd.CartID(), func(current cart.Cart) (cart.Cart, error) {
		added, addErr := current.AddItem(cmd.ProductID(), cmd.Quantity(), cmd.Variant(), product.Price(), available)
		var stockErr *errs.StockExceededError
		if addErr != nil && (!errors.As(addErr, &stockErr) || stockErr.Max == 0) {
			return cart.Cart{}, addErr
		}
		violation = addErr
		return added, nil
	})
	if err != nil {
		return CartResult{}, err
	}

	return CartResult{CartID: cmd.CartID(), Cart: next, Violation: violation}, nil
}
