package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand adds units of one product variant to a cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand("session-42", "dress-1", cart.Variant{Size: "M"}, 2)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID    string
	productID string
	variant   cart.Variant
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(cartID, productID string, variant cart.Variant, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setItem(productID, variant),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CartID() string {
	return c.cartID
}

func (c AddCartItemCommand) ProductID() string {
	return c.productID
}

func (c AddCartItemCommand) Variant() cart.Variant {
	return c.variant
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCartID(cartID string) error {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return err
	}
	c.cartID = id
	return nil
}

func (c *AddCartItemCommand) setItem(productID string, variant cart.Variant) error {
	key, err := cart.NewItemKey(productID, variant)
	if err != nil {
		return err
	}
	c.productID = key.ProductID()
	c.variant = key.Variant()
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewInvalidQuantityError(quantity)
	}
	c.quantity = quantity
	return nil
}
