package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand sets the quantity of a line already in the cart.
// A quantity below 1 is rejected; removal is RemoveCartItemCommand.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID   string
	itemKey  cart.ItemKey
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemQuantityCommand(cartID string, itemKey string, quantity int) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setItemKey(itemKey),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

func (c UpdateCartItemQuantityCommand) CartID() string {
	return c.cartID
}

func (c UpdateCartItemQuantityCommand) ItemKey() cart.ItemKey {
	return c.itemKey
}

func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemQuantityCommand) setCartID(cartID string) error {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return err
	}
	c.cartID = id
	return nil
}

func (c *UpdateCartItemQuantityCommand) setItemKey(itemKey string) error {
	key, err := cart.ParseItemKey(itemKey)
	if err != nil {
		return err
	}
	c.itemKey = key
	return nil
}

func (c *UpdateCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewInvalidQuantityError(quantity)
	}
	c.quantity = quantity
	return nil
}
