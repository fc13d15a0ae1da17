package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand drops one line from a cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID  string
	itemKey cart.ItemKey

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(cartID string, itemKey string) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setItemKey(itemKey),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CartID() string {
	return c.cartID
}

func (c RemoveCartItemCommand) ItemKey() cart.ItemKey {
	return c.itemKey
}

func (c *RemoveCartItemCommand) setCartID(cartID string) error {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return err
	}
	c.cartID = id
	return nil
}

func (c *RemoveCartItemCommand) setItemKey(itemKey string) error {
	key, err := cart.ParseItemKey(itemKey)
	if err != nil {
		return err
	}
	c.itemKey = key
	return nil
}
