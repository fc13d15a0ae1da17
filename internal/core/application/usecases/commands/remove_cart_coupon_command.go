package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrRemoveCartCouponCommandIsNotConstructed = errors.New(
	"RemoveCartCouponCommand must be created via NewRemoveCartCouponCommand constructor",
)

// RemoveCartCouponCommand clears the coupon code of a cart.
type RemoveCartCouponCommand struct { //nolint:recvcheck //using for validation
	cartID string

	guard guard.ConstructorGuard
}

func NewRemoveCartCouponCommand(cartID string) (RemoveCartCouponCommand, error) {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return RemoveCartCouponCommand{}, err
	}

	return RemoveCartCouponCommand{cartID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartCouponCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartCouponCommandIsNotConstructed)
}

func (c RemoveCartCouponCommand) CartID() string {
	return c.cartID
}
