package commands

import (
	"errors"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/pkg/guard"
)

var ErrApplyCartCouponCommandIsNotConstructed = errors.New(
	"ApplyCartCouponCommand must be created via NewApplyCartCouponCommand constructor",
)

// ApplyCartCouponCommand remembers a coupon code on a cart.
type ApplyCartCouponCommand struct { //nolint:recvcheck //using for validation
	cartID string
	code   string

	guard guard.ConstructorGuard
}

func NewApplyCartCouponCommand(cartID string, code string) (ApplyCartCouponCommand, error) {
	cmd := ApplyCartCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCode(code),
	); err != nil {
		return ApplyCartCouponCommand{}, err
	}

	return cmd, nil
}

func (c ApplyCartCouponCommand) Validate() error {
	return c.guard.Validate(ErrApplyCartCouponCommandIsNotConstructed)
}

func (c ApplyCartCouponCommand) CartID() string {
	return c.cartID
}

// Code is the normalized (upper-case) coupon code.
func (c ApplyCartCouponCommand) Code() string {
	return c.code
}

func (c *ApplyCartCouponCommand) setCartID(cartID string) error {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return err
	}
	c.cartID = id
	return nil
}

func (c *ApplyCartCouponCommand) setCode(code string) error {
	normalized := coupon.NormalizeCode(code)
	if normalized == "" {
		return coupon.ErrCodeIsRequired
	}
	c.code = normalized
	return nil
}
