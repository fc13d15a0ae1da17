package commands

import (
	"errors"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpsertCouponCommandIsNotConstructed = errors.New(
	"UpsertCouponCommand must be created via NewUpsertCouponCommand constructor",
)

// UpsertCouponCommand creates or replaces a coupon definition.
type UpsertCouponCommand struct { //nolint:recvcheck //using for validation
	coupon *coupon.Coupon

	guard guard.ConstructorGuard
}

func NewUpsertCouponCommand(
	code string,
	kind coupon.Kind,
	value decimal.Decimal,
	active bool,
	terms coupon.Terms,
) (UpsertCouponCommand, error) {
	c, err := coupon.NewCoupon(code, kind, value, active, terms)
	if err != nil {
		return UpsertCouponCommand{}, err
	}

	return UpsertCouponCommand{coupon: c, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertCouponCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCouponCommandIsNotConstructed)
}

func (c UpsertCouponCommand) Coupon() *coupon.Coupon {
	return c.coupon
}
