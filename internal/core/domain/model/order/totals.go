package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Totals are the pricing figures frozen at checkout.
type Totals struct {
	subtotal   kernel.Money
	discount   kernel.Money
	shipping   kernel.Money
	total      kernel.Money
	couponCode string
}

// NewTotals checks that total = max(0, subtotal + shipping - discount).
func NewTotals(subtotal, discount, shipping, total kernel.Money, couponCode string) (Totals, error) {
	expected := subtotal.Add(shipping).SubFloorZero(discount)
	if !expected.Equal(total) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%s does not match subtotal %s + shipping %s - discount %s",
				total, subtotal, shipping, discount))
	}

	return Totals{
		subtotal:   subtotal,
		discount:   discount,
		shipping:   shipping,
		total:      total,
		couponCode: couponCode,
	}, nil
}

func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

func (t Totals) Discount() kernel.Money {
	return t.discount
}

func (t Totals) Shipping() kernel.Money {
	return t.shipping
}

func (t Totals) Total() kernel.Money {
	return t.total
}

// CouponCode is the code that produced Discount, empty when no coupon applied.
func (t Totals) CouponCode() string {
	return t.couponCode
}
