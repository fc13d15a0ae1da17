package coupon

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCodeIsRequired         = errs.NewValueIsRequiredError("code")
	ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")
)

// Terms are the optional restrictions of a coupon. The zero value means: no cap, no
// minimum subtotal, always valid, any product.
type Terms struct {
	Cap         *kernel.Money
	MinSubtotal kernel.Money
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	ProductIDs  []string
}

// Eligibility describes the cart a coupon is evaluated against.
type Eligibility struct {
	Subtotal   kernel.Money
	ProductIDs []string
	At         time.Time
}

// Coupon is a named discount rule. Codes are case-insensitive and stored upper-case.
type Coupon struct {
	code   string
	kind   Kind
	value  decimal.Decimal
	active bool
	terms  Terms

	isConstructed bool
}

// NormalizeCode trims and upper-cases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewCoupon validates a coupon definition.
//
// For Percentage coupons value is the rate in percent and must be positive; rates above
// 100 are allowed; the discount is clamped to the subtotal. For Fixed
// coupons value is an amount and must be a positive Money amount.
func NewCoupon(code string, kind Kind, value decimal.Decimal, active bool, terms Terms) (*Coupon, error) {
	c := &Coupon{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setCode(code),
		c.setKindAndValue(kind, value),
		c.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Coupon) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCouponIsNotConstructed
	}
	return nil
}

func (c *Coupon) Code() string {
	return c.code
}

func (c *Coupon) Kind() Kind {
	return c.kind
}

// Value is the percent rate or the fixed amount, depending on Kind.
func (c *Coupon) Value() decimal.Decimal {
	return c.value
}

func (c *Coupon) Active() bool {
	return c.active
}

// Terms returns a copy of the coupon's restrictions.
func (c *Coupon) Terms() Terms {
	t := c.terms
	t.ProductIDs = slices.Clone(c.terms.ProductIDs)
	return t
}

// CheckApplicable returns nil when the coupon grants a discount for e, otherwise a
// *errs.CouponInvalidError naming the first failed condition.
func (c *Coupon) CheckApplicable(e Eligibility) error {
	switch {
	case !c.active:
		return errs.NewCouponInvalidError(c.code, errs.CouponInactive)
	case c.terms.ValidFrom != nil && e.At.Before(*c.terms.ValidFrom):
		return errs.NewCouponInvalidError(c.code, errs.CouponNotYetValid)
	case c.terms.ValidUntil != nil && e.At.After(*c.terms.ValidUntil):
		return errs.NewCouponInvalidError(c.code, errs.CouponExpired)
	case e.Subtotal.LessThan(c.terms.MinSubtotal):
		return errs.NewCouponInvalidError(c.code, errs.CouponBelowMinimum)
	case !c.inScope(e.ProductIDs):
		return errs.NewCouponInvalidError(c.code, errs.CouponNotApplicable)
	}
	return nil
}

// Candidate is the discount before clamping: subtotal × rate/100 for Percentage coupons,
// the fixed amount for Fixed ones.
func (c *Coupon) Candidate(subtotal kernel.Money) kernel.Money {
	if c.kind == Percentage {
		return subtotal.Percent(c.value)
	}
	amount, err := kernel.NewMoney(c.value)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return amount
}

func (c *Coupon) inScope(productIDs []string) bool {
	if len(c.terms.ProductIDs) == 0 {
		return true
	}
	return slices.ContainsFunc(productIDs, func(id string) bool {
		return slices.Contains(c.terms.ProductIDs, id)
	})
}

func (c *Coupon) setCode(code string) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return ErrCodeIsRequired
	}
	c.code = normalized
	return nil
}

func (c *Coupon) setKindAndValue(kind Kind, value decimal.Decimal) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not positive", value.String()))
	}
	if kind == Fixed {
		if _, err := kernel.NewMoney(value); err != nil {
			return err
		}
	}

	c.kind = kind
	c.value = value
	return nil
}

func (c *Coupon) setTerms(terms Terms) error {
	if terms.ValidFrom != nil && terms.ValidUntil != nil && terms.ValidUntil.Before(*terms.ValidFrom) {
		return errs.NewValueIsInvalidErrorWithCause(
			"validUntil", fmt.Errorf("%s is before validFrom %s",
				terms.ValidUntil.Format(time.RFC3339), terms.ValidFrom.Format(time.RFC3339)))
	}

	ids := make([]string, 0, len(terms.ProductIDs))
	for _, id := range terms.ProductIDs {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	terms.ProductIDs = ids

	c.terms = terms
	return nil
}
