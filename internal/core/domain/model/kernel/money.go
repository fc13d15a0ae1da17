package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of fractional digits of the store currency.
const MinorUnitPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount in the single store currency, exact to the minor unit.
// Arithmetic is decimal.
//
// The zero value is a valid amount of 0.
//
//	price, err := kernel.MoneyFromString("799.90")
//	line := price.MulInt(2) // 1599.80
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates amount: it must not be negative and must fit the minor unit.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Equal(amount.Truncate(MinorUnitPlaces)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than %d fractional digits", amount.String(), MinorUnitPlaces))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "2500" or "19.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromMinorUnits builds an amount from minor units (cents). Negative input yields 0.
func MoneyFromMinorUnits(units int64) Money {
	if units < 0 {
		return Money{}
	}
	return Money{amount: decimal.New(units, -MinorUnitPlaces)}
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{}
}

// Decimal exposes the amount for persistence and transport mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// MinorUnits returns the amount in minor units (cents).
func (m Money) MinorUnits() int64 {
	return m.amount.Shift(MinorUnitPlaces).IntPart()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// SubFloorZero subtracts other and floors the result at 0.
func (m Money) SubFloorZero(other Money) Money {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}
	}
	return Money{amount: diff}
}

// MulInt multiplies by a non-negative count. Negative counts yield 0.
func (m Money) MulInt(n int) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Percent returns rate percent of m, rounded half away from zero to the minor unit.
// Negative rates yield 0.
func (m Money) Percent(rate decimal.Decimal) Money {
	if rate.IsNegative() {
		return Money{}
	}
	return Money{amount: m.amount.Mul(rate).Div(hundred).Round(MinorUnitPlaces)}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

// Cmp compares two amounts numerically.
//
// Returns:
//   - -1 if m < other
//   - 0 if m == other, regardless of how many trailing zeros either was parsed with
//   - +1 if m > other
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports numeric equality, so "2500" equals "2500.00".
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly MinorUnitPlaces fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MinorUnitPlaces)
}
