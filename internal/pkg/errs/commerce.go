package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity   = errors.New("quantity is invalid")
	ErrStockExceeded     = errors.New("stock exceeded")
	ErrCouponInvalid     = errors.New("coupon is invalid")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrStaleWrite        = errors.New("stale write")
)

// InvalidQuantityError reports a requested quantity below 1.
type InvalidQuantityError struct {
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d is less than 1", ErrInvalidQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// StockExceededError reports a requested quantity above the available stock.
// Max is the largest quantity that can be granted, so callers can suggest it.
type StockExceededError struct {
	Item      string
	Requested int
	Max       int
}

func NewStockExceededError(item string, requested, maxQuantity int) *StockExceededError {
	return &StockExceededError{Item: item, Requested: requested, Max: max(maxQuantity, 0)}
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("%s: %s requested %d, at most %d available", ErrStockExceeded, e.Item, e.Requested, e.Max)
}

func (e *StockExceededError) Unwrap() error {
	return ErrStockExceeded
}

// CouponReason tells why a coupon did not apply.
type CouponReason string

const (
	CouponUnknown       CouponReason = "unknown"
	CouponInactive      CouponReason = "inactive"
	CouponNotYetValid   CouponReason = "not_yet_valid"
	CouponExpired       CouponReason = "expired"
	CouponBelowMinimum  CouponReason = "below_minimum"
	CouponNotApplicable CouponReason = "not_applicable"
)

// CouponInvalidError reports a coupon that yields no discount.
type CouponInvalidError struct {
	Code   string
	Reason CouponReason
}

func NewCouponInvalidError(code string, reason CouponReason) *CouponInvalidError {
	return &CouponInvalidError{Code: code, Reason: reason}
}

func (e *CouponInvalidError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrCouponInvalid, e.Code, e.Reason)
}

func (e *CouponInvalidError) Unwrap() error {
	return ErrCouponInvalid
}

// IllegalTransitionError reports a status change outside the legal-successor set.
type IllegalTransitionError struct {
	From string
	To   string
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String()}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// StaleWriteError reports an update based on a version that is no longer current.
type StaleWriteError struct {
	Entity   string
	ID       string
	Expected int
	Actual   int
}

func NewStaleWriteError(entity, id string, expected, actual int) *StaleWriteError {
	return &StaleWriteError{Entity: entity, ID: id, Expected: expected, Actual: actual}
}

func (e *StaleWriteError) Error() string {
	return fmt.Sprintf("%s: %s %s expected version %d, current version is %d",
		ErrStaleWrite, e.Entity, e.ID, e.Expected, e.Actual)
}

func (e *StaleWriteError) Unwrap() error {
	return ErrStaleWrite
}
