package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestInvalidQuantityError(t *testing.T) {
	err := errs.NewInvalidQuantityError(0)

	assert.Equal(t, 0, err.Quantity)
	assert.Equal(t, "quantity is invalid: 0 is less than 1", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestStockExceededError(t *testing.T) {
	t.Run("carries the permissible maximum", func(t *testing.T) {
		err := errs.NewStockExceededError("shirt-1:M:red", 6, 5)

		assert.Equal(t, 5, err.Max)
		assert.Equal(t, 6, err.Requested)
		assert.Equal(t, "stock exceeded: shirt-1:M:red requested 6, at most 5 available", err.Error())
		require.ErrorIs(t, err, errs.ErrStockExceeded)
	})

	t.Run("negative maximum is reported as zero", func(t *testing.T) {
		err := errs.NewStockExceededError("shirt-1::", 1, -3)

		assert.Equal(t, 0, err.Max)
	})

	t.Run("errors.As extracts the maximum through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("checkout: %w", errs.NewStockExceededError("sku", 3, 2))

		var stockErr *errs.StockExceededError
		require.ErrorAs(t, wrapped, &stockErr)
		assert.Equal(t, 2, stockErr.Max)
	})
}

func TestCouponInvalidError(t *testing.T) {
	err := errs.NewCouponInvalidError("INDIRIM10", errs.CouponExpired)

	assert.Equal(t, "coupon is invalid: INDIRIM10 (expired)", err.Error())
	assert.Equal(t, errs.CouponExpired, err.Reason)
	require.ErrorIs(t, err, errs.ErrCouponInvalid)
}

func TestIllegalTransitionError(t *testing.T) {
	err := errs.NewIllegalTransitionError(stringer("PENDING"), stringer("SHIPPED"))

	assert.Equal(t, "PENDING", err.From)
	assert.Equal(t, "SHIPPED", err.To)
	assert.Equal(t, "illegal transition: PENDING -> SHIPPED", err.Error())
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestStaleWriteError(t *testing.T) {
	err := errs.NewStaleWriteError("order", "42", 3, 4)

	assert.Equal(t, "stale write: order 42 expected version 3, current version is 4", err.Error())
	require.ErrorIs(t, err, errs.ErrStaleWrite)
}

func TestCommerceErrorsAreDistinct(t *testing.T) {
	kinds := []error{
		errs.ErrInvalidQuantity,
		errs.ErrStockExceeded,
		errs.ErrCouponInvalid,
		errs.ErrIllegalTransition,
		errs.ErrStaleWrite,
	}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}
