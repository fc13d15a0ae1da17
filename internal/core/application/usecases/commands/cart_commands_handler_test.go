package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var medBlack = cart.Variant{Size: "M", Color: "black"}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand("s-1", "dress-1", medBlack, 2)
	require.NoError(t, err)

	products := new(MockProductCatalog)
	stock := new(MockStockService)
	carts := new(MockCartRepository)
	mock.InOrder(
		products.On("Get", ctx, "dress-1").Return(newProduct(t, "dress-1", "800", true), nil).Once(),
		stock.On("Available", ctx, "dress-1:M:black").Return(5, nil).Once(),
		carts.On("Get", ctx, "s-1").Return(cart.NewCart(), nil).Once(),
		carts.On("Save", ctx, "s-1", mock.AnythingOfType("cart.Cart")).Return(nil).Once(),
	)

	h := commands.NewAddCartItemCommandHandler(carts, products, stock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, result.Violation)
	items := result.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, "800.00", items[0].UnitPrice().String())
	products.AssertExpectations(t)
	stock.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ClampIsSavedWithViolation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand("s-1", "dress-1", medBlack, 5)
	require.NoError(t, err)

	products := new(MockProductCatalog)
	products.On("Get", ctx, "dress-1").Return(newProduct(t, "dress-1", "800", true), nil)
	stock := new(MockStockService)
	stock.On("Available", ctx, "dress-1:M:black").Return(3, nil)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, "s-1").Return(cart.NewCart(), nil)
	carts.On("Save", ctx, "s-1", mock.MatchedBy(func(c cart.Cart) bool {
		return len(c.Items()) == 1 && c.Items()[0].Quantity() == 3
	})).Return(nil).Once()

	h := commands.NewAddCartItemCommandHandler(carts, products, stock)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	var stockErr *errs.StockExceededError
	require.ErrorAs(t, result.Violation, &stockErr)
	assert.Equal(t, 3, stockErr.Max)
	carts.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_OutOfStockIsNotSaved(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand("s-1", "dress-1", medBlack, 1)
	require.NoError(t, err)

	products := new(MockProductCatalog)
	products.On("Get", ctx, "dress-1").Return(newProduct(t, "dress-1", "800", true), nil)
	stock := new(MockStockService)
	stock.On("Available", ctx, "dress-1:M:black").Return(0, nil)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, "s-1").Return(cart.NewCart(), nil)

	h := commands.NewAddCartItemCommandHandler(carts, products, stock)
	_, err = h.Handle(ctx, cmd)

	var stockErr *errs.StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Max)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ProductErrors(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand("s-1", "dress-1", medBlack, 1)
	require.NoError(t, err)

	t.Run("unknown product", func(t *testing.T) {
		products := new(MockProductCatalog)
		products.On("Get", ctx, "dress-1").Return(nil, errs.NewObjectNotFoundError("product", "dress-1"))

		h := commands.NewAddCartItemCommandHandler(new(MockCartRepository), products, new(MockStockService))
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("inactive product", func(t *testing.T) {
		products := new(MockProductCatalog)
		products.On("Get", ctx, "dress-1").Return(newProduct(t, "dress-1", "800", false), nil)

		h := commands.NewAddCartItemCommandHandler(new(MockCartRepository), products, new(MockStockService))
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, catalog.ErrProductIsNotForSale)
	})
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAddCartItemCommandHandler(new(MockCartRepository), new(MockProductCatalog), new(MockStockService))

	_, err := h.Handle(t.Context(), commands.AddCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
}

func cartWithDress(t *testing.T, quantity int) cart.Cart {
	t.Helper()
	c, err := cart.NewCart().AddItem("dress-1", quantity, medBlack, money(t, "800"), 10)
	require.NoError(t, err)
	return c
}

func TestUpdateCartItemQuantityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("saves new quantity", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemQuantityCommand("s-1", "dress-1:M:black", 4)
		require.NoError(t, err)
		carts := new(MockCartRepository)
		carts.On("Get", ctx, "s-1").Return(cartWithDress(t, 1), nil)
		carts.On("Save", ctx, "s-1", mock.AnythingOfType("cart.Cart")).Return(nil).Once()
		stock := new(MockStockService)
		stock.On("Available", ctx, "dress-1:M:black").Return(4, nil)

		h := commands.NewUpdateCartItemQuantityCommandHandler(carts, stock)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 4, result.Cart.Items()[0].Quantity())
		carts.AssertExpectations(t)
	})

	t.Run("rejects stock plus one without saving", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemQuantityCommand("s-1", "dress-1:M:black", 5)
		require.NoError(t, err)
		carts := new(MockCartRepository)
		carts.On("Get", ctx, "s-1").Return(cartWithDress(t, 1), nil)
		stock := new(MockStockService)
		stock.On("Available", ctx, "dress-1:M:black").Return(4, nil)

		h := commands.NewUpdateCartItemQuantityCommandHandler(carts, stock)
		_, err = h.Handle(ctx, cmd)

		var stockErr *errs.StockExceededError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.Max)
		carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveCartItemCommand("s-1", "dress-1:M:black")
	require.NoError(t, err)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, "s-1").Return(cartWithDress(t, 2), nil)
	carts.On("Save", ctx, "s-1", mock.MatchedBy(func(c cart.Cart) bool { return c.IsEmpty() })).Return(nil).Once()

	h := commands.NewRemoveCartItemCommandHandler(carts)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Cart.IsEmpty())
	carts.AssertExpectations(t)
}

func TestApplyCartCouponCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApplyCartCouponCommand("s-1", "indirim10")
	require.NoError(t, err)

	t.Run("unknown code is rejected and not stored", func(t *testing.T) {
		coupons := new(MockCouponRegistry)
		coupons.On("Get", ctx, "INDIRIM10").Return(nil, errs.NewObjectNotFoundError("coupon", "INDIRIM10"))
		carts := new(MockCartRepository)

		h := commands.NewApplyCartCouponCommandHandler(carts, coupons)
		_, err := h.Handle(ctx, cmd)

		var couponErr *errs.CouponInvalidError
		require.ErrorAs(t, err, &couponErr)
		assert.Equal(t, errs.CouponUnknown, couponErr.Reason)
		carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("known code below minimum is stored with violation", func(t *testing.T) {
		c, err := coupon.NewCoupon("INDIRIM10", coupon.Percentage, decimal.NewFromInt(10), true,
			coupon.Terms{MinSubtotal: money(t, "2000")})
		require.NoError(t, err)
		coupons := new(MockCouponRegistry)
		coupons.On("Get", ctx, "INDIRIM10").Return(c, nil)
		carts := new(MockCartRepository)
		carts.On("Get", ctx, "s-1").Return(cartWithDress(t, 1), nil)
		carts.On("Save", ctx, "s-1", mock.MatchedBy(func(c cart.Cart) bool {
			return c.CouponCode() == "INDIRIM10"
		})).Return(nil).Once()

		h := commands.NewApplyCartCouponCommandHandler(carts, coupons)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		var couponErr *errs.CouponInvalidError
		require.ErrorAs(t, result.Violation, &couponErr)
		assert.Equal(t, errs.CouponBelowMinimum, couponErr.Reason)
		carts.AssertExpectations(t)
	})

	t.Run("registry failure is returned", func(t *testing.T) {
		coupons := new(MockCouponRegistry)
		coupons.On("Get", ctx, "INDIRIM10").Return(nil, errors.New("db down"))

		h := commands.NewApplyCartCouponCommandHandler(new(MockCartRepository), coupons)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "db down")
	})
}

func TestRemoveCartCouponCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveCartCouponCommand("s-1")
	require.NoError(t, err)
	withCoupon, err := cartWithDress(t, 1).ApplyCouponCode("X")
	require.NoError(t, err)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, "s-1").Return(withCoupon, nil)
	carts.On("Save", ctx, "s-1", mock.MatchedBy(func(c cart.Cart) bool { return c.CouponCode() == "" })).
		Return(nil).Once()

	h := commands.NewRemoveCartCouponCommandHandler(carts)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Cart.CouponCode())
	carts.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_StoreFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveCartItemCommand("s-1", "dress-1:M:black")
	require.NoError(t, err)
	carts := new(MockCartRepository)
	carts.On("Get", ctx, "s-1").Return(cartWithDress(t, 2), nil)
	carts.On("Save", ctx, "s-1", mock.AnythingOfType("cart.Cart")).
		Return(errors.New("update cart s-1: redis: transaction failed")).Once()

	h := commands.NewRemoveCartItemCommandHandler(carts)
	result, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "update cart s-1: redis: transaction failed")
	assert.Empty(t, result.CartID)
	carts.AssertExpectations(t)
}
