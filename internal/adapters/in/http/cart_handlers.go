package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/carts/{cartId}.
func (s *Server) GetCart(ctx echo.Context, cartId string) error {
	return s.respondWithCart(ctx, cartId, nil)
}

// AddCartItem handles POST /api/v1/carts/{cartId}/items.
func (s *Server) AddCartItem(ctx echo.Context, cartId string) error {
	var body servers.AddCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	variant := cart.Variant{Size: deref(body.Size), Color: deref(body.Color)}
	cmd, err := commands.NewAddCartItemCommand(cartId, body.ProductId, variant, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithCart(ctx, result.CartID, result.Violation)
}

// UpdateCartItem handles PUT /api/v1/carts/{cartId}/items/{itemKey}.
func (s *Server) UpdateCartItem(ctx echo.Context, cartId string, itemKey string) error {
	var body servers.UpdateCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(cartId, itemKey, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.UpdateCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithCart(ctx, result.CartID, result.Violation)
}

// RemoveCartItem handles DELETE /api/v1/carts/{cartId}/items/{itemKey}.
func (s *Server) RemoveCartItem(ctx echo.Context, cartId string, itemKey string) error {
	cmd, err := commands.NewRemoveCartItemCommand(cartId, itemKey)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithCart(ctx, result.CartID, result.Violation)
}

// ApplyCartCoupon handles PUT /api/v1/carts/{cartId}/coupon.
func (s *Server) ApplyCartCoupon(ctx echo.Context, cartId string) error {
	var body servers.ApplyCartCouponJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	cmd, err := commands.NewApplyCartCouponCommand(cartId, body.Code)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ApplyCoupon.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithCart(ctx, result.CartID, result.Violation)
}

// RemoveCartCoupon handles DELETE /api/v1/carts/{cartId}/coupon.
func (s *Server) RemoveCartCoupon(ctx echo.Context, cartId string) error {
	cmd, err := commands.NewRemoveCartCouponCommand(cartId)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.RemoveCoupon.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithCart(ctx, result.CartID, result.Violation)
}

// Checkout handles POST /api/v1/carts/{cartId}/checkout.
func (s *Server) Checkout(ctx echo.Context, cartId string, params servers.CheckoutParams) error {
	var body servers.CheckoutJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return invalidBody()
		}
	}

	var expected *kernel.Money
	if body.ExpectedTotal != nil {
		m, err := kernel.MoneyFromString(*body.ExpectedTotal)
		if err != nil {
			return s.fail(ctx, err)
		}
		expected = &m
	}

	cmd, err := commands.NewCheckoutCommand(cartId, params.IdempotencyKey, expected)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	q := result.Quote
	return ctx.JSON(http.StatusCreated, servers.CheckoutResponse{
		OrderId:     result.OrderID.Bytes(),
		Status:      servers.OrderStatus(order.Pending.String()),
		Subtotal:    q.Subtotal.String(),
		Discount:    q.Discount.String(),
		Shipping:    q.Shipping.String(),
		Total:       q.Total.String(),
		CouponCode:  optional(q.CouponCode),
		CouponError: errorBody(q.CouponErr),
	})
}

// respondWithCart prices the stored cart and reports violation next to it.
func (s *Server) respondWithCart(ctx echo.Context, cartID string, violation error) error {
	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(resp, violation))
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}
