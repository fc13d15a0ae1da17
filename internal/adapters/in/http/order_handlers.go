package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderList(resp, query))
}

// GetOrder handles GET /api/v1/admin/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(resp))
}

// TransitionOrder handles POST /api/v1/admin/orders/{orderId}/transitions.
// The caller recorded in the status history is the admin token subject.
func (s *Server) TransitionOrder(ctx echo.Context, orderId string) error {
	var body servers.TransitionOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target, actorFrom(ctx), body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderMutation(result))
}

// SetOrderShipping handles PUT /api/v1/admin/orders/{orderId}/shipping.
func (s *Server) SetOrderShipping(ctx echo.Context, orderId string) error {
	var body servers.SetOrderShippingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	update := order.ShippingUpdate{
		Carrier:        body.Carrier,
		TrackingNumber: body.TrackingNumber,
		TrackingURL:    body.TrackingUrl,
	}
	cmd, err := commands.NewSetOrderShippingInfoCommand(id, update, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.SetShipping.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderMutation(result))
}

// SetOrderNotes handles PUT /api/v1/admin/orders/{orderId}/notes.
func (s *Server) SetOrderNotes(ctx echo.Context, orderId string) error {
	var body servers.SetOrderNotesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	id, err := kernel.UUIDFromString(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetOrderAdminNotesCommand(id, body.Notes, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.SetNotes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderMutation(result))
}
