package http

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handler is the shape shared by every command and query handler.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Handlers are the use cases the API exposes.
type Handlers struct {
	GetCart        Handler[queries.GetCartQuery, queries.GetCartQueryResponse]
	AddCartItem    Handler[commands.AddCartItemCommand, commands.CartResult]
	UpdateCartItem Handler[commands.UpdateCartItemQuantityCommand, commands.CartResult]
	RemoveCartItem Handler[commands.RemoveCartItemCommand, commands.CartResult]
	ApplyCoupon    Handler[commands.ApplyCartCouponCommand, commands.CartResult]
	RemoveCoupon   Handler[commands.RemoveCartCouponCommand, commands.CartResult]
	Checkout       Handler[commands.CheckoutCommand, commands.CheckoutResult]

	ListOrders      Handler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
	GetOrder        Handler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	TransitionOrder Handler[commands.TransitionOrderStatusCommand, commands.OrderMutation]
	SetShipping     Handler[commands.SetOrderShippingInfoCommand, commands.OrderMutation]
	SetNotes        Handler[commands.SetOrderAdminNotesCommand, commands.OrderMutation]
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// fail writes the mapped error body. Only unexpected errors are logged.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := problem(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}
