package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// TransitionOrderStatusCommandHandler applies a status transition with optimistic
// concurrency.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.StaleWriteError when the expected version is not current, or a concurrent
//     writer saved first
//   - *errs.IllegalTransitionError when the target is not a legal successor
//
// Moving into Cancelled or Failed releases the stock reserved at checkout once the
// transition is committed.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	stock      ports.StockService
	logger     *slog.Logger
	now        func() time.Time
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	stock ports.StockService,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		stock:      stock,
		logger:     logger.With("component", "order-transitions"),
		now:        time.Now,
	}
}

func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (OrderMutation, error) {
	if err := cmd.Validate(); err != nil {
		return OrderMutation{}, err
	}

	result, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(),
		func(o *order.Order) (order.Change, error) {
			return o.Transition(cmd.Target(), cmd.Actor(), h.now())
		})
	if err != nil {
		return OrderMutation{}, err
	}

	h.logger.Info("order status changed",
		"orderId", cmd.OrderID().String(),
		"from", result.Change.From.String(),
		"to", result.Change.To.String(),
		"actor", cmd.Actor(),
	)

	if releasesStock(result.Change.To) {
		if err = h.stock.Release(ctx, cmd.OrderID()); err != nil {
			h.logger.Error("failed to release stock", "orderId", cmd.OrderID().String(), "error", err)
		}
	}

	return result, nil
}

func releasesStock(s order.Status) bool {
	return s == order.Cancelled || s == order.Failed
}
