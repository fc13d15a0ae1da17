package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ExpiryActor is recorded in the status history of orders cancelled for non-payment.
const ExpiryActor = "system:payment-timeout"

// CancelExpiredOrdersCommandHandler cancels Pending and AwaitingPayment orders whose
// payment window has passed and returns their stock.
//
// Each order is cancelled in its own unit of work. An order that an admin changed in the
// meantime (stale write or no longer cancellable) is skipped, not treated as a failure.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	stock      ports.StockService
	logger     *slog.Logger
	now        func() time.Time
}

func NewCancelExpiredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	stock ports.StockService,
	logger *slog.Logger,
) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		stock:      stock,
		logger:     logger.With("component", "order-expiry"),
		now:        time.Now,
	}
}

// Handle returns the number of orders it cancelled.
func (h *CancelExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd CancelExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()
	expired, err := h.uowFactory.Create().OrderRepository().
		GetUnpaidCreatedBefore(ctx, now.Add(-cmd.PaymentTimeout()), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, candidate := range expired {
		if err = ctx.Err(); err != nil {
			return cancelled, err
		}

		_, err = mutateOrder(ctx, h.uowFactory, candidate.ID(), candidate.Version(),
			func(o *order.Order) (order.Change, error) {
				return o.Transition(order.Cancelled, ExpiryActor, now)
			})
		if errors.Is(err, errs.ErrStaleWrite) || errors.Is(err, errs.ErrIllegalTransition) {
			h.logger.Info("skipping order changed concurrently", "orderId", candidate.ID().String(), "error", err)
			continue
		}
		if err != nil {
			return cancelled, err
		}

		cancelled++
		if err = h.stock.Release(ctx, candidate.ID()); err != nil {
			h.logger.Error("failed to release stock", "orderId", candidate.ID().String(), "error", err)
		}
	}

	return cancelled, nil
}
