package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// SetOrderShippingInfoCommandHandler applies shipping data with optimistic concurrency.
// Closed orders are rejected with order.ErrOrderIsClosed.
type SetOrderShippingInfoCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewSetOrderShippingInfoCommandHandler(uowFactory OrderUoWFactory) SetOrderShippingInfoCommandHandler {
	return SetOrderShippingInfoCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *SetOrderShippingInfoCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderShippingInfoCommand,
) (OrderMutation, error) {
	if err := cmd.Validate(); err != nil {
		return OrderMutation{}, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(),
		func(o *order.Order) (order.Change, error) {
			return o.SetShippingInfo(cmd.Update(), h.now())
		})
}
