package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// SetOrderAdminNotesCommandHandler stores admin notes with optimistic concurrency.
// Repeating the current text writes nothing and returns an empty Change.
type SetOrderAdminNotesCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewSetOrderAdminNotesCommandHandler(uowFactory OrderUoWFactory) SetOrderAdminNotesCommandHandler {
	return SetOrderAdminNotesCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *SetOrderAdminNotesCommandHandler) Handle(
	ctx context.Context,
	cmd SetOrderAdminNotesCommand,
) (OrderMutation, error) {
	if err := cmd.Validate(); err != nil {
		return OrderMutation{}, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(),
		func(o *order.Order) (order.Change, error) {
			return o.SetAdminNotes(cmd.Notes(), h.now()), nil
		})
}
