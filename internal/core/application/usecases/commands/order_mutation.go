package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

var ErrExpectedVersionIsInvalid = errors.New("expected version must be greater than 0")

// OrderMutation is the outcome of an admin command: the order as stored and what changed.
// An empty Change means the command was a no-op and nothing was written.
type OrderMutation struct {
	Order  *order.Order
	Change order.Change
}

func validateExpectedVersion(v int) error {
	if v < 1 {
		return fmt.Errorf("%w: got %d", ErrExpectedVersionIsInvalid, v)
	}
	return nil
}

// mutateOrder runs one read-modify-write cycle of an order inside a unit of work.
// The caller's expected version is checked against the loaded order before mutate runs,
// and the repository guards the write against concurrent writers.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	expectedVersion int,
	mutate func(o *order.Order) (order.Change, error),
) (OrderMutation, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderMutation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return OrderMutation{}, err
	}

	if o.Version() != expectedVersion {
		return OrderMutation{}, errs.NewStaleWriteError("order", orderID.String(), expectedVersion, o.Version())
	}

	change, err := mutate(o)
	if err != nil {
		return OrderMutation{}, err
	}
	if change.IsEmpty() {
		return OrderMutation{Order: o}, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return OrderMutation{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderMutation{}, err
	}

	return OrderMutation{Order: o, Change: change}, nil
}
