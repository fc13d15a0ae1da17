package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrSetOrderShippingInfoCommandIsNotConstructed = errors.New(
		"SetOrderShippingInfoCommand must be created via NewSetOrderShippingInfoCommand constructor",
	)
	ErrShippingUpdateIsEmpty = errors.New("shipping update has no fields")
)

// SetOrderShippingInfoCommand records carrier and tracking data of an order.
type SetOrderShippingInfoCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	update          order.ShippingUpdate
	expectedVersion int

	guard guard.ConstructorGuard
}

func NewSetOrderShippingInfoCommand(
	orderID kernel.UUID,
	update order.ShippingUpdate,
	expectedVersion int,
) (SetOrderShippingInfoCommand, error) {
	cmd := SetOrderShippingInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	var updateErr error
	if update.IsEmpty() {
		updateErr = ErrShippingUpdateIsEmpty
	}
	if err := errors.Join(orderID.Validate(), updateErr, validateExpectedVersion(expectedVersion)); err != nil {
		return SetOrderShippingInfoCommand{}, err
	}

	cmd.orderID = orderID
	cmd.update = update
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

func (c SetOrderShippingInfoCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderShippingInfoCommandIsNotConstructed)
}

func (c SetOrderShippingInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderShippingInfoCommand) Update() order.ShippingUpdate {
	return c.update
}

func (c SetOrderShippingInfoCommand) ExpectedVersion() int {
	return c.expectedVersion
}
