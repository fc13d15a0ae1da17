package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetOrderAdminNotesCommandIsNotConstructed = errors.New(
	"SetOrderAdminNotesCommand must be created via NewSetOrderAdminNotesCommand constructor",
)

// SetOrderAdminNotesCommand replaces the admin notes of an order. Empty notes are
// allowed and clear the field.
type SetOrderAdminNotesCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	notes           string
	expectedVersion int

	guard guard.ConstructorGuard
}

func NewSetOrderAdminNotesCommand(
	orderID kernel.UUID,
	notes string,
	expectedVersion int,
) (SetOrderAdminNotesCommand, error) {
	if err := errors.Join(orderID.Validate(), validateExpectedVersion(expectedVersion)); err != nil {
		return SetOrderAdminNotesCommand{}, err
	}

	return SetOrderAdminNotesCommand{
		orderID:         orderID,
		notes:           notes,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderAdminNotesCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderAdminNotesCommandIsNotConstructed)
}

func (c SetOrderAdminNotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderAdminNotesCommand) Notes() string {
	return c.notes
}

func (c SetOrderAdminNotesCommand) ExpectedVersion() int {
	return c.expectedVersion
}
