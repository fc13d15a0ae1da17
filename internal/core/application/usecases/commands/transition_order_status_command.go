package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// TransitionOrderStatusCommand asks to move an order to a target status.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(orderID, order.Shipped, "ops@shop", 4)
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	target          order.Status
	actor           string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a status change request.
// Validates the order ID, that target is a known status, that actor is not blank, and that
// expectedVersion is at least 1. Returns every validation error joined.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor string,
	expectedVersion int,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderStatusCommand) Actor() string {
	return c.actor
}

func (c TransitionOrderStatusCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderStatusCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *TransitionOrderStatusCommand) setExpectedVersion(v int) error {
	if err := validateExpectedVersion(v); err != nil {
		return err
	}
	c.expectedVersion = v
	return nil
}
