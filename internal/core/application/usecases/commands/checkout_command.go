package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrIdempotencyKeyIsRequired = errors.New("idempotency key is required")
)

// CheckoutCommand turns a cart into a Pending order.
//
// IdempotencyKey identifies one checkout attempt of the client; repeating it is rejected
// with ErrDuplicateCheckout. ExpectedTotal, when given, is the total the shopper saw; if
// pricing now yields a different total the checkout fails with ErrPriceChanged.
//
// Example:
//
//	seen := kernel.MoneyFromMinorUnits(255000)
//	cmd, err := NewCheckoutCommand("session-42", "3f1c...", &seen)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID         string
	idempotencyKey string
	expectedTotal  *kernel.Money

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout request for a cart.
// Validates that the cart identifier and idempotency key are not blank.
// A nil expectedTotal skips the price check.
func NewCheckoutCommand(cartID, idempotencyKey string, expectedTotal *kernel.Money) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		expectedTotal: expectedTotal,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) CartID() string {
	return c.cartID
}

func (c CheckoutCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

// ExpectedTotal is nil when the client did not send one.
func (c CheckoutCommand) ExpectedTotal() *kernel.Money {
	return c.expectedTotal
}

func (c *CheckoutCommand) setCartID(cartID string) error {
	id, err := normalizeCartID(cartID)
	if err != nil {
		return err
	}
	c.cartID = id
	return nil
}

func (c *CheckoutCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrIdempotencyKeyIsRequired
	}
	c.idempotencyKey = key
	return nil
}
