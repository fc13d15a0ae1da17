package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository binds carts to cart identifiers (a session or a shopper).
type CartRepository interface {
	// Get returns the stored cart, or an empty cart when none is stored.
	Get(ctx context.Context, cartID string) (cart.Cart, error)

	// Save stores the cart and refreshes its expiry.
	Save(ctx context.Context, cartID string, c cart.Cart) error

	// Update applies change to the stored cart and saves the result, or nothing when change
	// fails. A concurrent write to the same cart never gets lost; change may run again
	// against the newer cart.
	Update(ctx context.Context, cartID string, change func(cart.Cart) (cart.Cart, error)) (cart.Cart, error)

	// Delete forgets the cart. Deleting a missing cart is not an error.
	Delete(ctx context.Context, cartID string) error
}

// StockLine is a quantity of one item key, "productId:size:color".
type StockLine struct {
	ItemKey  string
	Quantity int
}

// StockService tracks available units per item key.
type StockService interface {
	// Available returns the units currently on hand; unknown keys have 0.
	Available(ctx context.Context, itemKey string) (int, error)

	// Reserve takes every line out of stock under the order's reservation, or nothing.
	// A shortfall yields *errs.StockExceededError for the first short line.
	Reserve(ctx context.Context, orderID kernel.UUID, lines []StockLine) error

	// Release puts a reservation back into stock. Releasing twice, or releasing an
	// unknown order, is a no-op.
	Release(ctx context.Context, orderID kernel.UUID) error

	// SetStock overwrites the units on hand.
	SetStock(ctx context.Context, itemKey string, quantity int) error
}

// IdempotencyStore remembers request keys for a while.
type IdempotencyStore interface {
	// Claim records key and reports true, or reports false when key is already claimed.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Forget removes a claim so the request can be retried.
	Forget(ctx context.Context, key string) error
}
