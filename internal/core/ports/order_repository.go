// Package ports defines the contracts between the storefront core and its adapters:
// persistence of orders, coupons and products, the Redis-backed cart, stock and
// idempotency stores.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates. Orders are never deleted.
type OrderRepository interface {
	// Add stores a new order with its lines. Storing an existing ID fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the mutable state of an order (status, shipment, notes, history,
	// version). The write is guarded by aggregate.PersistedVersion(): if the stored
	// version differs the result is *errs.StaleWriteError and nothing is written.
	// A missing order yields *errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads a complete order or returns *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetUnpaidCreatedBefore returns up to limit orders in Pending or AwaitingPayment
	// that were created before the given time, oldest first.
	GetUnpaidCreatedBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}
