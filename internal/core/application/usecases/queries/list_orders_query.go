package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultListOrdersLimit = 50
	MaxListOrdersLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first, optionally filtered by status.
//
// Example:
//
//	paid := order.Paid
//	query, err := NewListOrdersQuery(&paid, 20, 40)
type ListOrdersQuery struct {
	status *order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter. A limit of 0 means DefaultListOrdersLimit.
func NewListOrdersQuery(status *order.Status, limit, offset int) (ListOrdersQuery, error) {
	var statusErr, limitErr, offsetErr error
	if status != nil {
		statusErr = status.Validate()
	}
	if limit == 0 {
		limit = DefaultListOrdersLimit
	}
	if limit < 1 || limit > MaxListOrdersLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListOrdersLimit)
	}
	if offset < 0 {
		offsetErr = errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	if err := errors.Join(statusErr, limitErr, offsetErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{status: status, limit: limit, offset: offset, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status is nil when all statuses are listed.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q ListOrdersQuery) Offset() int {
	return q.offset
}

type OrderSummary struct {
	ID        kernel.UUID
	Status    order.Status
	ItemCount int
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// ListOrdersQueryResponse holds one page. TotalCount counts every matching order.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummary
	TotalCount int64
}
