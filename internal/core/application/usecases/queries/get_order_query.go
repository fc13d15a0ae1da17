package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its lines and status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderLineView struct {
	ItemKey   string
	ProductID string
	Size      string
	Color     string
	UnitPrice kernel.Money
	Quantity  int
	LineTotal kernel.Money
}

type StatusChangeView struct {
	From  order.Status
	To    order.Status
	Actor string
	At    time.Time
}

// GetOrderQueryResponse is the admin view of an order.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	Status     order.Status
	Lines      []OrderLineView
	Subtotal   kernel.Money
	Discount   kernel.Money
	Shipping   kernel.Money
	Total      kernel.Money
	CouponCode string
	Shipment   order.Shipment
	AdminNotes string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
	History    []StatusChangeView
}
