// Package queries contains read operations. Cart reads go through the cart store and the
// pricing engine; order reads query PostgreSQL directly for their read models.
package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrCartIDIsRequired = errors.New("cart id is required")
)

// GetCartQuery prices the cart bound to a cart identifier.
type GetCartQuery struct {
	cartID string

	guard guard.ConstructorGuard
}

func NewGetCartQuery(cartID string) (GetCartQuery, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return GetCartQuery{}, ErrCartIDIsRequired
	}
	return GetCartQuery{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CartID() string {
	return q.cartID
}

// GetCartQueryResponse is the priced cart. RequestedCoupon is the code stored in the cart;
// Quote.CouponCode is set only when that coupon applies.
type GetCartQueryResponse struct {
	CartID          string
	RequestedCoupon string
	Quote           services.Quote
}
