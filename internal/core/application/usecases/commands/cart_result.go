package commands

import (
	"strings"

	"storefront/internal/core/domain/model/cart"
)

// CartResult is the outcome of a cart command that changed the cart.
//
// Violation is set when the change was applied only partly, e.g. a quantity clamped to
// the available stock (*errs.StockExceededError), or when a remembered coupon does not
// apply yet (*errs.CouponInvalidError). The cart is saved either way.
type CartResult struct {
	CartID    string
	Cart      cart.Cart
	Violation error
}

func normalizeCartID(cartID string) (string, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return "", ErrCartIDIsRequired
	}
	return cartID, nil
}
