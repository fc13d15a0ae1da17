package cart

import (
	"fmt"
	"slices"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Cart is the ordered list of line items of one shopper plus an optional coupon code.
// The zero value is an empty cart.
type Cart struct {
	items      []LineItem
	couponCode string
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

// RestoreCart rebuilds a cart from storage. Items must be valid and keys unique.
func RestoreCart(items []LineItem, couponCode string) (Cart, error) {
	seen := make(map[ItemKey]struct{}, len(items))
	for _, item := range items {
		if err := item.key.Validate(); err != nil {
			return Cart{}, err
		}
		if item.quantity < 1 {
			return Cart{}, errs.NewInvalidQuantityError(item.quantity)
		}
		if _, dup := seen[item.key]; dup {
			return Cart{}, errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("duplicate item %s", item.key))
		}
		seen[item.key] = struct{}{}
	}

	return Cart{items: slices.Clone(items), couponCode: coupon.NormalizeCode(couponCode)}, nil
}

// Items returns a copy of the line items in insertion order.
func (c Cart) Items() []LineItem {
	return slices.Clone(c.items)
}

// Item looks up a line item by key.
func (c Cart) Item(key ItemKey) (LineItem, bool) {
	if i := c.indexOf(key); i >= 0 {
		return c.items[i], true
	}
	return LineItem{}, false
}

func (c Cart) CouponCode() string {
	return c.couponCode
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ProductIDs returns the distinct product identifiers in the cart.
func (c Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if !slices.Contains(ids, item.key.productID) {
			ids = append(ids, item.key.productID)
		}
	}
	return ids
}

// AddItem adds quantity units of a product variant. An existing line with the same key
// is merged and takes the new unit price.
//
// The combined quantity is clamped to availableStock. When clamping happens the
// returned cart holds the clamped quantity and the error is an *errs.StockExceededError
// whose Max is the stock; the cart is still meant to be kept. When nothing at all can be
// granted the receiver is returned unchanged with the same error kind.
//
// A quantity below 1 returns the receiver unchanged with *errs.InvalidQuantityError.
func (c Cart) AddItem(
	productID string,
	quantity int,
	variant Variant,
	unitPrice kernel.Money,
	availableStock int,
) (Cart, error) {
	if quantity < 1 {
		return c, errs.NewInvalidQuantityError(quantity)
	}

	key, err := NewItemKey(productID, variant)
	if err != nil {
		return c, err
	}

	stock := max(availableStock, 0)
	requested := quantity
	idx := c.indexOf(key)
	if idx >= 0 {
		requested += c.items[idx].quantity
	}

	granted := min(requested, stock)
	if granted < 1 {
		return c, errs.NewStockExceededError(key.String(), requested, stock)
	}

	item := LineItem{key: key, unitPrice: unitPrice, quantity: granted, stock: stock}
	next := c.clone()
	if idx >= 0 {
		next.items[idx] = item
	} else {
		next.items = append(next.items, item)
	}

	if granted < requested {
		return next, errs.NewStockExceededError(key.String(), requested, stock)
	}
	return next, nil
}

// UpdateQuantity sets the quantity of an existing line.
//
// Errors (the receiver is returned unchanged):
//   - *errs.InvalidQuantityError when newQuantity < 1; use RemoveItem to drop a line
//   - *errs.ObjectNotFoundError when the key is not in the cart
//   - *errs.StockExceededError with Max = availableStock when newQuantity exceeds it
func (c Cart) UpdateQuantity(key ItemKey, newQuantity int, availableStock int) (Cart, error) {
	if newQuantity < 1 {
		return c, errs.NewInvalidQuantityError(newQuantity)
	}

	idx := c.indexOf(key)
	if idx < 0 {
		return c, errs.NewObjectNotFoundError("itemKey", key.String())
	}

	if newQuantity > availableStock {
		return c, errs.NewStockExceededError(key.String(), newQuantity, availableStock)
	}

	next := c.clone()
	next.items[idx].quantity = newQuantity
	next.items[idx].stock = availableStock
	return next, nil
}

// RemoveItem drops the line with the given key. Removing a missing key is a no-op.
func (c Cart) RemoveItem(key ItemKey) Cart {
	idx := c.indexOf(key)
	if idx < 0 {
		return c
	}

	next := c.clone()
	next.items = slices.Delete(next.items, idx, idx+1)
	return next
}

// ApplyCouponCode remembers a coupon code. Whether it grants a discount is decided when
// the cart is priced.
func (c Cart) ApplyCouponCode(code string) (Cart, error) {
	normalized := coupon.NormalizeCode(code)
	if normalized == "" {
		return c, coupon.ErrCodeIsRequired
	}

	next := c.clone()
	next.couponCode = normalized
	return next, nil
}

func (c Cart) ClearCoupon() Cart {
	next := c.clone()
	next.couponCode = ""
	return next
}

func (c Cart) indexOf(key ItemKey) int {
	return slices.IndexFunc(c.items, func(item LineItem) bool { return item.key == key })
}

func (c Cart) clone() Cart {
	return Cart{items: slices.Clone(c.items), couponCode: c.couponCode}
}
