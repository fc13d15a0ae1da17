// Package cart provides the shopping cart value and its line items.
//
// A Cart is an immutable value: AddItem, UpdateQuantity, RemoveItem and the coupon
// operations return a new Cart and leave the receiver untouched, so callers decide
// when and where a cart is stored.
//
// Key business rules:
//   - Line item quantity is at least 1
//   - Quantities are checked against a caller-supplied stock snapshot; the snapshot is
//     advisory and stock is enforced again at checkout
//   - Two items with the same product, size and color are merged into one line
//   - Stock and quantity violations are returned as errs.InvalidQuantityError and
//     errs.StockExceededError so the caller can render a specific message
package cart
