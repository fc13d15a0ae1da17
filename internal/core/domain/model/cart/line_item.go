package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// LineItem is one product variant with a quantity and the unit price it was added at.
// Stock is the availability snapshot seen at the last mutation; it is advisory only.
type LineItem struct {
	key       ItemKey
	unitPrice kernel.Money
	quantity  int
	stock     int
}

// NewLineItem validates an item. It does not compare quantity with stock: a stored cart
// may legitimately hold more than a newer snapshot allows until checkout rechecks it.
func NewLineItem(key ItemKey, unitPrice kernel.Money, quantity int, stock int) (LineItem, error) {
	var quantityErr, stockErr error
	if quantity < 1 {
		quantityErr = errs.NewInvalidQuantityError(quantity)
	}
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	if err := errors.Join(key.Validate(), quantityErr, stockErr); err != nil {
		return LineItem{}, err
	}

	return LineItem{key: key, unitPrice: unitPrice, quantity: quantity, stock: stock}, nil
}

func (i LineItem) Key() ItemKey {
	return i.key
}

func (i LineItem) ProductID() string {
	return i.key.productID
}

func (i LineItem) Variant() Variant {
	return i.key.variant
}

func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) Stock() int {
	return i.stock
}

// LineTotal is unit price × quantity.
func (i LineItem) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}
