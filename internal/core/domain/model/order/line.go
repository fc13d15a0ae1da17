package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrProductIDIsRequired = errs.NewValueIsRequiredError("productID")

// Line is the frozen snapshot of one purchased product variant.
type Line struct {
	productID string
	size      string
	color     string
	unitPrice kernel.Money
	quantity  int
}

// NewLine freezes one purchased variant at the price it was sold for.
//
// Parameters:
//   - productID: catalog identifier, surrounding whitespace is trimmed (must not be blank)
//   - size, color: the variant; either may be empty for products without that axis
//   - unitPrice: price per unit at checkout time
//   - quantity: units bought (must be at least 1)
//
// Returns:
//   - Line: the snapshot when every parameter is valid
//   - error: ErrProductIDIsRequired and *errs.InvalidQuantityError, joined when both apply
//
// Example:
//
//	price, _ := kernel.MoneyFromString("799.90")
//	line, err := NewLine("dress-1", "M", "black", price, 2)
//	if err != nil {
//	    // Handle validation error
//	}
//	total := line.LineTotal() // 1599.80
func NewLine(productID, size, color string, unitPrice kernel.Money, quantity int) (Line, error) {
	var productErr, quantityErr error
	if strings.TrimSpace(productID) == "" {
		productErr = ErrProductIDIsRequired
	}
	if quantity < 1 {
		quantityErr = errs.NewInvalidQuantityError(quantity)
	}
	if err := errors.Join(productErr, quantityErr); err != nil {
		return Line{}, err
	}

	return Line{
		productID: strings.TrimSpace(productID),
		size:      size,
		color:     color,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) Size() string {
	return l.size
}

func (l Line) Color() string {
	return l.color
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) LineTotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// ItemKey returns "productId:size:color", the key stock is reserved under.
func (l Line) ItemKey() string {
	return fmt.Sprintf("%s:%s:%s", l.productID, l.size, l.color)
}
