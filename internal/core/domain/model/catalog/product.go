// Package catalog holds the product data the cart needs: current price and whether the
// product can be sold.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	ErrIDIsRequired   = errs.NewValueIsRequiredError("id")
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotForSale is returned when an inactive product is added to a cart.
	ErrProductIsNotForSale = errors.New("product is not for sale")
)

// Product is a sellable article. Variants (size, color) share the product price.
type Product struct {
	id     string
	name   string
	price  kernel.Money
	active bool
}

// NewProduct validates a catalog entry. Id and name are trimmed and must not be blank.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("800")
//	product, err := NewProduct("dress-1", "Linen dress", price, true)
func NewProduct(id, name string, price kernel.Money, active bool) (Product, error) {
	id, name = strings.TrimSpace(id), strings.TrimSpace(name)

	var idErr, nameErr error
	if id == "" {
		idErr = ErrIDIsRequired
	} else if strings.Contains(id, ":") {
		idErr = errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q must not contain ':'", id))
	}
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(idErr, nameErr); err != nil {
		return Product{}, err
	}

	return Product{id: id, name: name, price: price, active: active}, nil
}

func (p Product) ID() string {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Active() bool {
	return p.active
}

// CheckForSale returns ErrProductIsNotForSale for inactive products.
func (p Product) CheckForSale() error {
	if !p.active {
		return fmt.Errorf("%w: %s", ErrProductIsNotForSale, p.id)
	}
	return nil
}
