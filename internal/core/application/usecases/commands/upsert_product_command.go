package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpsertProductCommandIsNotConstructed = errors.New(
	"UpsertProductCommand must be created via NewUpsertProductCommand constructor",
)

// VariantStock is the on-hand quantity of one variant of a product.
type VariantStock struct {
	Variant  cart.Variant
	Quantity int
}

// UpsertProductCommand creates or replaces a product and sets the stock of its variants.
type UpsertProductCommand struct { //nolint:recvcheck //using for validation
	product catalog.Product
	stock   []ports.StockLine

	guard guard.ConstructorGuard
}

func NewUpsertProductCommand(
	id, name string,
	price kernel.Money,
	active bool,
	variants []VariantStock,
) (UpsertProductCommand, error) {
	product, err := catalog.NewProduct(id, name, price, active)
	if err != nil {
		return UpsertProductCommand{}, err
	}

	stock := make([]ports.StockLine, 0, len(variants))
	var errList []error
	for _, v := range variants {
		key, keyErr := cart.NewItemKey(product.ID(), v.Variant)
		if keyErr != nil {
			errList = append(errList, keyErr)
			continue
		}
		if v.Quantity < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"stock", fmt.Errorf("%s has negative quantity %d", key, v.Quantity)))
			continue
		}
		stock = append(stock, ports.StockLine{ItemKey: key.String(), Quantity: v.Quantity})
	}
	if err = errors.Join(errList...); err != nil {
		return UpsertProductCommand{}, err
	}

	return UpsertProductCommand{product: product, stock: stock, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertProductCommand) Validate() error {
	return c.guard.Validate(ErrUpsertProductCommandIsNotConstructed)
}

func (c UpsertProductCommand) Product() catalog.Product {
	return c.product
}

func (c UpsertProductCommand) Stock() []ports.StockLine {
	return c.stock
}
