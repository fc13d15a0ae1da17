package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// UpsertProductCommandHandler stores the product, then overwrites the stock of each
// listed variant.
type UpsertProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	stock      ports.StockService
}

func NewUpsertProductCommandHandler(uowFactory CatalogUoWFactory, stock ports.StockService) UpsertProductCommandHandler {
	return UpsertProductCommandHandler{uowFactory: uowFactory, stock: stock}
}

func (h *UpsertProductCommandHandler) Handle(ctx context.Context, cmd UpsertProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductCatalog().Upsert(ctx, cmd.Product()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, line := range cmd.Stock() {
		if err := h.stock.SetStock(ctx, line.ItemKey, line.Quantity); err != nil {
			return err
		}
	}

	return nil
}
