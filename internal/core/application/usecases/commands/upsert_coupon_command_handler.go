package commands

import (
	"context"
)

type UpsertCouponCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpsertCouponCommandHandler creates a handler that stores coupons transactionally.
func NewUpsertCouponCommandHandler(uowFactory CatalogUoWFactory) UpsertCouponCommandHandler {
	return UpsertCouponCommandHandler{uowFactory: uowFactory}
}

func (h *UpsertCouponCommandHandler) Handle(ctx context.Context, cmd UpsertCouponCommand) error {
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

	if err := uow.CouponRegistry().Upsert(ctx, cmd.Coupon()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
