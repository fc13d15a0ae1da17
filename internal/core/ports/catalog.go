package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/coupon"
)

// CouponRegistry looks coupons up by code.
type CouponRegistry interface {
	// Get returns the coupon for a normalized code or *errs.ObjectNotFoundError.
	Get(ctx context.Context, code string) (*coupon.Coupon, error)

	// Upsert creates or replaces the coupon with the same code.
	Upsert(ctx context.Context, c *coupon.Coupon) error
}

// ProductCatalog provides current product prices.
type ProductCatalog interface {
	// Get returns the product or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (catalog.Product, error)

	// Upsert creates or replaces the product with the same ID.
	Upsert(ctx context.Context, p catalog.Product) error
}
