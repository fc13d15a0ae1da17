package couponrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCouponRepository implements ports.CouponRegistry using GORM.
type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// Get looks a coupon up by code in any case.
func (r *GormCouponRepository) Get(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized := coupon.NormalizeCode(code)
	if normalized == "" {
		return nil, coupon.ErrCodeIsRequired
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert replaces every column of an existing coupon with the same code.
func (r *GormCouponRepository) Upsert(ctx context.Context, c *coupon.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
