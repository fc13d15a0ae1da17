// Package couponrepo stores coupon definitions in PostgreSQL.
package couponrepo

import (
	"time"

	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CouponDTO is the coupons row. A NULL cap means uncapped; an empty product_ids array
// means the coupon applies to any product.
type CouponDTO struct {
	Code        string           `gorm:"type:varchar(64);primaryKey"`
	Kind        string           `gorm:"type:varchar(16);not null"`
	Value       decimal.Decimal  `gorm:"type:numeric(12,4);not null"`
	Active      bool             `gorm:"not null"`
	Cap         *decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinSubtotal decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	ProductIDs  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

func (CouponDTO) TableName() string {
	return "coupons"
}

func fromDomain(c *coupon.Coupon) CouponDTO {
	terms := c.Terms()

	var limit *decimal.Decimal
	if terms.Cap != nil {
		d := terms.Cap.Decimal()
		limit = &d
	}

	productIDs := pq.StringArray(terms.ProductIDs)
	if productIDs == nil {
		productIDs = pq.StringArray{}
	}

	return CouponDTO{
		Code:        c.Code(),
		Kind:        c.Kind().String(),
		Value:       c.Value(),
		Active:      c.Active(),
		Cap:         limit,
		MinSubtotal: terms.MinSubtotal.Decimal(),
		ValidFrom:   utc(terms.ValidFrom),
		ValidUntil:  utc(terms.ValidUntil),
		ProductIDs:  productIDs,
	}
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	kind, err := coupon.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	minSubtotal, err := kernel.NewMoney(dto.MinSubtotal)
	if err != nil {
		return nil, err
	}

	terms := coupon.Terms{
		MinSubtotal: minSubtotal,
		ValidFrom:   utc(dto.ValidFrom),
		ValidUntil:  utc(dto.ValidUntil),
		ProductIDs:  []string(dto.ProductIDs),
	}
	if dto.Cap != nil {
		limit, capErr := kernel.NewMoney(*dto.Cap)
		if capErr != nil {
			return nil, capErr
		}
		terms.Cap = &limit
	}

	return coupon.NewCoupon(dto.Code, kind, dto.Value, dto.Active, terms)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
