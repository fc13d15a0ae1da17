// Package catalogrepo stores products in PostgreSQL.
package catalogrepo

import (
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID        string          `gorm:"type:varchar(128);primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Active    bool            `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID(),
		Name:   p.Name(),
		Price:  p.Price().Decimal(),
		Active: p.Active(),
	}
}

func toDomain(dto ProductDTO) (catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(dto.ID, dto.Name, price, dto.Active)
}
