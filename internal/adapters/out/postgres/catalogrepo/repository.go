package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductCatalog using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Get(ctx context.Context, id string) (catalog.Product, error) {
	if id == "" {
		return catalog.Product{}, catalog.ErrIDIsRequired
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
		}
		return catalog.Product{}, err
	}

	return toDomain(dto)
}

// Upsert creates the product or replaces its name, price and active flag.
func (r *GormProductRepository) Upsert(ctx context.Context, p catalog.Product) error {
	if p.ID() == "" {
		return catalog.ErrIDIsRequired
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "active", "updated_at"}),
		}).
		Create(&dto).Error
}
