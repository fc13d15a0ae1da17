package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// ErrOrderAlreadyExists is returned by Add for an ID that is already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its lines and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, aggregate.ID())
		}
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns only when the stored version still equals
// aggregate.PersistedVersion(), then appends history entries that are not stored yet.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.PersistedVersion()).
		Updates(map[string]any{
			"status":          dto.Status,
			"carrier":         dto.Carrier,
			"tracking_number": dto.TrackingNumber,
			"tracking_url":    dto.TrackingURL,
			"admin_notes":     dto.AdminNotes,
			"updated_at":      dto.UpdatedAt,
			"version":         dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.updateConflict(ctx, aggregate)
	}

	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// updateConflict tells a missing order from a concurrent write.
func (r *GormOrderRepository) updateConflict(ctx context.Context, aggregate *order.Order) error {
	var current struct{ Version int }
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("version").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewStaleWriteError("order", aggregate.ID().String(), aggregate.PersistedVersion(), current.Version)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetUnpaidCreatedBefore returns Pending and AwaitingPayment orders created before the
// given time, oldest first.
func (r *GormOrderRepository) GetUnpaidCreatedBefore(
	ctx context.Context,
	before time.Time,
	limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).
		Where("status IN ? AND created_at < ?", []int{int(order.Pending), int(order.AwaitingPayment)}, before.UTC()).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}
