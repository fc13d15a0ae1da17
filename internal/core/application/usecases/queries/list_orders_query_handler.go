package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	// -1 matches every status.
	statusFilter := -1
	if s := query.Status(); s != nil {
		statusFilter = int(*s)
	}

	var totalCount int64
	if err := db.Raw(`
		SELECT COUNT(*) FROM orders WHERE (? = -1 OR status = ?)
	`, statusFilter, statusFilter).Scan(&totalCount).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			o.id,
			o.status,
			COALESCE(SUM(l.quantity), 0) AS item_count,
			o.total,
			o.created_at,
			o.updated_at,
			o.version
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE (? = -1 OR o.status = ?)
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, statusFilter, statusFilter, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0, query.Limit())
	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			itemCount int
			total     decimal.Decimal
			createdAt time.Time
			updatedAt time.Time
			version   int
		)
		if err = rows.Scan(&id, &status, &itemCount, &total, &createdAt, &updatedAt, &version); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		amount, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return ListOrdersQueryResponse{}, moneyErr
		}

		summaries = append(summaries, OrderSummary{
			ID:        orderID,
			Status:    order.Status(status),
			ItemCount: itemCount,
			Total:     amount,
			CreatedAt: createdAt.UTC(),
			UpdatedAt: updatedAt.UTC(),
			Version:   version,
		})
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: summaries, TotalCount: totalCount}, nil
}
