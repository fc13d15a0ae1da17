package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order with three plain SQL statements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	Status         int
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Shipping       decimal.Decimal
	Total          decimal.Decimal
	CouponCode     string
	Carrier        string
	TrackingNumber string
	TrackingURL    string
	AdminNotes     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}

type lineRow struct {
	ProductID string
	Size      string
	Color     string
	UnitPrice decimal.Decimal
	Quantity  int
}

type historyRow struct {
	FromStatus int
	ToStatus   int
	Actor      string
	ChangedAt  time.Time
}

// Handle returns *errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	id := query.OrderID()
	db := h.db.WithContext(ctx)

	var rows []orderRow
	if err := db.Raw(`
		SELECT
			status, subtotal, discount, shipping, total, coupon_code,
			carrier, tracking_number, tracking_url, admin_notes,
			created_at, updated_at, version
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Scan(&rows).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())
	}
	row := rows[0]

	var lines []lineRow
	if err := db.Raw(`
		SELECT product_id, size, color, unit_price, quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, id.Bytes()).Scan(&lines).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	var history []historyRow
	if err := db.Raw(`
		SELECT from_status, to_status, actor, changed_at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY seq
	`, id.Bytes()).Scan(&history).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:         id,
		Status:     order.Status(row.Status),
		CouponCode: row.CouponCode,
		Shipment: order.Shipment{
			Carrier:        row.Carrier,
			TrackingNumber: row.TrackingNumber,
			TrackingURL:    row.TrackingURL,
		},
		AdminNotes: row.AdminNotes,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
		Version:    row.Version,
		Lines:      make([]OrderLineView, 0, len(lines)),
		History:    make([]StatusChangeView, 0, len(history)),
	}

	var err error
	if resp.Subtotal, err = kernel.NewMoney(row.Subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Discount, err = kernel.NewMoney(row.Discount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Shipping, err = kernel.NewMoney(row.Shipping); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(row.Total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	for _, l := range lines {
		line, lineErr := lineView(l)
		if lineErr != nil {
			return GetOrderQueryResponse{}, lineErr
		}
		resp.Lines = append(resp.Lines, line)
	}

	for _, hr := range history {
		resp.History = append(resp.History, StatusChangeView{
			From:  order.Status(hr.FromStatus),
			To:    order.Status(hr.ToStatus),
			Actor: hr.Actor,
			At:    hr.ChangedAt.UTC(),
		})
	}

	return resp, nil
}

func lineView(l lineRow) (OrderLineView, error) {
	price, err := kernel.NewMoney(l.UnitPrice)
	if err != nil {
		return OrderLineView{}, err
	}
	line, err := order.NewLine(l.ProductID, l.Size, l.Color, price, l.Quantity)
	if err != nil {
		return OrderLineView{}, err
	}

	return OrderLineView{
		ItemKey:   line.ItemKey(),
		ProductID: line.ProductID(),
		Size:      line.Size(),
		Color:     line.Color(),
		UnitPrice: line.UnitPrice(),
		Quantity:  line.Quantity(),
		LineTotal: line.LineTotal(),
	}, nil
}
