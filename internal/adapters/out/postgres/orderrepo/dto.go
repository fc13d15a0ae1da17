// Package orderrepo persists order aggregates in PostgreSQL through GORM. An order is
// stored as one orders row plus its immutable lines and its append-only status history.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version guards updates.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Status         int             `gorm:"type:smallint;not null;index:idx_orders_status_created_at,priority:1"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Shipping       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CouponCode     string          `gorm:"type:varchar(64);not null;default:''"`
	Carrier        string          `gorm:"type:varchar(255);not null;default:''"`
	TrackingNumber string          `gorm:"type:varchar(255);not null;default:''"`
	TrackingURL    string          `gorm:"type:text;not null;default:''"`
	AdminNotes     string          `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime:false;index:idx_orders_status_created_at,priority:2"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version        int             `gorm:"not null"`

	Lines   []LineDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one order line. Position keeps the checkout order of the cart.
type LineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID string          `gorm:"type:varchar(128);not null;index"`
	Size      string          `gorm:"type:varchar(32);not null;default:''"`
	Color     string          `gorm:"type:varchar(64);not null;default:''"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// StatusChangeDTO is one history entry. Seq is its index in the history.
type StatusChangeDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	FromStatus int       `gorm:"type:smallint;not null"`
	ToStatus   int       `gorm:"type:smallint;not null"`
	Actor      string    `gorm:"type:varchar(255);not null"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	totals := o.Totals()
	shipment := o.Shipment()

	lines := make([]LineDTO, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   id,
			Position:  i,
			ProductID: line.ProductID(),
			Size:      line.Size(),
			Color:     line.Color(),
			UnitPrice: line.UnitPrice().Decimal(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:             id,
		Status:         int(o.Status()),
		Subtotal:       totals.Subtotal().Decimal(),
		Discount:       totals.Discount().Decimal(),
		Shipping:       totals.Shipping().Decimal(),
		Total:          totals.Total().Decimal(),
		CouponCode:     totals.CouponCode(),
		Carrier:        shipment.Carrier,
		TrackingNumber: shipment.TrackingNumber,
		TrackingURL:    shipment.TrackingURL,
		AdminNotes:     o.AdminNotes(),
		CreatedAt:      o.CreatedAt().UTC(),
		UpdatedAt:      o.UpdatedAt().UTC(),
		Version:        o.Version(),
		Lines:          lines,
		History:        historyFromDomain(id, o.History()),
	}
}

func historyFromDomain(id uuid.UUID, history []order.StatusChange) []StatusChangeDTO {
	dtos := make([]StatusChangeDTO, 0, len(history))
	for i, change := range history {
		dtos = append(dtos, StatusChangeDTO{
			OrderID:    id,
			Seq:        i,
			FromStatus: int(change.From),
			ToStatus:   int(change.To),
			Actor:      change.Actor,
			ChangedAt:  change.At.UTC(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-checks every invariant.
// Lines and History must be sorted by Position and Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.NewLine(l.ProductID, l.Size, l.Color, price, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, h := range dto.History {
		history = append(history, order.StatusChange{
			From:  order.Status(h.FromStatus),
			To:    order.Status(h.ToStatus),
			At:    h.ChangedAt.UTC(),
			Actor: h.Actor,
		})
	}

	shipment := order.Shipment{
		Carrier:        dto.Carrier,
		TrackingNumber: dto.TrackingNumber,
		TrackingURL:    dto.TrackingURL,
	}

	return order.RestoreOrder(id, lines, totals, order.Status(dto.Status), shipment, dto.AdminNotes,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), history, dto.Version)
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, d := range []decimal.Decimal{dto.Subtotal, dto.Discount, dto.Shipping, dto.Total} {
		m, err := kernel.NewMoney(d)
		if err != nil {
			return order.Totals{}, err
		}
		amounts = append(amounts, m)
	}
	return order.NewTotals(amounts[0], amounts[1], amounts[2], amounts[3], dto.CouponCode)
}
