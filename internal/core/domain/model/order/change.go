package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ChangeKind names the operation that produced a Change.
type ChangeKind string

const (
	ChangeNone     ChangeKind = ""
	ChangeStatus   ChangeKind = "status"
	ChangeShipping ChangeKind = "shipping"
	ChangeNotes    ChangeKind = "notes"
)

// Change describes a mutation applied to an order. The zero value means nothing changed.
type Change struct {
	Kind    ChangeKind
	OrderID kernel.UUID
	From    Status
	To      Status
	Fields  []string
	Actor   string
	At      time.Time
	Version int
}

func (c Change) IsEmpty() bool {
	return c.Kind == ChangeNone
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	From  Status
	To    Status
	At    time.Time
	Actor string
}
