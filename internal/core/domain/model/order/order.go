package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsClosed is returned when shipping info is changed in a terminal status.
	ErrOrderIsClosed = errors.New("order is closed")

	// ErrLinesAreRequired is returned for an order without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")

	// ErrActorIsRequired is returned when a transition does not name who requested it.
	ErrActorIsRequired = errs.NewValueIsRequiredError("actor")
)

// Order is the aggregate root of a placed order.
//
// Invariants:
//   - at least one line; lines and totals never change after creation
//   - totals.Subtotal equals the sum of line totals and totals.Total is
//     max(0, subtotal + shipping - discount)
//   - status only moves along the transition table
//   - version grows by one with every effective mutation
type Order struct {
	id         kernel.UUID
	lines      []Line
	totals     Totals
	status     Status
	shipment   Shipment
	adminNotes string
	createdAt  time.Time
	updatedAt  time.Time
	history    []StatusChange

	// version is the current version; persistedVersion is the one the order was loaded
	// or created with, used to guard the next save.
	version          int
	persistedVersion int

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from frozen checkout data.
//
// Example:
//
//	line, _ := order.NewLine("dress-1", "M", "black", price, 2)
//	totals, _ := order.NewTotals(subtotal, discount, shipping, total, "INDIRIM10")
//	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{line}, totals, time.Now())
func NewOrder(id kernel.UUID, lines []Line, totals Totals, at time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: at,
		updatedAt: at,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLinesAndTotals(lines, totals),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage and re-checks every invariant, including
// that the recorded history ends in the current status.
func RestoreOrder(
	id kernel.UUID,
	lines []Line,
	totals Totals,
	status Status,
	shipment Shipment,
	adminNotes string,
	createdAt time.Time,
	updatedAt time.Time,
	history []StatusChange,
	version int,
) (*Order, error) {
	o := &Order{
		shipment:   shipment,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLinesAndTotals(lines, totals),
		o.setStatusAndHistory(status, history),
		o.setVersion(version),
		validateTrackingURL(shipment.TrackingURL),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Shipment() Shipment {
	return o.shipment
}

func (o *Order) AdminNotes() string {
	return o.adminNotes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// History returns a copy of the status changes, oldest first.
func (o *Order) History() []StatusChange {
	return slices.Clone(o.history)
}

func (o *Order) Version() int {
	return o.version
}

// PersistedVersion is the version the stored row carries while this instance is unsaved.
func (o *Order) PersistedVersion() int {
	return o.persistedVersion
}

// MarkPersisted records that the current version has been stored. Repositories call it
// after a successful write.
func (o *Order) MarkPersisted() {
	o.persistedVersion = o.version
}

// Transition moves the order to target.
//
// On success the status, the history, updatedAt and the version change together and
// the returned Change has Kind ChangeStatus. On failure the order is untouched and the
// error is *errs.IllegalTransitionError (or *errs.ValueIsInvalidError for an invalid
// target).
//
// Example:
//
//	change, err := o.Transition(order.AwaitingPayment, "admin@example.com", time.Now())
//	var illegal *errs.IllegalTransitionError
//	if errors.As(err, &illegal) {
//	    // show illegal.From and illegal.To
//	}
func (o *Order) Transition(target Status, actor string, at time.Time) (Change, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return Change{}, ErrActorIsRequired
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return Change{}, err
	}

	from := o.status
	o.status = next
	o.history = append(o.history, StatusChange{From: from, To: next, At: at, Actor: actor})
	o.touch(at)

	return Change{
		Kind:    ChangeStatus,
		OrderID: o.id,
		From:    from,
		To:      next,
		Fields:  []string{"status"},
		Actor:   actor,
		At:      at,
		Version: o.version,
	}, nil
}

// SetShippingInfo applies the non-nil fields of update. It never changes the status.
//
// Returns ErrOrderIsClosed in terminal statuses and *errs.ValueIsInvalidError for a
// tracking URL that is not an absolute http(s) URL. An update that leaves every field
// as it was returns an empty Change and does not bump the version.
func (o *Order) SetShippingInfo(update ShippingUpdate, at time.Time) (Change, error) {
	if o.status.IsTerminal() {
		return Change{}, fmt.Errorf("%w: status is %s", ErrOrderIsClosed, o.status)
	}

	carrier, number, trackingURL := trimmed(update.Carrier), trimmed(update.TrackingNumber), trimmed(update.TrackingURL)
	if trackingURL != nil {
		if err := validateTrackingURL(*trackingURL); err != nil {
			return Change{}, err
		}
	}

	next := o.shipment
	var fields []string
	if carrier != nil && *carrier != next.Carrier {
		next.Carrier = *carrier
		fields = append(fields, "carrier")
	}
	if number != nil && *number != next.TrackingNumber {
		next.TrackingNumber = *number
		fields = append(fields, "trackingNumber")
	}
	if trackingURL != nil && *trackingURL != next.TrackingURL {
		next.TrackingURL = *trackingURL
		fields = append(fields, "trackingUrl")
	}
	if len(fields) == 0 {
		return Change{}, nil
	}

	o.shipment = next
	o.touch(at)

	return Change{
		Kind:    ChangeShipping,
		OrderID: o.id,
		From:    o.status,
		To:      o.status,
		Fields:  fields,
		At:      at,
		Version: o.version,
	}, nil
}

// SetAdminNotes replaces the notes. It is allowed in every status, terminal ones
// included. Setting the current text again returns an empty Change and leaves the
// order untouched.
func (o *Order) SetAdminNotes(notes string, at time.Time) Change {
	if notes == o.adminNotes {
		return Change{}
	}

	o.adminNotes = notes
	o.touch(at)

	return Change{
		Kind:    ChangeNotes,
		OrderID: o.id,
		From:    o.status,
		To:      o.status,
		Fields:  []string{"adminNotes"},
		At:      at,
		Version: o.version,
	}
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLinesAndTotals(lines []Line, totals Totals) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	subtotal := kernel.ZeroMoney()
	for i, line := range lines {
		if line.productID == "" || line.quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line %d is not constructed", i))
		}
		subtotal = subtotal.Add(line.LineTotal())
	}

	if !subtotal.Equal(totals.subtotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal", fmt.Errorf("%s does not match line totals %s", totals.subtotal, subtotal))
	}
	if _, err := NewTotals(totals.subtotal, totals.discount, totals.shipping, totals.total, totals.couponCode); err != nil {
		return err
	}

	o.lines = slices.Clone(lines)
	o.totals = totals
	return nil
}

func (o *Order) setStatusAndHistory(status Status, history []StatusChange) error {
	if err := status.Validate(); err != nil {
		return err
	}

	current := Pending
	for i, change := range history {
		if change.From != current || !change.From.CanTransitionTo(change.To) {
			return errs.NewValueIsInvalidErrorWithCause("history", fmt.Errorf(
				"entry %d %s -> %s does not follow %s", i, change.From, change.To, current))
		}
		current = change.To
	}
	if current != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s does not match history ending in %s", status, current))
	}

	o.status = status
	o.history = slices.Clone(history)
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	o.version = version
	o.persistedVersion = version
	return nil
}
