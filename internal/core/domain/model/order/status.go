package order

import (
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
// Transitions:
//
//	Pending ──> AwaitingPayment ──> Paid ──> Confirmed ──> Shipped ──> Delivered
//	   │              │              │           │
//	   ├──> Paid      ├──> Failed    └───────────┴──> Cancelled
//	   ├──> Failed    └──> Cancelled
//	   └──> Cancelled
//
// Delivered, Failed and Cancelled are terminal.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota
	Pending
	AwaitingPayment
	Paid
	Confirmed
	Shipped
	Delivered
	Failed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Pending:         "PENDING",
		AwaitingPayment: "AWAITING_PAYMENT",
		Paid:            "PAID",
		Confirmed:       "CONFIRMED",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Failed:          "FAILED",
		Cancelled:       "CANCELLED",
	}
}

// getTransitions is the single authoritative transition table. A status that is valid
// but missing as a key has no successors.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:         {AwaitingPayment, Paid, Failed, Cancelled},
		AwaitingPayment: {Paid, Failed, Cancelled},
		Paid:            {Confirmed, Cancelled},
		Confirmed:       {Shipped, Cancelled},
		Shipped:         {Delivered},
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, AwaitingPayment, Paid, Confirmed, Shipped, Delivered, Failed, Cancelled}
}

// ParseStatus accepts exactly the upper-case names, e.g. "AWAITING_PAYMENT".
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if !slices.Contains(AllStatuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// Successors returns the legal targets of s in table order.
func (s Status) Successors() []Status {
	return slices.Clone(getTransitions()[s])
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(getTransitions()[s], target)
}

// TransitionTo returns target when it is a legal successor of s.
//
// Returns:
//   - *errs.ValueIsInvalidError when either status is not a valid value
//   - *errs.IllegalTransitionError naming both statuses otherwise
//
// The target is never coerced to a nearby legal status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s, target)
	}
	return target, nil
}
