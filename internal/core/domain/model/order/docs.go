// Package order implements the Order aggregate of the storefront and its fulfillment
// state machine.
//
// An order is created once, in the Pending status, from a priced checkout. Its lines and
// totals are frozen at that moment. Afterwards only three operations mutate it:
//   - Transition moves the status along the single transition table in status.go
//   - SetShippingInfo records carrier, tracking number and tracking URL while the order is open
//   - SetAdminNotes replaces the free-form notes in any status
//
// Each operation returns a Change describing what happened so the caller can decide
// whether to notify anybody. Orders are never deleted; Cancelled is a terminal status.
//
// Every successful mutation bumps the version. Persistence adapters use the version seen
// at load time (PersistedVersion) to reject concurrent writers.
package order
