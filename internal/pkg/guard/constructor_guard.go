// Package guard detects value objects and commands that were not created through their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is invalid. Constructors set it
// with NewConstructorGuard; a zero-value struct keeps it unset and fails Validate.
//
//	type ItemKey struct {
//	    productID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (k ItemKey) Validate() error {
//	    return k.guard.Validate(ErrItemKeyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
