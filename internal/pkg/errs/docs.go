// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the commerce kinds callers render distinct messages for:
//   - InvalidQuantityError: a requested quantity below 1
//   - StockExceededError: a quantity above available stock, with the permissible maximum
//   - CouponInvalidError: a coupon that is unknown, expired or not applicable
//   - IllegalTransitionError: an order status change outside the transition table
//   - StaleWriteError: an update based on an outdated order version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on every kind
package errs
