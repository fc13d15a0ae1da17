// Package kernel provides the value objects shared by the storefront domain model.
//
// The package includes:
//   - UUID: identifiers for aggregates, rejecting the nil UUID
//   - Money: non-negative decimal amounts exact to the currency minor unit
//
// Both are immutable and safe for concurrent use. Their zero values are meaningful only
// where documented: the zero Money is a valid amount of 0, the zero UUID is invalid.
package kernel
