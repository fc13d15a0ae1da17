// Package services holds the pure pricing functions of the storefront and the
// PricingEngine that combines them into a Quote.
//
// Nothing here performs I/O. Violations such as an invalid coupon are returned as values
// so a caller can always render a complete price breakdown.
package services
