package cart

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

const keySeparator = ":"

var ErrProductIDIsRequired = errs.NewValueIsRequiredError("productID")

// Variant holds the optional size and color of a product.
type Variant struct {
	Size  string
	Color string
}

// ItemKey identifies a line item: one product in one variant. It is comparable and its
// text form "productId:size:color" is used in URLs and stock keys.
type ItemKey struct {
	productID string
	variant   Variant
}

// NewItemKey validates the parts of a key. None of them may contain ':'.
func NewItemKey(productID string, variant Variant) (ItemKey, error) {
	productID = strings.TrimSpace(productID)
	variant = Variant{Size: strings.TrimSpace(variant.Size), Color: strings.TrimSpace(variant.Color)}

	if productID == "" {
		return ItemKey{}, ErrProductIDIsRequired
	}

	if err := errors.Join(
		checkKeyPart("productID", productID),
		checkKeyPart("size", variant.Size),
		checkKeyPart("color", variant.Color),
	); err != nil {
		return ItemKey{}, err
	}

	return ItemKey{productID: productID, variant: variant}, nil
}

// ParseItemKey parses "productId", "productId:size" or "productId:size:color".
func ParseItemKey(s string) (ItemKey, error) {
	parts := strings.Split(s, keySeparator)
	if len(parts) > 3 {
		return ItemKey{}, errs.NewValueIsInvalidErrorWithCause(
			"itemKey", fmt.Errorf("%q has more than 3 parts", s))
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return NewItemKey(parts[0], Variant{Size: parts[1], Color: parts[2]})
}

func (k ItemKey) ProductID() string {
	return k.productID
}

func (k ItemKey) Variant() Variant {
	return k.variant
}

// Validate rejects the zero key.
func (k ItemKey) Validate() error {
	if k.productID == "" {
		return ErrProductIDIsRequired
	}
	return nil
}

func (k ItemKey) String() string {
	return k.productID + keySeparator + k.variant.Size + keySeparator + k.variant.Color
}

func checkKeyPart(name, part string) error {
	if strings.Contains(part, keySeparator) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q must not contain %q", part, keySeparator))
	}
	return nil
}
