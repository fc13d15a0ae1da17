package coupon

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Kind tells how a coupon's value is interpreted.
type Kind int

const (
	KindUnknown Kind = iota

	// Percentage coupons take value percent of the subtotal.
	Percentage

	// Fixed coupons take value currency units off the subtotal.
	Fixed
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		Percentage:  "percentage",
		Fixed:       "fixed",
	}
}

// ParseKind accepts "percentage" or "fixed" in any case.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range getKindStrings() {
		if kind != KindUnknown && name == normalized {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a coupon kind", s))
}

func (k Kind) Validate() error {
	if k != Percentage && k != Fixed {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a coupon kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
