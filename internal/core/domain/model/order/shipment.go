package order

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/pkg/errs"
)

// Shipment is the mutable fulfillment data of an order. Empty fields are unset.
type Shipment struct {
	Carrier        string
	TrackingNumber string
	TrackingURL    string
}

// ShippingUpdate carries the fields to change. Nil fields are left untouched; an empty
// string clears the field.
type ShippingUpdate struct {
	Carrier        *string
	TrackingNumber *string
	TrackingURL    *string
}

// IsEmpty reports whether the update changes nothing.
func (u ShippingUpdate) IsEmpty() bool {
	return u.Carrier == nil && u.TrackingNumber == nil && u.TrackingURL == nil
}

func validateTrackingURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trackingUrl", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingUrl", fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
