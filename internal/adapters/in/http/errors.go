package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in the "kind" field of every error body.
const (
	KindInvalidRequest    = "invalid_request"
	KindInvalidQuantity   = "invalid_quantity"
	KindUnauthorized      = "unauthorized"
	KindForbidden         = "forbidden"
	KindNotFound          = "not_found"
	KindStockExceeded     = "stock_exceeded"
	KindCouponInvalid     = "coupon_invalid"
	KindIllegalTransition = "illegal_transition"
	KindStaleWrite        = "stale_write"
	KindOrderClosed       = "order_closed"
	KindNotForSale        = "not_for_sale"
	KindCartEmpty         = "cart_empty"
	KindPriceChanged      = "price_changed"
	KindDuplicateCheckout = "duplicate_checkout"
	KindInternal          = "internal"
)

const internalMessage = "something went wrong"

// problem maps an error returned by a use case to a status and body. Unknown errors
// become a generic 500 without details.
func problem(err error) (int, servers.Error) {
	var (
		stockErr  *errs.StockExceededError
		couponErr *errs.CouponInvalidError
	)

	switch {
	case errors.As(err, &stockErr):
		body := newError(http.StatusConflict, KindStockExceeded, err)
		body.MaxQuantity = &stockErr.Max
		return http.StatusConflict, body
	case errors.As(err, &couponErr):
		body := newError(http.StatusUnprocessableEntity, KindCouponInvalid, err)
		reason := string(couponErr.Reason)
		body.Reason = &reason
		return http.StatusUnprocessableEntity, body
	case errors.Is(err, errs.ErrIllegalTransition):
		return http.StatusConflict, newError(http.StatusConflict, KindIllegalTransition, err)
	case errors.Is(err, errs.ErrStaleWrite):
		return http.StatusPreconditionFailed, newError(http.StatusPreconditionFailed, KindStaleWrite, err)
	case errors.Is(err, order.ErrOrderIsClosed):
		return http.StatusConflict, newError(http.StatusConflict, KindOrderClosed, err)
	case errors.Is(err, catalog.ErrProductIsNotForSale):
		return http.StatusUnprocessableEntity, newError(http.StatusUnprocessableEntity, KindNotForSale, err)
	case errors.Is(err, commands.ErrCartIsEmpty):
		return http.StatusUnprocessableEntity, newError(http.StatusUnprocessableEntity, KindCartEmpty, err)
	case errors.Is(err, commands.ErrPriceChanged):
		return http.StatusPreconditionFailed, newError(http.StatusPreconditionFailed, KindPriceChanged, err)
	case errors.Is(err, commands.ErrDuplicateCheckout):
		return http.StatusConflict, newError(http.StatusConflict, KindDuplicateCheckout, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, newError(http.StatusNotFound, KindNotFound, err)
	case errors.Is(err, errs.ErrInvalidQuantity):
		return http.StatusBadRequest, newError(http.StatusBadRequest, KindInvalidQuantity, err)
	case isValidationError(err):
		return http.StatusBadRequest, newError(http.StatusBadRequest, KindInvalidRequest, err)
	default:
		return http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: internalMessage,
		}
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
		commands.ErrCartIDIsRequired,
		commands.ErrIdempotencyKeyIsRequired,
		commands.ErrExpectedVersionIsInvalid,
		commands.ErrShippingUpdateIsEmpty,
		commands.ErrActorIsRequired,
		queries.ErrCartIDIsRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func newError(code int, kind string, err error) servers.Error {
	return servers.Error{Code: code, Kind: kind, Message: err.Error()}
}

// errorBody renders a use case error for embedding in a successful response, e.g. the
// coupon that was remembered but does not apply.
func errorBody(err error) *servers.Error {
	if err == nil {
		return nil
	}
	_, body := problem(err)
	return &body
}

// HTTPErrorHandler renders errors that never reached a handler (routing, binding and
// middleware failures) in the same shape as use case errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		status, body := problem(err)
		_ = c.JSON(status, body)
		return
	}

	kind := KindInvalidRequest
	switch he.Code {
	case http.StatusUnauthorized:
		kind = KindUnauthorized
	case http.StatusForbidden:
		kind = KindForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		kind = KindNotFound
	}
	if he.Code >= http.StatusInternalServerError {
		kind = KindInternal
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
		message = m
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, servers.Error{Code: he.Code, Kind: kind, Message: message})
}
