package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CheckoutIdempotencyTTL is how long a checkout key stays claimed.
const CheckoutIdempotencyTTL = 24 * time.Hour

var (
	ErrCartIsEmpty       = errors.New("cart is empty")
	ErrPriceChanged      = errors.New("price changed")
	ErrDuplicateCheckout = errors.New("duplicate checkout")
)

// CheckoutResult is the placed order and the prices frozen into it.
type CheckoutResult struct {
	OrderID kernel.UUID
	Quote   services.Quote
}

// CheckoutCommandHandler places an order from a cart.
//
// Steps, each of which stops the checkout on failure:
//  1. claim the idempotency key (ErrDuplicateCheckout when taken)
//  2. load the cart (ErrCartIsEmpty) and price it; a coupon that does not apply is
//     dropped and reported in the quote, not fatal
//  3. compare with the expected total (ErrPriceChanged)
//  4. reserve stock for all lines at once (*errs.StockExceededError on a shortfall)
//  5. store the Pending order in a unit of work; the reservation is released when this fails
//  6. clear the cart
//
// On any failure the idempotency key is released so the client can retry.
type CheckoutCommandHandler struct {
	uowFactory  OrderUoWFactory
	carts       ports.CartRepository
	coupons     ports.CouponRegistry
	stock       ports.StockService
	idempotency ports.IdempotencyStore
	engine      services.PricingEngine
	logger      *slog.Logger
	now         func() time.Time
}

// NewCheckoutCommandHandler creates the checkout handler.
//
// Parameters:
//   - uowFactory: opens the unit of work the Pending order is stored in
//   - carts: source of the cart, cleared after the order is placed
//   - coupons: resolves the cart's coupon code; unknown codes price without a discount
//   - stock: reserves units for the order and releases them when storing it fails
//   - idempotency: claims one key per checkout attempt for CheckoutIdempotencyTTL
//   - engine: prices the cart
//   - logger: tagged with component "checkout"
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, carts, coupons, stock, keys, engine, logger)
//	cmd, _ := NewCheckoutCommand("session-42", requestKey, nil)
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDuplicateCheckout) {
//	    // The same attempt already placed an order
//	}
//	fmt.Printf("order %s placed for %s", result.OrderID, result.Quote.Total)
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartRepository,
	coupons ports.CouponRegistry,
	stock ports.StockService,
	idempotency ports.IdempotencyStore,
	engine services.PricingEngine,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		carts:       carts,
		coupons:     coupons,
		stock:       stock,
		idempotency: idempotency,
		engine:      engine,
		logger:      logger.With("component", "checkout"),
		now:         time.Now,
	}
}

func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (result CheckoutResult, err error) {
	if err = cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	idempotencyKey := "checkout:" + cmd.CartID() + ":" + cmd.IdempotencyKey()
	claimed, err := h.idempotency.Claim(ctx, idempotencyKey, CheckoutIdempotencyTTL)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !claimed {
		return CheckoutResult{}, ErrDuplicateCheckout
	}
	defer func() {
		if err != nil {
			if forgetErr := h.idempotency.Forget(ctx, idempotencyKey); forgetErr != nil {
				h.logger.Warn("failed to release idempotency key", "key", idempotencyKey, "error", forgetErr)
			}
		}
	}()

	current, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if current.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	c, err := h.findCoupon(ctx, current.CouponCode())
	if err != nil {
		return CheckoutResult{}, err
	}

	now := h.now()
	quote := h.engine.Quote(current, c, now)
	if expected := cmd.ExpectedTotal(); expected != nil && !expected.Equal(quote.Total) {
		return CheckoutResult{}, fmt.Errorf("%w: expected %s, total is %s", ErrPriceChanged, expected, quote.Total)
	}

	o, err := newPendingOrder(quote, now)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = h.stock.Reserve(ctx, o.ID(), stockLines(quote.Items)); err != nil {
		return CheckoutResult{}, err
	}

	if err = h.persist(ctx, o); err != nil {
		if releaseErr := h.stock.Release(ctx, o.ID()); releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release stock of order %s: %w", o.ID(), releaseErr))
		}
		return CheckoutResult{}, err
	}

	// The order is placed at this point; a cart that could not be cleared expires with its TTL.
	if clearErr := h.carts.Delete(ctx, cmd.CartID()); clearErr != nil {
		h.logger.Warn("failed to clear cart", "cartId", cmd.CartID(), "orderId", o.ID().String(), "error", clearErr)
	}

	h.logger.Info("order placed",
		"orderId", o.ID().String(),
		"total", quote.Total.String(),
		"coupon", quote.CouponCode,
	)

	return CheckoutResult{OrderID: o.ID(), Quote: quote}, nil
}

func (h *CheckoutCommandHandler) findCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	if code == "" {
		return nil, nil
	}
	c, err := h.coupons.Get(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return c, err
}

func (h *CheckoutCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func newPendingOrder(quote services.Quote, at time.Time) (*order.Order, error) {
	lines := make([]order.Line, 0, len(quote.Items))
	for _, item := range quote.Items {
		line, err := order.NewLine(item.ProductID(), item.Variant().Size, item.Variant().Color,
			item.UnitPrice(), item.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	totals, err := order.NewTotals(quote.Subtotal, quote.Discount, quote.Shipping, quote.Total, quote.CouponCode)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), lines, totals, at)
}

func stockLines(items []cart.LineItem) []ports.StockLine {
	lines := make([]ports.StockLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ports.StockLine{ItemKey: item.Key().String(), Quantity: item.Quantity()})
	}
	return lines
}
