package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetUnpaidCreatedBefore(
	ctx context.Context,
	before time.Time,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, before, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) CouponRegistry() ports.CouponRegistry {
	args := m.Called()
	return args.Get(0).(ports.CouponRegistry)
}

func (m *MockCatalogUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockCouponRegistry struct{ mock.Mock }

func (m *MockCouponRegistry) Get(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*coupon.Coupon)
	return c, args.Error(1)
}

func (m *MockCouponRegistry) Upsert(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductCatalog) Upsert(ctx context.Context, p catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, cartID string) (cart.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, cartID string, c cart.Cart) error {
	args := m.Called(ctx, cartID, c)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// Update goes through Get and Save so tests keep asserting on the stored cart.
func (m *MockCartRepository) Update(
	ctx context.Context,
	cartID string,
	change func(cart.Cart) (cart.Cart, error),
) (cart.Cart, error) {
	current, err := m.Get(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	next, err := change(current)
	if err != nil {
		return cart.Cart{}, err
	}
	if err = m.Save(ctx, cartID, next); err != nil {
		return cart.Cart{}, err
	}
	return next, nil
}

type MockStockService struct{ mock.Mock }

func (m *MockStockService) Available(ctx context.Context, itemKey string) (int, error) {
	args := m.Called(ctx, itemKey)
	return args.Int(0), args.Error(1)
}

func (m *MockStockService) Reserve(ctx context.Context, orderID kernel.UUID, lines []ports.StockLine) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *MockStockService) Release(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockStockService) SetStock(ctx context.Context, itemKey string, quantity int) error {
	args := m.Called(ctx, itemKey, quantity)
	return args.Error(0)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, id, price string, active bool) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, id+" name", money(t, price), active)
	require.NoError(t, err)
	return p
}

// newPendingOrder builds a stored-looking order at version 1.
func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine("dress-1", "M", "black", money(t, "800"), 2)
	require.NoError(t, err)
	totals, err := order.NewTotals(money(t, "1600"), money(t, "0"), money(t, "50"), money(t, "1650"), "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{line}, totals, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return o
}

// orderUoW wires a factory that hands out one unit of work over repo.
func orderUoW(repo ports.OrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo).Maybe()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return factory, uow
}
