package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.Require().NoError(postgres_adapter.Migrate(db), "migrations must be repeatable")

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, order_status_changes, coupons, products").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAndTracks() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs()
	suite.Require().Len(tracked, 1)
	suite.True(tracked[0].IsEqual(o.ID()))

	got, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEveryRepository() {
	ctx := context.Background()
	o := suite.newOrder()
	product := suite.newProduct("dress-1", "800")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ProductCatalog().Upsert(ctx, product))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs())

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.factory.Create().ProductCatalog().Get(ctx, "dress-1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedWritesAreIsolated() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCouponRegistry_UpsertAndGet() {
	ctx := context.Background()
	limit := suite.money("50")
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	c, err := coupon.NewCoupon("indirim10", coupon.Percentage, decimal.RequireFromString("12.5"), true, coupon.Terms{
		Cap:         &limit,
		MinSubtotal: suite.money("100"),
		ValidFrom:   &from,
		ValidUntil:  &until,
		ProductIDs:  []string{"dress-1", "coat-1"},
	})
	suite.Require().NoError(err)

	registry := suite.factory.Create().CouponRegistry()
	suite.Require().NoError(registry.Upsert(ctx, c))

	got, err := registry.Get(ctx, " Indirim10 ")
	suite.Require().NoError(err)
	suite.Equal("INDIRIM10", got.Code())
	suite.Equal(coupon.Percentage, got.Kind())
	suite.True(got.Value().Equal(decimal.RequireFromString("12.5")))
	suite.True(got.Active())
	terms := got.Terms()
	suite.Require().NotNil(terms.Cap)
	suite.Equal("50.00", terms.Cap.String())
	suite.Equal("100.00", terms.MinSubtotal.String())
	suite.True(terms.ValidFrom.Equal(from))
	suite.True(terms.ValidUntil.Equal(until))
	suite.Equal([]string{"dress-1", "coat-1"}, terms.ProductIDs)

	replacement, err := coupon.NewCoupon("INDIRIM10", coupon.Fixed, decimal.NewFromInt(75), false, coupon.Terms{})
	suite.Require().NoError(err)
	suite.Require().NoError(registry.Upsert(ctx, replacement))

	got, err = registry.Get(ctx, "INDIRIM10")
	suite.Require().NoError(err)
	suite.Equal(coupon.Fixed, got.Kind())
	suite.False(got.Active())
	suite.Nil(got.Terms().Cap)
	suite.Nil(got.Terms().ValidFrom)
	suite.Empty(got.Terms().ProductIDs)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCouponRegistry_UnknownCode_ReturnsNotFound() {
	_, err := suite.factory.Create().CouponRegistry().Get(context.Background(), "NOPE")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProductCatalog_UpsertAndGet() {
	ctx := context.Background()
	products := suite.factory.Create().ProductCatalog()

	suite.Require().NoError(products.Upsert(ctx, suite.newProduct("dress-1", "800")))
	changed, err := catalog.NewProduct("dress-1", "Linen dress", suite.money("750.50"), false)
	suite.Require().NoError(err)
	suite.Require().NoError(products.Upsert(ctx, changed))

	got, err := products.Get(ctx, "dress-1")
	suite.Require().NoError(err)
	suite.Equal("Linen dress", got.Name())
	suite.Equal("750.50", got.Price().String())
	suite.False(got.Active())
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	line, err := order.NewLine("dress-1", "M", "black", suite.money("800"), 2)
	suite.Require().NoError(err)
	totals, err := order.NewTotals(suite.money("1600"), suite.money("0"), suite.money("50"), suite.money("1650"), "")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.Line{line}, totals, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct(id, price string) catalog.Product {
	p, err := catalog.NewProduct(id, id+" name", suite.money(price), true)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
