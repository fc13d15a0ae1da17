package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/seed"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/couponrepo"
	"storefront/internal/adapters/out/redisstore"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carts      *redisstore.CartStore
	stock      *redisstore.StockService
	idempotent *redisstore.IdempotencyStore
	engine     services.PricingEngine
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:      redisstore.NewCartStore(redisClient, config.CartTTL),
		stock:      redisstore.NewStockService(redisClient),
		idempotent: redisstore.NewIdempotencyStore(redisClient),
		engine:     services.NewPricingEngine(config.ShippingRules()),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, catalogrepo.NewGormProductRepository(c.gormDB), c.stock)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.carts, c.stock)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateApplyCartCouponCommandHandler() commands.ApplyCartCouponCommandHandler {
	return commands.NewApplyCartCouponCommandHandler(c.carts, couponrepo.NewGormCouponRepository(c.gormDB))
}

func (c *CompositionRoot) CreateRemoveCartCouponCommandHandler() commands.RemoveCartCouponCommandHandler {
	return commands.NewRemoveCartCouponCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		c.orderUoWFactory(),
		c.carts,
		couponrepo.NewGormCouponRepository(c.gormDB),
		c.stock,
		c.idempotent,
		c.engine,
		c.logger,
	)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory(), c.stock, c.logger)
}

func (c *CompositionRoot) CreateSetOrderShippingInfoCommandHandler() commands.SetOrderShippingInfoCommandHandler {
	return commands.NewSetOrderShippingInfoCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderAdminNotesCommandHandler() commands.SetOrderAdminNotesCommandHandler {
	return commands.NewSetOrderAdminNotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() commands.CancelExpiredOrdersCommandHandler {
	return commands.NewCancelExpiredOrdersCommandHandler(c.orderUoWFactory(), c.stock, c.logger)
}

func (c *CompositionRoot) CreateUpsertCouponCommandHandler() commands.UpsertCouponCommandHandler {
	return commands.NewUpsertCouponCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpsertProductCommandHandler() commands.UpsertProductCommandHandler {
	return commands.NewUpsertProductCommandHandler(c.catalogUoWFactory(), c.stock)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, couponrepo.NewGormCouponRepository(c.gormDB), c.engine)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	addCartItem := c.CreateAddCartItemCommandHandler()
	updateCartItem := c.CreateUpdateCartItemQuantityCommandHandler()
	removeCartItem := c.CreateRemoveCartItemCommandHandler()
	applyCoupon := c.CreateApplyCartCouponCommandHandler()
	removeCoupon := c.CreateRemoveCartCouponCommandHandler()
	checkout := c.CreateCheckoutCommandHandler()
	transition := c.CreateTransitionOrderStatusCommandHandler()
	setShipping := c.CreateSetOrderShippingInfoCommandHandler()
	setNotes := c.CreateSetOrderAdminNotesCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		GetCart:         c.CreateGetCartQueryHandler(),
		AddCartItem:     &addCartItem,
		UpdateCartItem:  &updateCartItem,
		RemoveCartItem:  &removeCartItem,
		ApplyCoupon:     &applyCoupon,
		RemoveCoupon:    &removeCoupon,
		Checkout:        &checkout,
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		TransitionOrder: &transition,
		SetShipping:     &setShipping,
		SetNotes:        &setNotes,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cancelExpired := c.CreateCancelExpiredOrdersCommandHandler()
	return jobs.NewJobManager(&cancelExpired, jobs.ExpirySettings{
		Schedule:       c.config.ExpirySchedule,
		PaymentTimeout: c.config.PaymentTimeout,
		BatchSize:      c.config.ExpiryBatchSize,
	}, c.logger)
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	products := c.CreateUpsertProductCommandHandler()
	coupons := c.CreateUpsertCouponCommandHandler()
	return seed.NewLoader(&products, &coupons, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
