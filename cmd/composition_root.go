package cmd

import (
	"log/slog"

	"storefront/internal/adapters/out/coupon"
	"storefront/internal/adapters/out/notify"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/rediscache"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	pricer      cart.TotalsPolicy
	coupons     ports.CouponResolver
	notifier    ports.Notifier
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	coupons []cart.Coupon,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:      services.NewPricer(cfg.TaxRate, cfg.ShippingFee, cfg.FreeShippingThreshold),
		coupons:     coupon.NewStaticResolver(coupons),
		notifier:    notify.NewSlogNotifier(logger),
		idempotency: rediscache.NewIdempotencyStore(redisClient),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.pricer)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory(), c.pricer)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.pricer)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateApplyCouponCommandHandler() commands.ApplyCouponCommandHandler {
	return commands.NewApplyCouponCommandHandler(c.cartUoWFactory(), c.coupons, c.pricer)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})

	// Stock reservations commit independently of the checkout transaction,
	// so the handler gets a repository bound to the raw connection.
	products := c.uowFactory.Create().ProductRepository()

	return commands.NewCheckoutCommandHandler(f, products, c.idempotency, c.notifier, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.restorationUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	return commands.NewAddReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateUpdateReviewCommandHandler() commands.UpdateReviewCommandHandler {
	return commands.NewUpdateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateMarkReviewHelpfulCommandHandler() commands.MarkReviewHelpfulCommandHandler {
	return commands.NewMarkReviewHelpfulCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateRestorePendingStockCommandHandler() commands.RestorePendingStockCommandHandler {
	return commands.NewRestorePendingStockCommandHandler(c.restorationUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductReviewsQueryHandler() queries.GetProductReviewsQueryHandler {
	return queries.NewGetProductReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRestorePendingStockCommandHandler(), c.logger)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restorationUoWFactory() commands.RestorationUoWFactory {
	return FuncRestorationUoWFactory(func() commands.RestorationUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncRestorationUoWFactory func() commands.RestorationUoW

func (f FuncRestorationUoWFactory) Create() commands.RestorationUoW {
	return f()
}
