package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/restorationrepo"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then runs migrations for every aggregate table.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&reviewrepo.ReviewDTO{},
		&restorationrepo.StockRestorationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE carts, cart_items, orders, order_items, products, reviews, stock_restorations",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct(stock int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), "Mechanical Keyboard", "Tenkeyless", "kb.png", 20, stock)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(customerID kernel.UUID, productID kernel.UUID) *order.Order {
	item, err := order.NewItem(productID, "Mechanical Keyboard", "kb.png", 20, 3)
	suite.Require().NoError(err)

	address, err := order.NewAddress(
		"Ada Lovelace", "+15550100", "1 Analytical Way", "", "London", "", "GB", "N1 9GU",
	)
	suite.Require().NoError(err)

	paymentInfo, err := order.NewPaymentInfo(order.PaymentMethodCard)
	suite.Require().NoError(err)

	orderID := kernel.NewUUID()
	number := order.NewNumber()

	totals := order.NewTotals(60, 6, 0, 0, 66)

	o, err := order.NewOrder(orderID, number, customerID, []order.Item{item}, address, paymentInfo, totals, "")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.ProductRepository())
	suite.NotNil(uow2.ReviewRepository())
	suite.NotNil(uow2.StockRestorationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().Error(err, "Commit without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	testProduct := suite.newProduct(10)
	testOrder := suite.newOrder(customerID, testProduct.ID())

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	readUow := suite.factory.Create()
	fetched, err := readUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), fetched.Number())
	suite.Equal(order.StatusPending, fetched.Status())
	suite.Len(fetched.Items(), 1)
	suite.InDelta(66.0, fetched.Totals().Total(), 0.0001)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	testProduct := suite.newProduct(10)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	readUow := suite.factory.Create()
	_, err = readUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProductRepository_ReserveAndRelease() {
	ctx := context.Background()

	testProduct := suite.newProduct(5)
	uow := suite.factory.Create()
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	repo := suite.factory.Create().ProductRepository()

	err = repo.Reserve(ctx, testProduct.ID(), 3)
	suite.Require().NoError(err)

	err = repo.Reserve(ctx, testProduct.ID(), 3)
	suite.Require().ErrorIs(err, errs.ErrInsufficientStock, "Only 2 units remain")

	fetched, err := repo.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(2, fetched.Stock(), "Failed reservation must not change stock")

	err = repo.Release(ctx, testProduct.ID(), 3)
	suite.Require().NoError(err)

	fetched, err = repo.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(5, fetched.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_UpdateReplacesLines() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	testCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	err = testCart.AddItem(productID, 2, 20)
	suite.Require().NoError(err)

	repo := suite.factory.Create().CartRepository()
	err = repo.Add(ctx, testCart)
	suite.Require().NoError(err)

	err = testCart.AddItem(kernel.NewUUID(), 1, 5)
	suite.Require().NoError(err)
	err = repo.Update(ctx, testCart)
	suite.Require().NoError(err)

	fetched, err := repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Len(fetched.Items(), 2)
	suite.Equal(2, fetched.QuantityOf(productID))

	testCart.Clear()
	err = repo.Update(ctx, testCart)
	suite.Require().NoError(err)

	fetched, err = repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(fetched.IsEmpty())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartRepository_PreservesLineOrder() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	productIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}

	testCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	for i, productID := range productIDs {
		err = testCart.AddItem(productID, i+1, 10)
		suite.Require().NoError(err)
	}

	repo := suite.factory.Create().CartRepository()
	err = repo.Add(ctx, testCart)
	suite.Require().NoError(err)

	fetched, err := repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(fetched.Items(), len(productIDs))
	for i, item := range fetched.Items() {
		suite.True(item.ProductID().IsEqual(productIDs[i]))
	}

	// Removing the middle line keeps the remaining lines in their order.
	err = testCart.RemoveItem(testCart.Items()[1].ID())
	suite.Require().NoError(err)
	err = repo.Update(ctx, testCart)
	suite.Require().NoError(err)

	fetched, err = repo.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(fetched.Items(), 2)
	suite.True(fetched.Items()[0].ProductID().IsEqual(productIDs[0]))
	suite.True(fetched.Items()[1].ProductID().IsEqual(productIDs[2]))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_HasDeliveredOrderWithProduct() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	testOrder := suite.newOrder(customerID, productID)
	repo := suite.factory.Create().OrderRepository()
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	delivered, err := repo.HasDeliveredOrderWithProduct(ctx, customerID, productID)
	suite.Require().NoError(err)
	suite.False(delivered, "Pending order does not count as delivered")

	suite.Require().NoError(testOrder.Confirm())
	suite.Require().NoError(testOrder.StartProcessing())
	suite.Require().NoError(testOrder.Ship(order.NewTracking("UPS", "1Z999", "")))
	suite.Require().NoError(testOrder.Deliver())
	err = repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	delivered, err = repo.HasDeliveredOrderWithProduct(ctx, customerID, productID)
	suite.Require().NoError(err)
	suite.True(delivered)

	delivered, err = repo.HasDeliveredOrderWithProduct(ctx, kernel.NewUUID(), productID)
	suite.Require().NoError(err)
	suite.False(delivered, "Another customer has no delivered order")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReviewRepository_VoterSetRoundTrip() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	testReview, err := review.NewReview(kernel.NewUUID(), productID, customerID, 5, "Excellent", "Clicky.", true)
	suite.Require().NoError(err)

	repo := suite.factory.Create().ReviewRepository()
	err = repo.Add(ctx, testReview)
	suite.Require().NoError(err)

	voterID := kernel.NewUUID()
	marked, err := testReview.ToggleHelpful(voterID)
	suite.Require().NoError(err)
	suite.True(marked)

	err = repo.Update(ctx, testReview)
	suite.Require().NoError(err)

	fetched, err := repo.GetByProductAndCustomer(ctx, productID, customerID)
	suite.Require().NoError(err)
	suite.Equal(1, fetched.HelpfulCount())
	suite.True(fetched.HelpfulVoters()[0].IsEqual(voterID))

	duplicate, err := review.NewReview(kernel.NewUUID(), productID, customerID, 1, "Again", "", false)
	suite.Require().NoError(err)
	err = repo.Add(ctx, duplicate)
	suite.Require().Error(err, "One review per customer per product")

	err = repo.Delete(ctx, testReview.ID())
	suite.Require().NoError(err)
	_, err = repo.Get(ctx, testReview.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStockRestorationRepository_PendingLifecycle() {
	ctx := context.Background()

	pending, err := product.NewStockRestoration(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3)
	suite.Require().NoError(err)
	done, err := product.NewStockRestoration(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
	suite.Require().NoError(err)

	repo := suite.factory.Create().StockRestorationRepository()
	suite.Require().NoError(repo.Add(ctx, pending))
	suite.Require().NoError(repo.Add(ctx, done))

	done.MarkCompleted()
	suite.Require().NoError(repo.Update(ctx, done))

	remaining, err := repo.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.True(remaining[0].ID().IsEqual(pending.ID()))
	suite.Equal(3, remaining[0].Quantity())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
