package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared fixtures for the handler tests below.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPricer() services.Pricer {
	return services.NewPricer(0.10, 10, 50)
}

func buildProduct(t *testing.T, id kernel.UUID, price float64, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Mechanical Keyboard", "Tactile switches", "keyboard.jpg", price, stock)
	require.NoError(t, err)
	return p
}

func buildCartWithItem(t *testing.T, customerID, productID kernel.UUID, quantity int, price float64) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(productID, quantity, price))
	c.Recalculate(testPricer())
	return c
}

func buildOrder(t *testing.T, customerID kernel.UUID, productID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewItem(productID, "Mechanical Keyboard", "keyboard.jpg", 20, quantity)
	require.NoError(t, err)
	address, err := order.NewAddress(
		"Ada Lovelace", "+1-555-0100", "12 Analytical Way", "",
		"London", "Greater London", "UK", "NW1 2DB",
	)
	require.NoError(t, err)
	payment, err := order.NewPaymentInfo(order.PaymentMethodCard)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(), customerID,
		[]order.Item{item}, address, payment,
		order.NewTotals(60, 6, 0, 0, 66), "",
	)
	require.NoError(t, err)
	return o
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasDeliveredOrderWithProduct(
	ctx context.Context,
	customerID, productID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, customerID, productID)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Reserve(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) Release(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateRating(ctx context.Context, productID kernel.UUID, rating product.Rating) error {
	args := m.Called(ctx, productID, rating)
	return args.Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllByProduct(ctx context.Context, productID kernel.UUID) ([]*review.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByProductAndCustomer(
	ctx context.Context,
	productID, customerID kernel.UUID,
) (*review.Review, error) {
	args := m.Called(ctx, productID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

type MockStockRestorationRepository struct{ mock.Mock }

func (m *MockStockRestorationRepository) Add(ctx context.Context, r *product.StockRestoration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRestorationRepository) Update(ctx context.Context, r *product.StockRestoration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRestorationRepository) GetAllPending(ctx context.Context) ([]*product.StockRestoration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.StockRestoration), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) StockRestorationRepository() ports.StockRestorationRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRestorationRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockRestorationUoWFactory struct{ mock.Mock }

func (m *MockRestorationUoWFactory) Create() commands.RestorationUoW {
	args := m.Called()
	return args.Get(0).(commands.RestorationUoW)
}

type MockCouponResolver struct{ mock.Mock }

func (m *MockCouponResolver) Resolve(ctx context.Context, code string) (cart.Coupon, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(cart.Coupon), args.Error(1)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(
	ctx context.Context,
	key, value string,
	ttl time.Duration,
) (bool, string, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderConfirmation(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockNotifier) OrderCancelled(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}
