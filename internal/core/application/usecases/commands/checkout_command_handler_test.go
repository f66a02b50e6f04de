package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutHandler(
	factory *MockCheckoutUoWFactory,
	products *MockProductRepository,
	idempotency *MockIdempotencyStore,
	notifier *MockNotifier,
) commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		factory, products, idempotency, notifier, testPricer(), testLogger(),
	)
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "")
	require.NoError(t, err)

	testProduct := buildProduct(t, productID, 20, 5)
	customerCart := buildCartWithItem(t, customerID, productID, 3, 20)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct, nil).Once(),
		productRepo.On("Reserve", ctx, productID, 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Update", ctx, customerCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("OrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCheckoutHandler(factory, productRepo, new(MockIdempotencyStore), notifier)
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())

	placedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.StatusPending, placedOrder.Status())
	assert.True(t, placedOrder.IsOwnedBy(customerID))
	require.Len(t, placedOrder.Items(), 1)
	assert.Equal(t, "Mechanical Keyboard", placedOrder.Items()[0].Name())
	assert.InDelta(t, 60.0, placedOrder.Totals().Subtotal(), 0.0001)
	assert.InDelta(t, 6.0, placedOrder.Totals().Tax(), 0.0001)
	assert.InDelta(t, 0.0, placedOrder.Totals().Shipping(), 0.0001)
	assert.InDelta(t, 66.0, placedOrder.Totals().Total(), 0.0001)
	assert.True(t, customerCart.IsEmpty())
	productRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "")
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCheckoutHandler(factory, new(MockProductRepository), new(MockIdempotencyStore), new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_ReservationFailureReleasesEarlierLines(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	firstProductID := kernel.NewUUID()
	secondProductID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "")
	require.NoError(t, err)

	firstProduct := buildProduct(t, firstProductID, 20, 5)
	secondProduct := buildProduct(t, secondProductID, 30, 1)

	customerCart := buildCartWithItem(t, customerID, firstProductID, 2, 20)
	require.NoError(t, customerCart.AddItem(secondProductID, 2, 30))
	customerCart.Recalculate(testPricer())

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		productRepo.On("Get", ctx, firstProductID).Return(firstProduct, nil).Once(),
		productRepo.On("Reserve", ctx, firstProductID, 2).Return(nil).Once(),
		productRepo.On("Get", ctx, secondProductID).Return(secondProduct, nil).Once(),
		productRepo.On("Reserve", ctx, secondProductID, 2).
			Return(errs.NewInsufficientStockError("Mechanical Keyboard", 2, 1)).Once(),
		productRepo.On("Release", ctx, firstProductID, 2).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCheckoutHandler(factory, productRepo, new(MockIdempotencyStore), new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.False(t, customerCart.IsEmpty())
	productRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_OrderInsertFailureReleasesStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "")
	require.NoError(t, err)

	testProduct := buildProduct(t, productID, 20, 5)
	customerCart := buildCartWithItem(t, customerID, productID, 3, 20)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct, nil).Once(),
		productRepo.On("Reserve", ctx, productID, 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewValueIsInvalidError("order")).Once(),
		productRepo.On("Release", ctx, productID, 3).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCheckoutHandler(factory, productRepo, new(MockIdempotencyStore), new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	productRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RetriesOnNumberConflict(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "")
	require.NoError(t, err)

	testProduct := buildProduct(t, productID, 20, 5)
	customerCart := buildCartWithItem(t, customerID, productID, 3, 20)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	notifier := new(MockNotifier)
	firstUow := new(MockUoW)
	secondUow := new(MockUoW)

	mock.InOrder(
		// First attempt hits the unique constraint, releases its reservation,
		// and rolls back.
		firstUow.On("Begin", ctx).Return(nil).Once(),
		firstUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct, nil).Once(),
		productRepo.On("Reserve", ctx, productID, 3).Return(nil).Once(),
		firstUow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(ports.ErrOrderNumberConflict).Once(),
		productRepo.On("Release", ctx, productID, 3).Return(nil).Once(),
		firstUow.On("Rollback", ctx).Return(nil).Once(),
		// Second attempt runs the full pipeline with a regenerated number.
		secondUow.On("Begin", ctx).Return(nil).Once(),
		secondUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		productRepo.On("Get", ctx, productID).Return(testProduct, nil).Once(),
		productRepo.On("Reserve", ctx, productID, 3).Return(nil).Once(),
		secondUow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Update", ctx, customerCart).Return(nil).Once(),
		secondUow.On("Commit", ctx).Return(nil).Once(),
		secondUow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("OrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(firstUow).Once()
	factory.On("Create").Return(secondUow).Once()

	handler := newCheckoutHandler(factory, productRepo, new(MockIdempotencyStore), notifier)
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())

	firstOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	secondOrder := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.NotEqual(t, firstOrder.Number(), secondOrder.Number())
	assert.True(t, secondOrder.ID().IsEqual(orderID))
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_IdempotentReplay(t *testing.T) {
	ctx := t.Context()
	existingOrderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), testAddress(t), order.PaymentMethodCard, "key-1")
	require.NoError(t, err)

	idempotency := new(MockIdempotencyStore)
	idempotency.On("Reserve", ctx, "key-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).
		Return(false, existingOrderID.String(), nil).Once()

	factory := new(MockCheckoutUoWFactory)
	handler := newCheckoutHandler(factory, new(MockProductRepository), idempotency, new(MockNotifier))

	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, orderID.IsEqual(existingOrderID))
	factory.AssertNotCalled(t, "Create")
	idempotency.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_FailureReleasesIdempotencyKey(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(customerID, testAddress(t), order.PaymentMethodCard, "key-1")
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	idempotency := new(MockIdempotencyStore)
	idempotency.On("Reserve", ctx, "key-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).
		Return(true, "", nil).Once()
	idempotency.On("Release", ctx, "key-1").Return(nil).Once()

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCheckoutHandler(factory, new(MockProductRepository), idempotency, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	idempotency.AssertExpectations(t)
}
