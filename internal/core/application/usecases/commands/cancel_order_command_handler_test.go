package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	testOrder := buildOrder(t, customerID, productID, 3)
	cmd, err := commands.NewCancelOrderCommand(customerID, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restorationRepo := new(MockStockRestorationRepository)
	productRepo := new(MockProductRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	releaseUow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("StockRestorationRepository").Return(restorationRepo).Once(),
		restorationRepo.On("Add", ctx, mock.AnythingOfType("*product.StockRestoration")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		releaseUow.On("Begin", ctx).Return(nil).Once(),
		releaseUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Release", ctx, productID, 3).Return(nil).Once(),
		releaseUow.On("StockRestorationRepository").Return(restorationRepo).Once(),
		restorationRepo.On("Update", ctx, mock.AnythingOfType("*product.StockRestoration")).Return(nil).Once(),
		releaseUow.On("Commit", ctx).Return(nil).Once(),
		releaseUow.On("Rollback", ctx).Return(nil).Once(),
	)
	// The outer rollback is deferred and fires last, after the release pass.
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderCancelled", ctx, testOrder).Once()

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow).Once()
	restorationFactory := new(MockRestorationUoWFactory)
	restorationFactory.On("Create").Return(releaseUow).Once()

	handler := commands.NewCancelOrderCommandHandler(orderFactory, restorationFactory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, testOrder.Status())

	restoration := restorationRepo.Calls[0].Arguments[1].(*product.StockRestoration)
	assert.True(t, restoration.OrderID().IsEqual(testOrder.ID()))
	assert.Equal(t, 3, restoration.Quantity())
	assert.True(t, restoration.IsCompleted())
	orderRepo.AssertExpectations(t)
	restorationRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	testOrder := buildOrder(t, kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(
		orderFactory, new(MockRestorationUoWFactory), new(MockNotifier), testLogger(),
	)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.StatusPending, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	testOrder := buildOrder(t, customerID, kernel.NewUUID(), 1)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartProcessing())
	require.NoError(t, testOrder.Ship(order.Tracking{}))
	require.NoError(t, testOrder.Deliver())

	cmd, err := commands.NewCancelOrderCommand(customerID, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(
		orderFactory, new(MockRestorationUoWFactory), new(MockNotifier), testLogger(),
	)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ReleaseFailureStaysPending(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	testOrder := buildOrder(t, customerID, productID, 2)
	cmd, err := commands.NewCancelOrderCommand(customerID, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restorationRepo := new(MockStockRestorationRepository)
	productRepo := new(MockProductRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	releaseUow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("StockRestorationRepository").Return(restorationRepo).Once(),
		restorationRepo.On("Add", ctx, mock.AnythingOfType("*product.StockRestoration")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		releaseUow.On("Begin", ctx).Return(nil).Once(),
		releaseUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Release", ctx, productID, 2).Return(errs.NewValueIsInvalidError("stock")).Once(),
		releaseUow.On("Rollback", ctx).Return(nil).Once(),
	)
	// The outer rollback is deferred and fires last, after the release pass.
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderCancelled", ctx, testOrder).Once()

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow).Once()
	restorationFactory := new(MockRestorationUoWFactory)
	restorationFactory.On("Create").Return(releaseUow).Once()

	handler := commands.NewCancelOrderCommandHandler(orderFactory, restorationFactory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	// Cancellation still succeeds; the restoration row stays pending for the job.
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, testOrder.Status())

	restoration := restorationRepo.Calls[0].Arguments[1].(*product.StockRestoration)
	assert.False(t, restoration.IsCompleted())
}
