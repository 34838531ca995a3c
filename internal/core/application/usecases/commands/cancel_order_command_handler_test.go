package commands_test

import (
	"testing"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle_PendingOrderNoRefund(t *testing.T) {
	ctx := t.Context()
	// pending orders never debited anything, so cancellation returns nothing
	pending := orderInStatus(t, kernel.NewUUID(), order.Pending, nil)
	cmd, _ := commands.NewCancelOrderCommand(pending.ID())

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("order.StatusEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	uow.AssertNotCalled(t, "PartnerRepository")
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ReservedOrderRefundsPartner(t *testing.T) {
	ctx := t.Context()
	p := testPartner(t, "25.00") // balance after the original 75.00 debit
	reservedAt := time.Now().UTC().Add(-time.Hour)
	approved := orderInStatus(t, p.ID(), order.Approved, &reservedAt)
	cmd, _ := commands.NewCancelOrderCommand(approved.ID())

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, approved.ID()).Return(approved, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		partnerRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, approved).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("order.StatusEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.True(t, p.CreditLimit().IsEqual(mustMoney(t, "100.00")))
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledIsNoOp(t *testing.T) {
	ctx := t.Context()
	cancelled := orderInStatus(t, kernel.NewUUID(), order.Cancelled, nil)
	cmd, _ := commands.NewCancelOrderCommand(cancelled.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, result.Status())
	// no write, no credit movement, no event
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "PartnerRepository")
	uow.AssertNotCalled(t, "OutboxRepository")
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderRejected(t *testing.T) {
	ctx := t.Context()
	reservedAt := time.Now().UTC()
	delivered := orderInStatus(t, kernel.NewUUID(), order.Delivered, &reservedAt)
	cmd, _ := commands.NewCancelOrderCommand(delivered.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, delivered.ID()).Return(delivered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
