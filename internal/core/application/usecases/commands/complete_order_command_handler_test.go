package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"completion/internal/core/application/usecases/commands"
	"completion/internal/core/domain/model/receipt"
	"completion/internal/core/ports"
	"completion/internal/metrics"
	"completion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationSender) Simulated() bool { return true }

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) AddLoyaltyPoints(ctx context.Context, customerID string, points int) error {
	args := m.Called(ctx, customerID, points)
	return args.Error(0)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) GetByID(ctx context.Context, receiptID string) (*receipt.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func newHandler(
	sender *MockNotificationSender,
	customers *MockCustomerRepository,
	receipts *MockReceiptRepository,
) commands.CompleteOrderCommandHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewCompleteOrderCommandHandler(sender, customers, receipts, metrics.NewRegistry(), logger)
}

func validCommand(t *testing.T) commands.CompleteOrderCommand {
	t.Helper()
	cmd, err := commands.NewCompleteOrderCommand(
		"order-1", "cust-1", 25.00, nil, "ada@example.com", "Ada",
	)
	require.NoError(t, err)
	return cmd
}

func TestCompleteOrderCommandHandler_Handle_AllStepsSucceed(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.OrderID == "order-1" && n.CustomerEmail == "ada@example.com"
	})).Return(nil).Once()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).Return(nil).Once()
	receipts.On("Add", mock.Anything, mock.AnythingOfType("*receipt.Receipt")).Return(nil).Once()

	h := newHandler(sender, customers, receipts)
	result, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.NotificationSent)
	assert.True(t, result.LoyaltyUpdated)
	assert.True(t, result.ReceiptStored)
	assert.Equal(t, 250, result.PointsAwarded)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, 2.50, result.Receipt.TaxAmount())
	assert.Equal(t, 1.25, result.Receipt.DeliveryFee())

	sender.AssertExpectations(t)
	customers.AssertExpectations(t)
	receipts.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotificationFailureDoesNotBlockSiblings(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp connect refused")).Once()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).Return(nil).Once()
	receipts.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	h := newHandler(sender, customers, receipts)
	result, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.False(t, result.NotificationSent)
	assert.True(t, result.LoyaltyUpdated)
	assert.True(t, result.ReceiptStored)

	sender.AssertExpectations(t)
	customers.AssertExpectations(t)
	receipts.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).
		Return(errs.NewObjectNotFoundError("customer", "cust-1")).Once()
	receipts.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	h := newHandler(sender, customers, receipts)
	result, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.NotificationSent)
	assert.False(t, result.LoyaltyUpdated)
	assert.True(t, result.ReceiptStored)
}

func TestCompleteOrderCommandHandler_Handle_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).Return(nil).Once()
	receipts.On("Add", mock.Anything, mock.Anything).Return(errors.New("connection pool exhausted")).Once()

	h := newHandler(sender, customers, receipts)
	result, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.NotificationSent)
	assert.True(t, result.LoyaltyUpdated)
	assert.False(t, result.ReceiptStored)
}

func TestCompleteOrderCommandHandler_Handle_DuplicateCompletion(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).Return(nil).Once()
	receipts.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("order", "order-1")).Once()

	h := newHandler(sender, customers, receipts)
	result, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.False(t, result.ReceiptStored)
}

func TestCompleteOrderCommandHandler_Handle_InvalidCommandHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	h := newHandler(sender, customers, receipts)
	var cmd commands.CompleteOrderCommand
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	customers.AssertNotCalled(t, "AddLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything)
	receipts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_FreshReceiptIDPerInvocation(t *testing.T) {
	ctx := context.Background()
	sender := new(MockNotificationSender)
	customers := new(MockCustomerRepository)
	receipts := new(MockReceiptRepository)

	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Twice()
	customers.On("AddLoyaltyPoints", mock.Anything, "cust-1", 250).Return(nil).Twice()
	receipts.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()

	h := newHandler(sender, customers, receipts)
	first, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)
	second, err := h.Handle(ctx, validCommand(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.Receipt.ID(), second.Receipt.ID())
}
