package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cherry/internal/core/application/usecases/commands"
	"cherry/internal/core/domain/model/order"
	"cherry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackingGateway struct{ mock.Mock }

func (m *MockTrackingGateway) Query(ctx context.Context, trackingNumber, phoneTail string) (ports.TrackingInfo, error) {
	args := m.Called(ctx, trackingNumber, phoneTail)
	return args.Get(0).(ports.TrackingInfo), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteDeliveredOrdersCommandHandler_Handle_CompletesSignedOrders(t *testing.T) {
	ctx := t.Context()
	signedOrder := restoredOrder(t, 1, order.Shipped, "SF1111111111")
	transitOrder := restoredOrder(t, 2, order.Shipped, "SF2222222222")

	gateway := new(MockTrackingGateway)
	gateway.On("Query", mock.Anything, "SF1111111111", "1111").
		Return(ports.TrackingInfo{State: ports.DeliveryStateSigned}, nil).Once()
	gateway.On("Query", mock.Anything, "SF2222222222", "1111").
		Return(ports.TrackingInfo{State: ports.DeliveryStateInTransit}, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("GetAllShippedWithTracking", mock.Anything).
		Return([]*order.Order{signedOrder, transitOrder}, nil).Once()
	repo.On("Get", mock.Anything, int64(1)).Return(signedOrder, nil).Once()
	repo.On("Update", mock.Anything, signedOrder).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, _ := commands.NewCompleteDeliveredOrdersCommand()
	h := commands.NewCompleteDeliveredOrdersCommandHandler(factory, gateway, discardLogger())
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, order.Completed, signedOrder.Status())
	assert.Equal(t, order.Shipped, transitOrder.Status())
	gateway.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCompleteDeliveredOrdersCommandHandler_Handle_TrackingNotReady(t *testing.T) {
	ctx := t.Context()
	freshOrder := restoredOrder(t, 3, order.Shipped, "SF3333333333")

	gateway := new(MockTrackingGateway)
	gateway.On("Query", mock.Anything, "SF3333333333", "1111").
		Return(ports.TrackingInfo{}, &ports.ErrTrackingNotReady{TrackingNumber: "SF3333333333"}).Once()

	repo := new(MockOrderRepository)
	repo.On("GetAllShippedWithTracking", mock.Anything).
		Return([]*order.Order{freshOrder}, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, _ := commands.NewCompleteDeliveredOrdersCommand()
	h := commands.NewCompleteDeliveredOrdersCommandHandler(factory, gateway, discardLogger())
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, order.Shipped, freshOrder.Status())
}

func TestCompleteDeliveredOrdersCommandHandler_Handle_CarrierFailureCounted(t *testing.T) {
	ctx := t.Context()
	brokenOrder := restoredOrder(t, 4, order.Shipped, "SF4444444444")
	goodOrder := restoredOrder(t, 5, order.Shipped, "SF5555555555")

	gateway := new(MockTrackingGateway)
	gateway.On("Query", mock.Anything, "SF4444444444", "1111").
		Return(ports.TrackingInfo{}, errors.New("carrier unreachable")).Once()
	gateway.On("Query", mock.Anything, "SF5555555555", "1111").
		Return(ports.TrackingInfo{State: ports.DeliveryStateSigned}, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("GetAllShippedWithTracking", mock.Anything).
		Return([]*order.Order{brokenOrder, goodOrder}, nil).Once()
	repo.On("Get", mock.Anything, int64(5)).Return(goodOrder, nil).Once()
	repo.On("Update", mock.Anything, goodOrder).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, _ := commands.NewCompleteDeliveredOrdersCommand()
	h := commands.NewCompleteDeliveredOrdersCommandHandler(factory, gateway, discardLogger())
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, order.Completed, goodOrder.Status())
	assert.Equal(t, order.Shipped, brokenOrder.Status())
}

func TestCompleteDeliveredOrdersCommandHandler_Handle_NoCandidates(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	repo.On("GetAllShippedWithTracking", mock.Anything).Return([]*order.Order{}, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	gateway := new(MockTrackingGateway)
	cmd, _ := commands.NewCompleteDeliveredOrdersCommand()
	h := commands.NewCompleteDeliveredOrdersCommandHandler(factory, gateway, discardLogger())
	report, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.DeliverySweepReport{}, report)
	gateway.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}
