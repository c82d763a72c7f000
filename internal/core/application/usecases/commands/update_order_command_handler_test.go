package commands_test

import (
	"testing"

	"cherry/internal/core/application/usecases/commands"
	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id int64, status order.Status, trackingNumber string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "M100", testRecipient(t), testItems(t), status, trackingNumber, 1700000000)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_PatchesRecipientPartially(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, 7, order.Pending, "")
	cmd, _ := commands.NewUpdateOrderCommand(7, commands.OrderChanges{
		RecipientAddress: strPtr("北京市朝阳区新地址"),
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "北京市朝阳区新地址", existing.Recipient().Address())
	assert.Equal(t, "张三", existing.Recipient().Name())
	assert.Equal(t, "13800001111", existing.Recipient().Phone())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_PatchesItems(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, 7, order.Reviewed, "")
	newItem, err := order.NewItem("智利车厘子", "30-32mm", 5)
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateOrderCommand(7, commands.OrderChanges{
		Items: &[]order.Item{newItem},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	repo.On("Get", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, existing.Items(), 1)
	assert.Equal(t, "智利车厘子", existing.Items()[0].Variety())
	assert.Equal(t, 5, existing.Items()[0].Boxes())
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand(42, commands.OrderChanges{MallOrderNo: strPtr("M200")})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)
	repo.On("Get", mock.Anything, int64(42)).Return(nil, errs.NewObjectNotFoundError("order", "42"))

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_BlankRecipientFieldRejected(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, 7, order.Pending, "")
	cmd, _ := commands.NewUpdateOrderCommand(7, commands.OrderChanges{RecipientName: strPtr("")})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)
	repo.On("Get", mock.Anything, int64(7)).Return(existing, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
