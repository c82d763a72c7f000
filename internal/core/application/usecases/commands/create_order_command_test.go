package commands_test

import (
	"testing"

	"cherry/internal/core/application/usecases/commands"
	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipient(t *testing.T) order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient("张三", "13800001111", "上海市浦东新区某路1号")
	require.NoError(t, err)
	return recipient
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("考拉车厘子", "32-34mm", 3)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	recipient := testRecipient(t)
	items := testItems(t)

	cmd, err := commands.NewCreateOrderCommand("M100", recipient, items)
	require.NoError(t, err)
	assert.Equal(t, "M100", cmd.MallOrderNo())
	assert.Equal(t, recipient, cmd.Recipient())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("M100", testRecipient(t), nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_EmptyMallOrderNo(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", testRecipient(t), testItems(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidRecipient(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("M100", order.Recipient{}, testItems(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrRecipientIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("M100", testRecipient(t), []order.Item{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
}
