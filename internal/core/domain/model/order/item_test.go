package order_test

import (
	"testing"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create a valid line item", func(t *testing.T) {
		item, err := order.NewItem("考拉车厘子", "30-32mm", 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "考拉车厘子", item.Variety())
		assert.Equal(t, "30-32mm", item.Size())
		assert.Equal(t, 2, item.Boxes())
	})

	t.Run("should require variety and size", func(t *testing.T) {
		_, err := order.NewItem("", "30-32mm", 2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewItem("考拉车厘子", "", 2)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require positive boxes", func(t *testing.T) {
		_, err := order.NewItem("考拉车厘子", "30-32mm", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem("考拉车厘子", "30-32mm", -3)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewRecipient(t *testing.T) {
	t.Run("should create a valid recipient", func(t *testing.T) {
		recipient, err := order.NewRecipient("张三", "13800001111", "某地")

		require.NoError(t, err)
		require.NoError(t, recipient.Validate())
		assert.Equal(t, "张三", recipient.Name())
		assert.Equal(t, "13800001111", recipient.Phone())
		assert.Equal(t, "某地", recipient.Address())
	})

	t.Run("should require every field", func(t *testing.T) {
		testCases := []struct {
			name                  string
			rName, phone, address string
		}{
			{"missing name", "", "13800001111", "某地"},
			{"missing phone", "张三", "", "某地"},
			{"missing address", "张三", "13800001111", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewRecipient(tc.rName, tc.phone, tc.address)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("zero value recipient fails validation", func(t *testing.T) {
		var recipient order.Recipient
		assert.ErrorIs(t, recipient.Validate(), order.ErrRecipientIsNotConstructed)
	})
}
