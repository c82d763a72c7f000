package order_test

import (
	"fmt"
	"testing"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate the four defined statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Reviewed,
			order.Shipped,
			order.Completed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire values", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "reviewed", order.Reviewed.String())
		assert.Equal(t, "shipped", order.Shipped.String())
		assert.Equal(t, "completed", order.Completed.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_DisplayText(t *testing.T) {
	t.Run("should return the localized label for each valid status", func(t *testing.T) {
		assert.Equal(t, "待审核", order.Pending.DisplayText())
		assert.Equal(t, "已审核", order.Reviewed.DisplayText())
		assert.Equal(t, "已发货", order.Shipped.DisplayText())
		assert.Equal(t, "已完成", order.Completed.DisplayText())
	})

	t.Run("should fall back to 未知 instead of failing", func(t *testing.T) {
		assert.Equal(t, "未知", order.Unknown.DisplayText())
		assert.Equal(t, "未知", order.Status(42).DisplayText())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse the four wire values", func(t *testing.T) {
		testCases := map[string]order.Status{
			"pending":   order.Pending,
			"reviewed":  order.Reviewed,
			"shipped":   order.Shipped,
			"completed": order.Completed,
		}

		for value, expected := range testCases {
			status, err := order.ParseStatus(value)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject anything outside the four values", func(t *testing.T) {
		for _, value := range []string{"archived", "PENDING", "Pending", "", "done"} {
			t.Run(fmt.Sprintf("rejects %q", value), func(t *testing.T) {
				status, err := order.ParseStatus(value)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, status)
			})
		}
	})
}
