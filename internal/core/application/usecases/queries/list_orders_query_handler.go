package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"cherry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler runs the staff listing against the read side of
// the store.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for staff order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results come back newest-first; a page past
// the end is an empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.Limit()

	sqlQuery := `
		SELECT
			id,
			mall_order_no,
			recipient_name,
			recipient_phone,
			recipient_address,
			items,
			status,
			tracking_number,
			created_at
		FROM orders
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sqlQuery += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var orderResp ListOrdersQueryResponse
		var itemsBlob string
		var statusValue string
		var trackingNumber sql.NullString

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.MallOrderNo,
			&orderResp.RecipientName,
			&orderResp.RecipientPhone,
			&orderResp.RecipientAddress,
			&itemsBlob,
			&statusValue,
			&trackingNumber,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusValue)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = status
		orderResp.TrackingNumber = trackingNumber.String

		items := make([]ItemView, 0)
		if itemsBlob != "" {
			if err = json.Unmarshal([]byte(itemsBlob), &items); err != nil {
				return nil, err
			}
		}
		orderResp.Items = items

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
