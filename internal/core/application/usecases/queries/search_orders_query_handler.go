package queries

import (
	"context"
	"database/sql"

	"cherry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler runs the customer identity lookup against the
// read side of the store. Newest orders come first.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for customer order lookups.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the lookup. No matches is not an error here: the handler
// returns an empty slice and leaves the 404 decision to the transport layer.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]SearchOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			mall_order_no,
			status,
			tracking_number,
			created_at
		FROM orders
		WHERE recipient_name = ? AND recipient_phone = ?
		ORDER BY created_at DESC
	`, query.Name(), query.Phone()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp SearchOrdersQueryResponse
		var statusValue string
		var trackingNumber sql.NullString

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.MallOrderNo,
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

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
