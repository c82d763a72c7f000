package ports

import (
	"context"

	"cherry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository owns the id sequence and the created_at stamp: both are
// assigned on Add and reported back on the aggregate.
type OrderRepository interface {
	// Add persists a new order, assigns its id, and stamps created_at.
	// The aggregate carries the assigned identity after a successful call.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// The order must already have a store-assigned id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its store-assigned id.
	// Returns an ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllShippedWithTracking retrieves every order in shipped status that
	// has a tracking number. Used by the delivery-status sweep.
	GetAllShippedWithTracking(ctx context.Context) ([]*order.Order, error)
}
