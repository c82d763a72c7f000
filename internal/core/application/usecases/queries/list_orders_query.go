package queries

import (
	"errors"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery is the staff-facing listing: every order, optionally
// filtered to one status, paged newest-first.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged listing query. A nil status means no
// filter. Page numbering starts at 1.
func NewListOrdersQuery(status *order.Status, page int, limit int) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setStatus(status),
		listQuery.setPage(page),
		listQuery.setLimit(limit),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when listing all orders.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.status = status
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsInvalidError("page")
	}
	q.page = page
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit < 1 {
		return errs.NewValueIsInvalidError("limit")
	}
	q.limit = limit
	return nil
}

// ItemView is the read-side projection of one line item.
type ItemView struct {
	Variety string `json:"variety"`
	Size    string `json:"size"`
	Boxes   int    `json:"boxes"`
}

// ListOrdersQueryResponse is the full staff-facing projection of an order,
// items parsed back out of the stored blob.
type ListOrdersQueryResponse struct {
	ID               int64
	MallOrderNo      string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	Items            []ItemView
	Status           order.Status
	TrackingNumber   string
	CreatedAt        int64
}
