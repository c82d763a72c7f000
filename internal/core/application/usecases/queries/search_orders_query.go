package queries

import (
	"errors"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery is the customer-facing lookup: all orders whose stored
// recipient name and phone equal the given values exactly. The match is
// case-sensitive and the (name, phone) pair is not unique, so several
// orders may come back.
//
// Example:
//
//	query, err := NewSearchOrdersQuery("张三", "13800001111")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSearchOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type SearchOrdersQuery struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a query for a customer's orders.
// Both name and phone are required.
func NewSearchOrdersQuery(name string, phone string) (SearchOrdersQuery, error) {
	searchQuery := SearchOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		searchQuery.setName(name),
		searchQuery.setPhone(phone),
	); err != nil {
		return SearchOrdersQuery{}, err
	}

	return searchQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Name returns the recipient name being searched for.
func (q SearchOrdersQuery) Name() string {
	return q.name
}

// Phone returns the recipient phone being searched for.
func (q SearchOrdersQuery) Phone() string {
	return q.phone
}

func (q *SearchOrdersQuery) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	q.name = name
	return nil
}

func (q *SearchOrdersQuery) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	q.phone = phone
	return nil
}

// SearchOrdersQueryResponse is the customer-facing projection of an order.
// Recipient fields are omitted: the caller already knows them, they were
// the search key.
type SearchOrdersQueryResponse struct {
	ID             int64
	MallOrderNo    string
	Status         order.Status
	TrackingNumber string
	CreatedAt      int64
}
