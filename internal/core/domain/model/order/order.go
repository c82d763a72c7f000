package order

import (
	"errors"

	"cherry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer submission. It owns the order's
// identity, the mall order reference, the recipient, the line items, the
// fulfillment status, and the optional carrier tracking number.
//
// Invariants:
//   - The mall order reference is never empty
//   - The recipient is always a validated Recipient
//   - Every item is a validated Item (the sequence itself may be empty)
//   - Status is always one of the four valid values
//   - id and createdAt are assigned exactly once, by the store
//
// The id is zero until the store persists the order and reports the assigned
// value back. Orders are never deleted.
type Order struct {
	// id is the store-assigned identifier (0 before first persistence)
	id int64

	// mallOrderNo is the externally-sourced order reference
	mallOrderNo string

	// recipient is the delivery target
	recipient Recipient

	// items is the ordered sequence of cherry line items
	items []Item

	// status is the current fulfillment stage
	status Status

	// trackingNumber is the carrier shipment id ("" until logistics assigns it)
	trackingNumber string

	// createdAt is the Unix timestamp stamped by the store at creation
	createdAt int64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order from a customer submission. The order starts
// in Pending status with no tracking number; id and createdAt stay zero until
// the store persists it.
//
// The items sequence may be empty, but every present item must be valid.
func NewOrder(mallOrderNo string, recipient Recipient, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setMallOrderNo(mallOrderNo),
		order.setRecipient(recipient),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Used by the
// repository when reading rows back; all invariants are re-checked so
// corrupted rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id int64,
	mallOrderNo string,
	recipient Recipient,
	items []Item,
	status Status,
	trackingNumber string,
	createdAt int64,
) (*Order, error) {
	order := &Order{
		id:             id,
		trackingNumber: trackingNumber,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setMallOrderNo(mallOrderNo),
		order.setRecipient(recipient),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called by the repository before any write.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or 0 if the order has not been
// persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// MallOrderNo returns the externally-sourced order reference.
func (o *Order) MallOrderNo() string {
	return o.mallOrderNo
}

// Recipient returns the delivery target.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Items returns a copy of the ordered line item sequence.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current fulfillment stage.
func (o *Order) Status() Status {
	return o.status
}

// TrackingNumber returns the carrier tracking number, or "" when logistics
// has not assigned one.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CreatedAt returns the Unix timestamp stamped by the store, or 0 before
// first persistence.
func (o *Order) CreatedAt() int64 {
	return o.createdAt
}

// MarkPersisted records the identity the store assigned on first insert.
// It can be applied only once; the id never changes afterwards.
func (o *Order) MarkPersisted(id int64, createdAt int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			errors.New("order is already persisted"))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	o.id = id
	o.createdAt = createdAt
	return nil
}

// ChangeMallOrderNo replaces the mall order reference.
func (o *Order) ChangeMallOrderNo(mallOrderNo string) error {
	return o.setMallOrderNo(mallOrderNo)
}

// ChangeRecipient replaces the delivery target.
func (o *Order) ChangeRecipient(recipient Recipient) error {
	return o.setRecipient(recipient)
}

// ChangeItems replaces the whole line item sequence.
func (o *Order) ChangeItems(items []Item) error {
	return o.setItems(items)
}

// ChangeStatus sets the fulfillment stage to any of the four valid values.
// There is no transition graph: reviewed may go back to pending, shipped may
// be set on a fresh order. Invalid values are rejected.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// AssignTracking attaches a carrier tracking number. The number must be
// non-empty; assigning it does not change the order status.
func (o *Order) AssignTracking(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}

	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setMallOrderNo(mallOrderNo string) error {
	if mallOrderNo == "" {
		return errs.NewValueIsRequiredError("mall_order_no")
	}
	o.mallOrderNo = mallOrderNo
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	copied := make([]Item, len(items))
	copy(copied, items)
	o.items = copied
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
