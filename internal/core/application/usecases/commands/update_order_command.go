package commands

import (
	"errors"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// OrderChanges is a partial patch over an existing order. Nil fields are
// left untouched; recipient fields may be patched individually.
type OrderChanges struct {
	MallOrderNo      *string
	RecipientName    *string
	RecipientPhone   *string
	RecipientAddress *string
	Items            *[]order.Item
}

// IsEmpty reports whether the patch carries no changes at all.
func (c OrderChanges) IsEmpty() bool {
	return c.MallOrderNo == nil &&
		c.RecipientName == nil &&
		c.RecipientPhone == nil &&
		c.RecipientAddress == nil &&
		c.Items == nil
}

// UpdateOrderCommand represents a partial edit of an order's business data.
// Status and tracking number have their own commands and are never touched
// here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	changes OrderChanges

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an existing order.
// At least one field of changes must be set.
func NewUpdateOrderCommand(orderID int64, changes OrderChanges) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setChanges(changes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being patched.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Changes returns the partial patch.
func (c UpdateOrderCommand) Changes() OrderChanges {
	return c.changes
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("order_id")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setChanges(changes OrderChanges) error {
	if changes.IsEmpty() {
		return errs.NewValueIsInvalidErrorWithCause("changes",
			errors.New("at least one field must be provided"))
	}
	c.changes = changes
	return nil
}
