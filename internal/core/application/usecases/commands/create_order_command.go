package commands

import (
	"errors"

	"cherry/internal/core/domain/model/order"
	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer submission: a mall order
// reference, the delivery target, and the cherry line items.
//
// Example:
//
//	recipient, _ := order.NewRecipient("张三", "13800001111", "某地")
//	item, _ := order.NewItem("考拉车厘子", "32-34mm", 3)
//	cmd, err := NewCreateOrderCommand("M100", recipient, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	mallOrderNo string
	recipient   order.Recipient
	items       []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The mall order reference must be non-empty, the recipient must be a
// validated Recipient, and every item must be valid. An empty item sequence
// is accepted.
func NewCreateOrderCommand(mallOrderNo string, recipient order.Recipient, items []order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setMallOrderNo(mallOrderNo),
		orderCommand.setRecipient(recipient),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// MallOrderNo returns the externally-sourced order reference.
func (c CreateOrderCommand) MallOrderNo() string {
	return c.mallOrderNo
}

// Recipient returns the delivery target.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// Items returns the ordered line item sequence.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setMallOrderNo(mallOrderNo string) error {
	if mallOrderNo == "" {
		return errs.NewValueIsRequiredError("mall_order_no")
	}
	c.mallOrderNo = mallOrderNo
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
