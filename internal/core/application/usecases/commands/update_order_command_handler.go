package commands

import (
	"context"

	"cherry/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles partial edits of an order's business
// data. The order is loaded, patched field by field through the aggregate's
// change methods, then persisted in one transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = applyChanges(existingOrder, cmd.Changes()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyChanges(o *order.Order, changes OrderChanges) error {
	if changes.MallOrderNo != nil {
		if err := o.ChangeMallOrderNo(*changes.MallOrderNo); err != nil {
			return err
		}
	}

	if changes.RecipientName != nil || changes.RecipientPhone != nil || changes.RecipientAddress != nil {
		current := o.Recipient()

		name, phone, address := current.Name(), current.Phone(), current.Address()
		if changes.RecipientName != nil {
			name = *changes.RecipientName
		}
		if changes.RecipientPhone != nil {
			phone = *changes.RecipientPhone
		}
		if changes.RecipientAddress != nil {
			address = *changes.RecipientAddress
		}

		recipient, err := order.NewRecipient(name, phone, address)
		if err != nil {
			return err
		}
		if err = o.ChangeRecipient(recipient); err != nil {
			return err
		}
	}

	if changes.Items != nil {
		if err := o.ChangeItems(*changes.Items); err != nil {
			return err
		}
	}

	return nil
}
