package commands

import (
	"context"
)

// AssignTrackingCommandHandler handles recording a carrier waybill number
// on an order.
type AssignTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignTrackingCommandHandler creates a handler for tracking assignment.
func NewAssignTrackingCommandHandler(uowFactory OrderUoWFactory) AssignTrackingCommandHandler {
	return AssignTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking assignment command.
func (h *AssignTrackingCommandHandler) Handle(ctx context.Context, cmd AssignTrackingCommand) error {
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

	if err = existingOrder.AssignTracking(cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
