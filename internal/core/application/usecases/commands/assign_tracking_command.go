package commands

import (
	"errors"

	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	ErrAssignTrackingCommandIsNotConstructed = errors.New(
		"AssignTrackingCommand must be created via NewAssignTrackingCommand constructor",
	)
)

// AssignTrackingCommand records the carrier waybill number on an order.
// Assigning a tracking number does not change the order's status; shipping
// is declared separately by the status workflow.
type AssignTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID        int64
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewAssignTrackingCommand creates a command to set an order's tracking
// number. The number must be non-empty; re-assignment overwrites the
// previous value.
func NewAssignTrackingCommand(orderID int64, trackingNumber string) (AssignTrackingCommand, error) {
	trackingCommand := AssignTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackingCommand.setOrderID(orderID),
		trackingCommand.setTrackingNumber(trackingNumber),
	); err != nil {
		return AssignTrackingCommand{}, err
	}

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAssignTrackingCommandIsNotConstructed)
}

// OrderID returns the id of the order receiving the tracking number.
func (c AssignTrackingCommand) OrderID() int64 {
	return c.orderID
}

// TrackingNumber returns the carrier waybill number.
func (c AssignTrackingCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *AssignTrackingCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("order_id")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTrackingCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	c.trackingNumber = trackingNumber
	return nil
}
