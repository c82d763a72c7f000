package commands

import (
	"errors"

	"cherry/internal/pkg/guard"
)

var (
	ErrCompleteDeliveredOrdersCommandIsNotConstructed = errors.New(
		"CompleteDeliveredOrdersCommand must be created via NewCompleteDeliveredOrdersCommand constructor",
	)
)

// CompleteDeliveredOrdersCommand triggers a sweep over all shipped orders
// that carry a tracking number: each one is checked against the carrier and
// moved to completed once the carrier reports the parcel as signed for.
type CompleteDeliveredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveredOrdersCommand creates a sweep command.
func NewCompleteDeliveredOrdersCommand() (CompleteDeliveredOrdersCommand, error) {
	return CompleteDeliveredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveredOrdersCommandIsNotConstructed)
}
