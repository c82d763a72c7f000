package order

import (
	"errors"

	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient was not
	// created through the NewRecipient factory method.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")
)

// Recipient identifies the delivery target of an order. The (name, phone)
// pair is the customer-facing lookup key; it is not unique, one customer may
// have any number of orders.
type Recipient struct {
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewRecipient creates a validated recipient. All three fields are required.
func NewRecipient(name, phone, address string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient_name")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient_phone")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient_address")
	}

	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Recipient was created via NewRecipient.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery address.
func (r Recipient) Address() string {
	return r.address
}
