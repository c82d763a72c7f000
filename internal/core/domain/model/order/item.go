package order

import (
	"fmt"

	"cherry/internal/pkg/errs"
	"cherry/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = fmt.Errorf("Item must be created via NewItem constructor")
)

// Item is one line of an order: a cherry variety, a size band label such as
// "30-32mm", and the number of boxes. Items are value objects; an order
// carries them as an ordered sequence.
type Item struct {
	variety string
	size    string
	boxes   int

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. Variety and size must be non-empty
// and boxes must be positive.
func NewItem(variety, size string, boxes int) (Item, error) {
	if variety == "" {
		return Item{}, errs.NewValueIsRequiredError("variety")
	}
	if size == "" {
		return Item{}, errs.NewValueIsRequiredError("size")
	}
	if boxes <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("boxes",
			fmt.Errorf("%d is not greater than 0", boxes))
	}

	return Item{
		variety: variety,
		size:    size,
		boxes:   boxes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Variety returns the cherry variety label.
func (i Item) Variety() string {
	return i.variety
}

// Size returns the size band label.
func (i Item) Size() string {
	return i.size
}

// Boxes returns the number of boxes ordered for this line.
func (i Item) Boxes() int {
	return i.boxes
}
