// Package guard provides a defensive-programming helper that ensures domain
// objects are only created through their designated constructor functions.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: the guard flag is only set by NewConstructorGuard, so any
// object built by direct struct initialization fails validation. Commands,
// queries, and value objects across the application use this to keep their
// invariants enforceable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation always fails with a meaningful message
// even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor. The zero value reports the object as not constructed.
//
// Example:
//
//	var ErrItemNotConstructed = errors.New("Item must be created via NewItem")
//
//	type Item struct {
//	    variety string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewItem(variety string) (Item, error) {
//	    if variety == "" {
//	        return Item{}, errors.New("variety is required")
//	    }
//	    return Item{variety: variety, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
