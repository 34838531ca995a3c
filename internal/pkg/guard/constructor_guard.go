// Package guard provides a defensive programming pattern that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions.
//
// The guard works by maintaining an internal flag that is only set when the
// object is created through the proper constructor. A zero-value struct fails
// validation, so direct struct initialization cannot bypass the validation
// rules the constructor enforces.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. Validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and initialize it with NewConstructorGuard inside the constructor.
//
// Example:
//
//	type CreatePartnerCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreatePartnerCommand(name string) (CreatePartnerCommand, error) {
//	    if name == "" {
//	        return CreatePartnerCommand{}, ErrNameIsRequired
//	    }
//	    return CreatePartnerCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreatePartnerCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, validationError for
// zero-value ones, and ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
