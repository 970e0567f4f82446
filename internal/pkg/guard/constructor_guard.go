// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value must be rejected.
// Only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	var ErrTrayNotConstructed = errors.New("Tray must be created via NewTray")
//
//	type Tray struct {
//	    loaves int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (t Tray) Validate() error {
//	    return t.guard.Validate(ErrTrayNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
