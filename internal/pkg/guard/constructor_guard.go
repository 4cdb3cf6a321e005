// Package guard detects value objects that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into value objects and query objects so that a
// zero value can be told apart from an instance produced by a constructor.
//
// Example usage:
//
//	var ErrPeriodIsNotConstructed = errors.New("Period must be created via NewPeriod")
//
//	type Period struct {
//	    start, end time.Time
//	    guard      guard.ConstructorGuard
//	}
//
//	func (p Period) Validate() error {
//	    return p.guard.Validate(ErrPeriodIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
