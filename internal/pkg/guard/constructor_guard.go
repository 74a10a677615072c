// Package guard implements the constructor-guard pattern used by domain
// entities and commands. A zero-value struct bypasses constructor validation;
// embedding a ConstructorGuard and checking it in Validate() catches such
// instances before they reach business logic.
package guard

import "errors"

// ErrNotConstructed is the default error returned when validating
// a zero-value guard and no custom error is supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through a constructor.
// The zero value is invalid; obtain a valid guard via NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the holder was created through its constructor.
// For a zero-value guard it returns notConstructedErr, or ErrNotConstructed
// when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}
