package kernel

import (
	"strings"

	"github.com/google/uuid"

	"fooddelivery/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that represents an opaque entity identifier.
// Identifiers arrive from clients as free-form strings ("c1", "courier1")
// or are generated as UUIDs for orders, so ID wraps a non-empty string
// rather than a binary UUID.
//
// The zero value of ID is invalid and must be constructed using NewID
// or IDFromString.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier (UUID string)
//	orderID := kernel.NewID()
//
//	// Wrap a client-supplied identifier
//	customerID, err := kernel.IDFromString("c1")
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value string
}

// NewID generates a fresh identifier backed by a random UUID (version 4).
// Used for entities whose identifiers the system itself assigns, such as orders.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps a client-supplied identifier.
// The string must be non-empty after trimming whitespace.
// Returns ErrIDIsNotConstructed for empty input.
//
// Example:
//
//	id, err := kernel.IDFromString("m1")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item ID: %w", err)
//	}
func IDFromString(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, ErrIDIsNotConstructed
	}
	return ID{value: s}, nil
}

// String returns the identifier's string representation.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the ID is the invalid zero value.
func (i ID) IsZero() bool {
	return i.value == ""
}

// Validate checks that the ID was created through a constructor.
// Returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}
