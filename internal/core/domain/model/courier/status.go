package courier

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the availability state of a courier.
//
// State transitions driven by the workflow:
//
//	available ──Assign──> busy
//	busy ──Release──> available
//
// Manual overrides via UpdateCourierStatus may set any valid status,
// including offline.
//
// Status values are stored and transmitted as their string representation.
type Status string

const (
	// StatusAvailable means the courier can take a new order.
	StatusAvailable Status = "available"

	// StatusBusy means the courier is assigned to an active order.
	StatusBusy Status = "busy"

	// StatusOffline means the courier is not working and must not be assigned.
	StatusOffline Status = "offline"
)

// Validate checks if the Status value is one of available, busy, offline.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid courier status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Assign transitions the status to busy.
//
// Only an available courier can be assigned; busy and offline couriers
// reject assignment with a conflict error.
func (s Status) Assign() (Status, error) {
	if s != StatusAvailable {
		return "", errs.NewConflictErrorWithCause(
			"courier is not available",
			fmt.Errorf("status is %s", s),
		)
	}
	return StatusBusy, nil
}

// Release transitions the status back to available after the courier's
// order reaches a terminal state or the courier is replaced on an order.
func (s Status) Release() Status {
	return StatusAvailable
}
