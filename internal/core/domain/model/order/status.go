package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> cooking ──> ready_for_delivery ──> on_way ──> delivered
//	   │            │            │                │                │
//	   └────────────┴────────────┴────────────────┴────────────────┴──> cancelled
//
// delivered and cancelled are terminal: no further transitions are allowed.
//
// Status values are stored and transmitted as their string representation.
type Status string

const (
	// StatusPending is the initial status of a freshly created order.
	StatusPending Status = "pending"

	// StatusConfirmed means the restaurant has accepted the order.
	StatusConfirmed Status = "confirmed"

	// StatusCooking means the restaurant is preparing the order.
	StatusCooking Status = "cooking"

	// StatusReadyForDelivery means the order awaits courier pickup.
	StatusReadyForDelivery Status = "ready_for_delivery"

	// StatusOnWay means the courier is delivering the order.
	StatusOnWay Status = "on_way"

	// StatusDelivered means the order reached the customer. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled means the order was aborted. Terminal.
	StatusCancelled Status = "cancelled"
)

// next maps each status to its successor in the linear delivery flow.
func next(s Status) (Status, bool) {
	successors := map[Status]Status{
		StatusPending:          StatusConfirmed,
		StatusConfirmed:        StatusCooking,
		StatusCooking:          StatusReadyForDelivery,
		StatusReadyForDelivery: StatusOnWay,
		StatusOnWay:            StatusDelivered,
	}
	n, ok := successors[s]
	return n, ok
}

// Validate checks if the Status value is one of the seven defined statuses.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCooking, StatusReadyForDelivery,
		StatusOnWay, StatusDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks whether moving to target is a legal transition.
//
// Legal transitions are the single step forward in the linear flow, plus
// cancellation from any non-terminal status. Transitions out of delivered
// or cancelled are always rejected.
//
// Returns nil if the transition is allowed, or an invalid-state error
// describing the rejected transition.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order in terminal status %s cannot transition to %s", s, target))
	}

	if target == StatusCancelled {
		return nil
	}

	if n, ok := next(s); ok && n == target {
		return nil
	}

	return errs.NewInvalidStateError(
		fmt.Sprintf("transition from %s to %s is not allowed", s, target))
}
