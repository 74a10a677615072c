package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCourierStatusCommandIsNotConstructed = errors.New(
	"UpdateCourierStatusCommand must be created via NewUpdateCourierStatusCommand constructor",
)

// UpdateCourierStatusCommand represents a request to set a courier's
// availability status directly, e.g. a courier going offline at end of shift.
type UpdateCourierStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	status    courier.Status

	guard guard.ConstructorGuard
}

// NewUpdateCourierStatusCommand creates a command to set a courier's status.
// Returns an error if the ID is invalid or the status is not a known one.
func NewUpdateCourierStatusCommand(courierID kernel.ID, status courier.Status) (UpdateCourierStatusCommand, error) {
	if err := errors.Join(courierID.Validate(), status.Validate()); err != nil {
		return UpdateCourierStatusCommand{}, err
	}

	return UpdateCourierStatusCommand{
		courierID: courierID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCourierStatusCommandIsNotConstructed if validation fails.
func (c UpdateCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierStatusCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to update.
func (c UpdateCourierStatusCommand) CourierID() kernel.ID {
	return c.courierID
}

// Status returns the requested availability status.
func (c UpdateCourierStatusCommand) Status() courier.Status {
	return c.status
}
