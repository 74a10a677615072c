package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrCourierNameIsRequired        = errors.New("courier name is required")
	ErrCourierPhoneIsRequired       = errors.New("courier phone is required")
	ErrCourierVehicleTypeIsRequired = errors.New("courier vehicle type is required")
)

// CreateCourierCommand represents a request to register a new courier.
// Status and current location are optional; an omitted status defaults to
// available so the courier can take orders immediately.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID       kernel.ID
	name            string
	phone           string
	vehicleType     string
	status          courier.Status
	currentLocation string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// An empty status defaults to available; a non-empty status must be a
// valid courier status. Returns an error if any validation fails.
func NewCreateCourierCommand(
	courierID kernel.ID,
	name, phone, vehicleType string,
	status courier.Status,
	currentLocation string,
) (CreateCourierCommand, error) {
	courierCommand := CreateCourierCommand{
		currentLocation: currentLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierCommand.setCourierID(courierID),
		courierCommand.setName(name),
		courierCommand.setPhone(phone),
		courierCommand.setVehicleType(vehicleType),
		courierCommand.setStatus(status),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c CreateCourierCommand) CourierID() kernel.ID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone number.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// VehicleType returns the courier's vehicle type (bike, car, scooter).
func (c CreateCourierCommand) VehicleType() string {
	return c.vehicleType
}

// Status returns the courier's initial availability status.
func (c CreateCourierCommand) Status() courier.Status {
	return c.status
}

// CurrentLocation returns the courier's starting location, if provided.
func (c CreateCourierCommand) CurrentLocation() string {
	return c.currentLocation
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrCourierVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateCourierCommand) setStatus(status courier.Status) error {
	if status == "" {
		c.status = courier.StatusAvailable
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
