package courier

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleTypeIsRequired is returned when attempting to create a courier without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root whose only workflow-relevant mutable field is its
// availability status: assignment flips it to busy, release flips it back
// to available, and manual overrides may set any status including offline.
//
// Business rules:
//   - Courier must have a valid ID, non-empty name, phone and vehicle type
//   - Only an available courier can be assigned to an order
//   - Releasing a courier always returns it to available
//
// Example usage:
//
//	id, _ := kernel.IDFromString("courier1")
//	c, err := NewCourier(id, "Mike Courier", "+1112223333", "bicycle")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier starts available and is ready for assignment
type Courier struct {
	// id uniquely identifies the courier
	id kernel.ID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number
	phone string
	// vehicleType describes the vehicle, e.g. "bicycle" or "car"
	vehicleType string
	// status is the availability state driving the assignment workflow
	status Status
	// currentLocation is a free-text location label, may be empty
	currentLocation string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in available status.
//
// Parameters:
//   - id: Unique identifier (must be valid)
//   - name: Human-readable name (must be non-empty)
//   - phone: Contact phone (must be non-empty)
//   - vehicleType: Vehicle description (must be non-empty)
//
// Returns the created courier, or an aggregated validation error if any
// parameter is invalid.
func NewCourier(id kernel.ID, name, phone, vehicleType string) (*Courier, error) {
	return RestoreCourier(id, name, phone, vehicleType, StatusAvailable, "")
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its status and location label. The restored courier behaves
// identically to one created through normal domain operations.
func RestoreCourier(id kernel.ID, name, phone, vehicleType string, status Status, currentLocation string) (*Courier, error) {
	c := &Courier{
		currentLocation: currentLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicleType(vehicleType),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.ID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// VehicleType returns the courier's vehicle description.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// Status returns the courier's current availability status.
func (c *Courier) Status() Status {
	return c.status
}

// CurrentLocation returns the free-text location label. May be empty.
func (c *Courier) CurrentLocation() string {
	return c.currentLocation
}

// IsAvailable reports whether the courier can take a new order.
func (c *Courier) IsAvailable() bool {
	return c.status == StatusAvailable
}

// Assign marks the courier busy.
//
// Only an available courier can be assigned; otherwise a conflict error
// is returned and the status is unchanged.
func (c *Courier) Assign() error {
	newStatus, err := c.status.Assign()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Release returns the courier to available after its order reached a
// terminal state or the courier was replaced on an order.
func (c *Courier) Release() {
	c.status = c.status.Release()
}

// SetStatus overwrites the status unconditionally.
// Used by the manual status-update operation; the new status only has to
// be a valid enum value, no transition rules apply.
func (c *Courier) SetStatus(status Status) error {
	return c.setStatus(status)
}

// SetCurrentLocation updates the free-text location label.
func (c *Courier) SetCurrentLocation(location string) {
	c.currentLocation = location
}

func (c *Courier) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
