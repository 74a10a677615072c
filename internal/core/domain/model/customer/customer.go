// Package customer contains the Customer entity.
// Customers are reference data for the ordering workflow: they own a cart,
// place orders, and supply the delivery address. Once created a customer is
// immutable; there is no update path.
package customer

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for customer construction.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAddressIsRequired is returned when attempting to create a customer without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a registered customer of the food-delivery service.
//
// Invariants:
//   - Must have a valid identifier
//   - Name, email, phone and address are non-empty
//   - Email is unique across customers (enforced by the persistence layer)
//
// The struct uses private fields to ensure encapsulation; instances are
// created through NewCustomer or restored from storage via RestoreCustomer.
type Customer struct {
	id        kernel.ID
	name      string
	email     string
	phone     string
	address   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the registration timestamp set to now.
//
// Parameters:
//   - id: Unique identifier (client-supplied, must be valid)
//   - name: Human-readable name (must be non-empty)
//   - email: Contact email, unique per customer (must be non-empty)
//   - phone: Contact phone (must be non-empty)
//   - address: Default delivery address (must be non-empty)
//
// Returns the created customer, or an aggregated validation error if any
// parameter is invalid.
func NewCustomer(id kernel.ID, name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage,
// preserving the original registration timestamp.
func RestoreCustomer(id kernel.ID, name, email, phone, address string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.ID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c *Customer) Address() string {
	return c.address
}

// CreatedAt returns the registration timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
