package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerEmailIsRequired   = errors.New("customer email is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrCustomerAddressIsRequired = errors.New("customer address is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// Callers supply the customer identifier; registration fails if it is taken.
//
// Example:
//
//	customerID, _ := kernel.IDFromString("c1")
//	cmd, err := NewCreateCustomerCommand(customerID, "John Doe",
//	    "john@example.com", "+1234567890", "123 Main St")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the ID is valid and all profile fields are present.
// Returns an error if any validation fails.
func NewCreateCustomerCommand(customerID kernel.ID, name, email, phone, address string) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
		customerCommand.setEmail(email),
		customerCommand.setPhone(phone),
		customerCommand.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}

	c.address = address
	return nil
}
