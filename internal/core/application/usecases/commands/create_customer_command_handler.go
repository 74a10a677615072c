package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	cmd, _ := NewCreateCustomerCommand(customerID, "John Doe",
//	    "john@example.com", "+1234567890", "123 Main St")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Builds the customer aggregate and persists it; the repository reports a
// duplicate error if the identifier is already taken.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCustomer, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
