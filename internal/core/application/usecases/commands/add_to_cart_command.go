package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddToCartCommand represents a request to add a menu item to a customer's cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	menuItemID kernel.ID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a menu item to a cart.
// Validates that both identifiers are valid and quantity is positive.
// Returns an error if any validation fails.
func NewAddToCartCommand(customerID, menuItemID kernel.ID, quantity int) (AddToCartCommand, error) {
	cartCommand := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setMenuItemID(menuItemID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToCartCommandIsNotConstructed if validation fails.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c AddToCartCommand) CustomerID() kernel.ID {
	return c.customerID
}

// MenuItemID returns the identifier of the menu item being added.
func (c AddToCartCommand) MenuItemID() kernel.ID {
	return c.menuItemID
}

// Quantity returns how many units of the item to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setMenuItemID(menuItemID kernel.ID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
