// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. Implements the repository pattern for the
// customer aggregate, converting between domain entities and database rows.
package customerrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        string    `gorm:"primaryKey"`
	Name      string
	Email     string    `gorm:"uniqueIndex"`
	Phone     string
	Address   string
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address, dto.CreatedAt)
}
