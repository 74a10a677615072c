// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting couriers.
// Status is indexed because dispatch repeatedly scans for available couriers.
type CourierDTO struct {
	ID              string `gorm:"primaryKey"`
	Name            string
	Phone           string
	VehicleType     string
	Status          string `gorm:"index"`
	CurrentLocation string
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:              c.ID().String(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		VehicleType:     c.VehicleType(),
		Status:          c.Status().String(),
		CurrentLocation: c.CurrentLocation(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, dto.Name, dto.Phone, dto.VehicleType,
		courier.Status(dto.Status), dto.CurrentLocation)
}
