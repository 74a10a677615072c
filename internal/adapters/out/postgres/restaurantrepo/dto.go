// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant and menu item persistence.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID           string  `gorm:"primaryKey"`
	Name         string
	Cuisine      string
	DeliveryTime string
	Rating       float64
	IsActive     bool    `gorm:"index"`
	Address      string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           string  `gorm:"primaryKey"`
	RestaurantID string  `gorm:"index"`
	Name         string
	Description  string
	Price        float64
	Category     string
	IsAvailable  bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:           r.ID().String(),
		Name:         r.Name(),
		Cuisine:      r.Cuisine(),
		DeliveryTime: r.DeliveryTime(),
		Rating:       r.Rating(),
		IsActive:     r.IsActive(),
		Address:      r.Address(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id, dto.Name, dto.Cuisine, dto.DeliveryTime, dto.Rating,
		dto.IsActive, dto.Address)
}

func menuItemFromDomain(m *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           m.ID().String(),
		RestaurantID: m.RestaurantID().String(),
		Name:         m.Name(),
		Description:  m.Description(),
		Price:        m.Price(),
		Category:     m.Category(),
		IsAvailable:  m.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.IDFromString(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id, restaurantID, dto.Name, dto.Description, dto.Price, dto.Category, dto.IsAvailable)
}
