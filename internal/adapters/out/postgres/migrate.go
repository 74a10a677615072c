package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&courierrepo.CourierDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
