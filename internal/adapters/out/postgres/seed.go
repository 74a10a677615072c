package postgres

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// SeedDemoData inserts a small demo dataset: two customers, two restaurants
// with two dishes each, and two couriers. Rows go through the repositories
// so the aggregates are validated like any other write; rows that already
// exist are skipped, which keeps seeding safe to run on every startup.
// Runs outside a transaction: a duplicate insert would abort a postgres
// transaction, and reseeding must skip past existing rows instead.
func SeedDemoData(db *gorm.DB) error {
	ctx := context.Background()
	uow := NewGormUnitOfWorkFactory(db).Create()

	if err := seedCustomers(ctx, uow.CustomerRepository()); err != nil {
		return err
	}
	if err := seedRestaurants(ctx, uow.RestaurantRepository()); err != nil {
		return err
	}
	return seedCouriers(ctx, uow.CourierRepository())
}

// skipExisting filters out duplicate errors so reseeding leaves rows untouched.
func skipExisting(err error) error {
	if errors.Is(err, errs.ErrDuplicate) {
		return nil
	}
	return err
}

func seedCustomers(ctx context.Context, repo ports.CustomerRepository) error {
	seeds := []struct {
		id, name, email, phone, address string
	}{
		{"c1", "John Doe", "john@example.com", "+1234567890", "123 Main St"},
		{"c2", "Jane Smith", "jane@example.com", "+1234567891", "456 Oak Ave"},
	}

	for _, seed := range seeds {
		id, err := kernel.IDFromString(seed.id)
		if err != nil {
			return err
		}

		newCustomer, err := customer.NewCustomer(id, seed.name, seed.email, seed.phone, seed.address)
		if err != nil {
			return err
		}

		if err = skipExisting(repo.Add(ctx, newCustomer)); err != nil {
			return err
		}
	}

	return nil
}

func seedRestaurants(ctx context.Context, repo ports.RestaurantRepository) error {
	restaurantSeeds := []struct {
		id, name, cuisine, deliveryTime string
		rating                          float64
		address                         string
	}{
		{"r1", "Pizza Palace", "Italian", "30-40 min", 4.5, "789 Pizza St"},
		{"r2", "Sushi Spot", "Japanese", "40-50 min", 4.8, "321 Sushi Ave"},
	}

	for _, seed := range restaurantSeeds {
		id, err := kernel.IDFromString(seed.id)
		if err != nil {
			return err
		}

		newRestaurant, err := restaurant.NewRestaurant(
			id, seed.name, seed.cuisine, seed.deliveryTime, seed.rating, seed.address)
		if err != nil {
			return err
		}

		if err = skipExisting(repo.Add(ctx, newRestaurant)); err != nil {
			return err
		}
	}

	menuItemSeeds := []struct {
		id, restaurantID, name, description string
		price                               float64
		category                            string
	}{
		{"m1", "r1", "Margherita Pizza", "Classic tomato and mozzarella", 12.99, "Pizza"},
		{"m2", "r1", "Pepperoni Pizza", "Pepperoni and cheese", 14.99, "Pizza"},
		{"m3", "r2", "California Roll", "Crab, avocado, cucumber", 8.99, "Rolls"},
		{"m4", "r2", "Salmon Nigiri", "Fresh salmon over rice", 6.99, "Nigiri"},
	}

	for _, seed := range menuItemSeeds {
		id, err := kernel.IDFromString(seed.id)
		if err != nil {
			return err
		}

		restaurantID, err := kernel.IDFromString(seed.restaurantID)
		if err != nil {
			return err
		}

		newMenuItem, err := restaurant.NewMenuItem(
			id, restaurantID, seed.name, seed.description, seed.price, seed.category)
		if err != nil {
			return err
		}

		if err = skipExisting(repo.AddMenuItem(ctx, newMenuItem)); err != nil {
			return err
		}
	}

	return nil
}

func seedCouriers(ctx context.Context, repo ports.CourierRepository) error {
	seeds := []struct {
		id, name, phone, vehicleType, location string
	}{
		{"courier1", "Mike Wilson", "+1234567892", "bike", "Downtown"},
		{"courier2", "Sarah Johnson", "+1234567893", "car", "Uptown"},
	}

	for _, seed := range seeds {
		id, err := kernel.IDFromString(seed.id)
		if err != nil {
			return err
		}

		newCourier, err := courier.NewCourier(id, seed.name, seed.phone, seed.vehicleType)
		if err != nil {
			return err
		}
		newCourier.SetCurrentLocation(seed.location)

		if err = skipExisting(repo.Add(ctx, newCourier)); err != nil {
			return err
		}
	}

	return nil
}
