package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for restaurant construction.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCuisineIsRequired is returned when attempting to create a restaurant without a cuisine tag.
	ErrCuisineIsRequired = errs.NewValueIsRequiredError("cuisine")
	// ErrAddressIsRequired is returned when attempting to create a restaurant without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrRatingIsInvalid is returned when a restaurant rating is negative.
	ErrRatingIsInvalid = errs.NewValueIsInvalidError("rating")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a restaurant whose menu customers order from.
// It is read-mostly reference data: the ordering workflow only reads the
// identifier and the active flag.
//
// Invariants:
//   - Must have a valid identifier
//   - Name, cuisine and address are non-empty
//   - Rating is non-negative
type Restaurant struct {
	id           kernel.ID
	name         string
	cuisine      string
	deliveryTime string
	rating       float64
	isActive     bool
	address      string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a new active Restaurant.
//
// Parameters:
//   - id: Unique identifier
//   - name: Display name (must be non-empty)
//   - cuisine: Cuisine tag used for filtering, e.g. "Italian" (must be non-empty)
//   - deliveryTime: Free-text delivery estimate, e.g. "30-40 min"
//   - rating: Aggregate rating (must be non-negative)
//   - address: Street address (must be non-empty)
func NewRestaurant(id kernel.ID, name, cuisine, deliveryTime string, rating float64, address string) (*Restaurant, error) {
	return RestoreRestaurant(id, name, cuisine, deliveryTime, rating, true, address)
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage,
// including its active flag.
func RestoreRestaurant(
	id kernel.ID,
	name, cuisine, deliveryTime string,
	rating float64,
	isActive bool,
	address string,
) (*Restaurant, error) {
	r := &Restaurant{
		deliveryTime: deliveryTime,
		isActive:     isActive,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCuisine(cuisine),
		r.setRating(rating),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Cuisine returns the cuisine tag.
func (r *Restaurant) Cuisine() string {
	return r.cuisine
}

// DeliveryTime returns the free-text delivery estimate.
func (r *Restaurant) DeliveryTime() string {
	return r.deliveryTime
}

// Rating returns the aggregate rating.
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCuisine(cuisine string) error {
	if cuisine == "" {
		return ErrCuisineIsRequired
	}
	r.cuisine = cuisine
	return nil
}

func (r *Restaurant) setRating(rating float64) error {
	if rating < 0 {
		return ErrRatingIsInvalid
	}
	r.rating = rating
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	r.address = address
	return nil
}
