package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the courier fleet, optionally narrowed to one
// status.
//
// Example:
//
//	query, _ := NewGetCouriersQuery(courier.StatusAvailable)
//	handler := NewGetCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list couriers: %w", err)
//	}
//	for _, c := range couriers {
//	    fmt.Printf("%s: %s\n", c.Name, c.Status)
//	}
type GetCouriersQuery struct {
	status courier.Status

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query to list couriers.
// Pass an empty status to include the whole fleet.
func NewGetCouriersQuery(status courier.Status) (GetCouriersQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetCouriersQuery{}, err
		}
	}

	return GetCouriersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCouriersQueryIsNotConstructed if validation fails.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// Status returns the status filter, or the empty status when unfiltered.
func (q GetCouriersQuery) Status() courier.Status {
	return q.status
}

// CourierResponse represents a courier with their current status.
type CourierResponse struct {
	ID              string
	Name            string
	Phone           string
	VehicleType     string
	Status          string
	CurrentLocation string
}
