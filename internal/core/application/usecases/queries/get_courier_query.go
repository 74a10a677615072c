package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves a single courier by ID.
type GetCourierQuery struct {
	courierID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for a courier.
// Returns an error if the courier ID is invalid.
func NewGetCourierQuery(courierID kernel.ID) (GetCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierQuery{}, err
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierQueryIsNotConstructed if validation fails.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the identifier of the requested courier.
func (q GetCourierQuery) CourierID() kernel.ID {
	return q.courierID
}
