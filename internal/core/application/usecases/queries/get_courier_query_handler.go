package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierQueryHandler retrieves a single courier from the database.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier lookups.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query to retrieve a courier by ID.
// Returns an object-not-found error if no courier has the requested ID.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	var resp CourierResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			status,
			current_location
		FROM couriers
		WHERE id = ?
	`, query.CourierID().String()).Row()

	err := row.Scan(
		&resp.ID, &resp.Name, &resp.Phone, &resp.VehicleType,
		&resp.Status, &resp.CurrentLocation)
	if errors.Is(err, sql.ErrNoRows) {
		return CourierResponse{}, errs.NewObjectNotFoundError("courierId", query.CourierID().String())
	}
	if err != nil {
		return CourierResponse{}, err
	}

	return resp, nil
}
