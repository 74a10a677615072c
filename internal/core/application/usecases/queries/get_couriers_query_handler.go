package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCouriersQueryHandler lists the courier fleet from the database.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersQueryHandler creates a handler for courier listings.
// Requires a GORM database connection for query execution.
func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle executes the query to list couriers matching the status filter.
// Results are sorted by ID for consistent output.
func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 1)
	if query.Status() != "" {
		where = "WHERE status = ?"
		args = append(args, query.Status().String())
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			status,
			current_location
		FROM couriers
		`+where+`
		ORDER BY id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CourierResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Phone,
			&resp.VehicleType,
			&resp.Status,
			&resp.CurrentLocation,
		); err != nil {
			return nil, err
		}
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
