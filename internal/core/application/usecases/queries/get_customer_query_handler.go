package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves customer profiles from the database.
//
// Example:
//
//	handler := NewGetCustomerQueryHandler(db)
//	query, _ := NewGetCustomerQuery(customerID)
//
//	profile, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // customer does not exist
//	}
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer profile queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query to retrieve a customer profile.
// Returns an object-not-found error if no customer has the requested ID.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var resp CustomerResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			address,
			created_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID().String()).Row()

	err := row.Scan(&resp.ID, &resp.Name, &resp.Email, &resp.Phone, &resp.Address, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
	}
	if err != nil {
		return CustomerResponse{}, err
	}

	return resp, nil
}
