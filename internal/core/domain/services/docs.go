// Package services contains stateless domain services that coordinate
// behavior across aggregates. CourierSelector implements the best-effort
// courier selection policy used during order creation and dispatch.
package services
