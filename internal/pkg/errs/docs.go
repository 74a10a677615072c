// Package errs provides standardized error types for the food-delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the workflow engine
// reports to callers:
//   - ObjectNotFoundError: a referenced customer, restaurant, menu item,
//     courier or order does not exist
//   - ConflictError: the operation contradicts another object's state
//     (courier not available, mixed-restaurant cart)
//   - InvalidStateError: the target object cannot accept the operation
//     (empty cart, terminal order status)
//   - DuplicateError: a uniqueness violation on creation
//   - ValueIsRequiredError / ValueIsInvalidError: constructor validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the HTTP adapter classify failures with
// errors.Is and map them to status codes without parsing messages.
package errs
