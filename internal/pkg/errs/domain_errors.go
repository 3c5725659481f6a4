package errs

import "errors"

// Sentinel errors shared across usecase layers.
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking conflict")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
