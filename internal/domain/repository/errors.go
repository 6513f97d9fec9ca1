// Package repository contains the repository interfaces and related errors.
package repository

import "github.com/hapkiduki/uom-go/pkg/errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the data access layer to the application layer.
var (
	// ErrUnitNotFound is returned when a unit cannot be found by ID.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrDuplicateUnit is returned when two units share an ID.
	ErrDuplicateUnit = errors.New("unit id already exists")

	// ErrInvalidInput is returned when repository receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is a not found error.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUnitNotFound)
}

// IsDuplicateError checks if the error is a duplicate entry error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateUnit)
}
