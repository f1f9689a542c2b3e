package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when the request is invalid (e.g. a bad
	// status value or a malformed form definition).
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when the caller is not allowed to perform
	// the operation.
	ErrForbidden = errors.New("forbidden")
)
