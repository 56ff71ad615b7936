package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when credentials or tokens do not check out
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks access to the entity
	ErrForbidden = errors.New("forbidden")

	// ErrProjectBlocked is returned when ingestion touches a specification
	// key frozen by a pending conflict
	ErrProjectBlocked = errors.New("project blocked by pending conflict")

	// ErrSessionEnded is returned when mutating an ended session
	ErrSessionEnded = errors.New("session has ended")

	// ErrConflictResolved is returned when resolving an already-resolved
	// conflict; terminal resolutions are absorbing
	ErrConflictResolved = errors.New("conflict already resolved")

	// ErrConcurrentModification is returned when a serialized write loses
	// its race beyond the retry budget
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
