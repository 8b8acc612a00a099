package service

import (
	"errors"

	"bakehouse-api/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid status value")
)

// ValidationError rejects a payload with the full field-error map; the
// handler returns it whole, never a partial success.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string { return "validation failed" }
