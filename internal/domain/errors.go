package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MsgRequired is the validation message for mandatory fields, shared by
// the entity sub-packages and the HTTP request DTOs.
const MsgRequired = "is required"

// Sentinels for errors.Is. The HTTP layer maps each to a status code.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries per-field failures. errors.Is(err,
// ErrValidation) matches it; errors.As exposes Fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
