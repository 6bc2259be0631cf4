package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateProfile = errors.New("profile with the requested identifiers already exists")
	ErrInvalidData      = errors.New("invalid data provided for profile operations")
	ErrUnhandled        = errors.New("unexpected error")
	ErrProfileNotFound  = errors.New("profile not found")
)

// ValidationError reports a single field-level constraint violation.
// It unwraps to ErrInvalidData so callers can classify it with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidData }
