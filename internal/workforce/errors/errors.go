package errors

import (
	"fmt"
	"strings"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrConflict     = fmt.Errorf("conflict")
)

// Kind classifies a rejected field value.
type Kind string

const (
	KindRequired         Kind = "required"
	KindLength           Kind = "length"
	KindPhoneFormat      Kind = "phone_format"
	KindMissingReference Kind = "missing_reference"
)

// Violation describes one failed constraint on one field.
type Violation struct {
	// Field is the API name of the offending field, e.g. "postalCode".
	Field string `json:"field"`
	// Value is the rejected value as submitted.
	Value string `json:"value"`
	// Kind is the constraint family that failed.
	Kind Kind `json:"kind"`
	// Message is the human-readable message shown to API clients.
	Message string `json:"message"`
}

// ValidationError carries every violation collected for a submitted entity.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Violations []Violation
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError returns nil when there is nothing to report.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
