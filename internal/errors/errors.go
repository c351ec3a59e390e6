// Package errors provides structured errors and exit codes for the create-fs-app CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Each maps to one exit code in ExitCodeFromError.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrRetrieval     = errors.New("retrieval error")
	ErrInstall       = errors.New("install error")
	ErrPermission    = errors.New("permission denied")
)

// DetailError is a user-facing failure. Cause is normally one of the
// sentinels above so the exit code can be derived from it.
type DetailError struct {
	Type    string
	Message string

	// Location is the project or config path involved, if any.
	Location string
	// Field names the flag, prompt or config key at fault.
	Field string
	// Value is the rejected input.
	Value string

	Hint  string
	Cause error
}

func (e *DetailError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Type)
	for _, line := range [][2]string{
		{"Location", e.Location},
		{"Field", e.Field},
		{"Value", e.Value},
	} {
		if line[1] != "" {
			fmt.Fprintf(&b, "  %s: %s\n", line[0], line[1])
		}
	}
	fmt.Fprintf(&b, "\n  %s\n", e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}
	return b.String()
}

func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports bad user input for field.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewInvalidValueError reports a value outside the accepted set of a stack
// option. valid is shown in the hint.
func NewInvalidValueError(field, label, value, valid string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: fmt.Sprintf("invalid %s: %q", label, value),
		Field:   field,
		Value:   value,
		Hint:    "Valid options: " + valid,
		Cause:   ErrValidation,
	}
}

// NewNotFoundError reports a missing template, preset or directory.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewAlreadyExistsError reports a target path that is already taken.
func NewAlreadyExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "directory exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrAlreadyExists,
	}
}

// Wrap prefixes sentinel with message.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
