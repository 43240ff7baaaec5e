package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is raised locally, before any network round-trip, when a
// mutation's input is unusable (empty note text, blank fee charge, zero
// changed fields, missing company name).
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError is raised when a fetch by id returns no entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// APIError covers both transport failures and non-2xx responses from the
// booking API. StatusCode is 0 for transport failures. Message carries the
// server-provided text when the response body had one, else a generic one.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsNetwork reports whether the error represents a transport failure rather
// than a server response.
func (e *APIError) IsNetwork() bool { return e.StatusCode == 0 }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
