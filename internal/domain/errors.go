// Package domain contains the quotation entity, the pricing rule and business errors.
// Domain errors describe business-level failures, not transport failures.
// Adapters map them to HTTP status codes or CLI exit messages.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no quotation exists for a well-formed id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates an id that is not a well-formed identifier for the store.
	ErrInvalidID = errors.New("invalid id")

	// ErrValidation indicates input violated a quotation field constraint.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the store could not be reached.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidIDError reports an id the store cannot interpret.
type InvalidIDError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s id %q", e.Entity, e.ID)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}

// NewInvalidIDError creates an invalid id error.
func NewInvalidIDError(entity, id string) error {
	return &InvalidIDError{Entity: entity, ID: id}
}

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ValidationErrors collects every field that failed in a single validation pass.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Add appends a field failure.
func (e *ValidationErrors) Add(field, message string, value any) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message, Value: value})
}

// Empty reports whether no failures were recorded.
func (e *ValidationErrors) Empty() bool {
	return e == nil || len(e.Errors) == 0
}

// Fields returns the names of the failing fields in the order they were found.
func (e *ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}

	return fields
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Err returns nil when nothing failed so callers can return it directly.
func (e *ValidationErrors) Err() error {
	if e.Empty() {
		return nil
	}

	return e
}

// UnavailableError provides context for store outages.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidID checks if an error is an invalid id error.
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
