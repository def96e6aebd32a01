// Package apperrors defines the error taxonomy shared by the payment
// lifecycle components. Handlers classify errors with errors.As and map
// them onto HTTP status codes; everything else wraps with %w.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports bad input. Never retried, maps to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for the named field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthError reports a failure obtaining or validating provider credentials.
// Surfaced, not retried automatically.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider auth failed with status %d: %s", e.StatusCode, e.Body)
}

// ProviderError reports that the payment network rejected a request or was
// unreachable. StatusCode is zero for transport-level failures.
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unreachable: %v", e.Err)
	}
	return fmt.Sprintf("provider rejected request with status %d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Unreachable reports whether the provider could not be reached at all, as
// opposed to rejecting the request.
func (e *ProviderError) Unreachable() bool {
	return e.Err != nil || e.StatusCode >= 500
}

// NotFoundError reports an unknown transaction id, maps to 404.
type NotFoundError struct {
	TransactionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.TransactionID)
}

// StoreError reports a persistence failure. Logged, never blocks the
// primary response: payment responses are returned even if the durability
// write fails.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Classification helpers used at the handler boundary.

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func AsProvider(err error) (*ProviderError, bool) {
	var pe *ProviderError
	ok := errors.As(err, &pe)
	return pe, ok
}
