// Package domain contains the quote collection's business types and errors.
// Domain errors describe business-level failures, not transport failures;
// adapters translate them into HTTP statuses.
package domain

import "errors"

// Sentinel errors for use with errors.Is(). Every *Error unwraps to one.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation would break a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates caller input failed a business rule.
	ErrValidation = errors.New("validation failed")
)

// Error is a business rule failure. Kind is one of the sentinels and decides
// how adapters report it. Message is safe to show to callers.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewValidationError reports input that failed a rule. field may be empty
// when the whole input is unusable.
func NewValidationError(field, message string) error {
	return &Error{Kind: ErrValidation, Field: field, Message: message}
}

// NewConflictError reports a write that would break uniqueness.
func NewConflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// NewNotFoundError reports a read with nothing to return.
func NewNotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Message returns the caller-facing text of a domain error without the field
// prefix, or "" if err is not a domain error.
func Message(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return ""
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
