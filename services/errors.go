package services

import "fmt"

// Kind classifies a service error so resolvers and tests can branch on
// the failure category rather than on message text.
type Kind string

const (
	KindDuplicateEmail  Kind = "duplicate_email"
	KindInvalidFormat   Kind = "invalid_format"
	KindInvalidValue    Kind = "invalid_value"
	KindNotFound        Kind = "not_found"
	KindPartialMismatch Kind = "partial_mismatch"
	KindInternal        Kind = "internal"
)

// Error represents an application error with a classification and a
// human-readable message surfaced to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
