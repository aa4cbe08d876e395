package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrNetwork            = errors.New("network unreachable")
	ErrInternalServer     = errors.New("internal server error")
	ErrBadRequest         = errors.New("bad request")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Kind classifies an APIError per the failure taxonomy the client works with.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNetwork
	KindServer
)

// FieldError points a message at a single request field, e.g. a duplicate
// email on registration.
type FieldError struct {
	Field   string
	Message string
}

// APIError is the normalized failure shape every outbound request resolves
// to. Containers store Message verbatim; the Kind and optional Field carry
// the structure the view needs.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Field   *FieldError
}

func (e *APIError) Error() string {
	if e.Field != nil {
		return fmt.Sprintf("%s (field %s)", e.Message, e.Field.Field)
	}
	return e.Message
}

// Unwrap maps the Kind onto the package sentinels so callers can use
// errors.Is without inspecting the struct.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindValidation:
		return ErrInvalidInput
	case KindAuth:
		return ErrUnauthorized
	case KindConflict:
		return ErrConflict
	case KindNetwork:
		return ErrNetwork
	case KindServer:
		return ErrInternalServer
	default:
		return nil
	}
}

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Message returns the normalized message of err, falling back to Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := AsAPIError(err); ok {
		return e.Message
	}
	return err.Error()
}

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
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

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized returns true if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConflict returns true if the error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNetwork returns true if the error is a network error
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsInternalServer returns true if the error is an internal server error
func IsInternalServer(err error) bool {
	return errors.Is(err, ErrInternalServer)
}
