// Package apperror defines the application error taxonomy and its mapping
// to HTTP status codes, so the delivery layer can translate service and
// repository failures exhaustively.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error
type Kind int

const (
	// Unknown is for unspecified errors
	Unknown Kind = iota
	// Validation represents missing or malformed required fields
	Validation
	// Conflict represents a uniqueness conflict (e.g. duplicate username)
	Conflict
	// Auth represents failed credential verification
	Auth
	// NotFound represents a missing record
	NotFound
	// Storage represents a connection or query failure against the database
	Storage
)

// Error is the application error type. It carries a user-facing message
// and optionally wraps the underlying cause for logging.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error kind.
// Conflict maps to 400 rather than 409: a duplicate signup is surfaced to
// clients as a plain client error.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Storage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON error body returned to API clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToResponse converts the error to its client-facing body. Only the
// message is exposed, never the wrapped cause.
func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// NewValidation creates a Validation error
func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

// NewConflict creates a Conflict error
func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// NewAuth creates an Auth error
func NewAuth(message string) *Error {
	return &Error{Kind: Auth, Message: message}
}

// NewNotFound creates a NotFound error
func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewStorage creates a Storage error wrapping the underlying failure
func NewStorage(message string, err error) *Error {
	return &Error{Kind: Storage, Message: message, Err: err}
}

// FromError extracts an *Error from an error chain.
func FromError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	return isKind(err, Validation)
}

// IsConflict checks if an error is a Conflict error
func IsConflict(err error) bool {
	return isKind(err, Conflict)
}

// IsAuth checks if an error is an Auth error
func IsAuth(err error) bool {
	return isKind(err, Auth)
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	return isKind(err, NotFound)
}

// IsStorage checks if an error is a Storage error
func IsStorage(err error) bool {
	return isKind(err, Storage)
}

func isKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
