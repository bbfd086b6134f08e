// Package apperror defines the domain failure kinds shared by services and
// the HTTP layer. Services return *AppError values (possibly wrapped with %w);
// handlers map the kind to a status code with errors.Is.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type AppError struct {
	Err     error    // kind, one of the Err* sentinels
	Message string   // human-readable message
	Details []string // optional list of field messages (validation only)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with ID %s not found", resource, id),
	}
}

// NotFoundf is NotFound with a free-form message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

// Forbidden returns an AppError indicating the caller lacks permission.
func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func BadRequest(format string, args ...any) *AppError {
	return &AppError{Err: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Validation reports request fields that failed shape validation.
func Validation(details ...string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: strings.Join(details, ", "),
		Details: details,
	}
}

// Is reports whether err carries the given kind. It is a shorthand for
// errors.Is that reads better at call sites in tests.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}
