// Package apperror defines the error taxonomy shared by the data-access
// layer and its callers. Services return these typed errors for expected
// failures; callers classify them with errors.Is and read the message
// without parsing SQL details.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error pairs a taxonomy class with a human-readable message. The class is
// exposed through Unwrap so errors.Is(err, ErrNotFound) and friends work.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// BadRequest reports invalid input: malformed payloads, empty updates,
// impossible filter ranges.
func BadRequest(message string) *Error {
	return &Error{Err: ErrBadRequest, Message: message}
}

// Duplicate reports an insert that collides with an existing key. It is a
// bad request, not a conflict, matching the API contract.
func Duplicate(resource, key string) *Error {
	return &Error{Err: ErrBadRequest, Message: fmt.Sprintf("Duplicate %s: %s", resource, key)}
}

// NotFound reports a lookup that matched no row.
func NotFound(resource, key string) *Error {
	return &Error{Err: ErrNotFound, Message: fmt.Sprintf("No %s: %s", resource, key)}
}

// Unauthorized reports a failed credential check or a privilege violation.
func Unauthorized(message string) *Error {
	return &Error{Err: ErrUnauthorized, Message: message}
}
