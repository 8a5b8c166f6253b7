// Package errs defines the error taxonomy shared by the bindery services.
// Every failure a service raises on purpose carries one of the Kind sentinels,
// so callers can branch with errors.Is while still showing the message as-is.
package errs

import (
	"errors"
	"fmt"
)

// Kind sentinels.
var (
	// ErrNotFound: an id does not exist in the backing store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState: the entity is not in the status the operation requires.
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict: a uniqueness or one-to-one invariant would be violated.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument: a caller-supplied value fails basic validation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a typed failure with a user-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds an ErrNotFound error.
func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, format, args...)
}

// InvalidState builds an ErrInvalidState error.
func InvalidState(format string, args ...any) error {
	return newf(ErrInvalidState, format, args...)
}

// Conflict builds an ErrConflict error.
func Conflict(format string, args ...any) error {
	return newf(ErrConflict, format, args...)
}

// InvalidArgument builds an ErrInvalidArgument error.
func InvalidArgument(format string, args ...any) error {
	return newf(ErrInvalidArgument, format, args...)
}

// KindOf returns the kind sentinel carried by err, or nil for untyped errors.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
