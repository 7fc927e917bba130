package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so that upstream presentation logic can
// distinguish "fix your input" from "try again" from "resource is gone".
type Kind string

const (
	KindNotFound                 Kind = "NOT_FOUND"
	KindInvalidRequest           Kind = "INVALID_REQUEST"
	KindInvalidRoleOrOwnership   Kind = "INVALID_ROLE_OR_OWNERSHIP"
	KindDriverAlreadyInRides     Kind = "DRIVER_ALREADY_IN_RIDES"
	KindLocationResolutionFailed Kind = "LOCATION_RESOLUTION_FAILED"
	KindConcurrencyConflict      Kind = "CONCURRENCY_CONFLICT"
	KindInternal                 Kind = "INTERNAL"
)

// AppError carries an error kind alongside the message and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by kind so sentinel comparisons with errors.Is
// work across wrapping.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Kind == appErr.Kind
}

// New creates an AppError with a formatted message.
func New(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an AppError that preserves the underlying cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// KindOf extracts the kind of an error, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
