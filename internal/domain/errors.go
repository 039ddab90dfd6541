package domain

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced guest, room or reservation does not
// exist. The HTTP layer maps it to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError signals a structurally valid request that violates a
// business rule. The HTTP layer maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnavailableError signals that a room cannot be attached to a new
// reservation. The HTTP layer maps it to 400.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string { return e.Message }

// DuplicateError signals a unique-constraint violation, such as a national ID
// that is already registered. The HTTP layer maps it to 400.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Unavailable builds an UnavailableError with a formatted message.
func Unavailable(format string, args ...any) error {
	return &UnavailableError{Message: fmt.Sprintf(format, args...)}
}

// Duplicate builds a DuplicateError with a formatted message.
func Duplicate(format string, args ...any) error {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsUnavailable reports whether err is an UnavailableError.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var target *DuplicateError
	return errors.As(err, &target)
}
