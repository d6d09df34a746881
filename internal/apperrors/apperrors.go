package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the storefront. Services wrap these with context via
// the helper constructors; handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrDuplicate   = errors.New("duplicate")
	ErrPersistence = errors.New("persistence failure")
)

// NotFoundf returns an error matching ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

// Validationf returns an error matching ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return wrap(ErrValidation, format, args...)
}

// Duplicatef returns an error matching ErrDuplicate with a formatted message.
func Duplicatef(format string, args ...any) error {
	return wrap(ErrDuplicate, format, args...)
}

// Persistencef returns an error matching ErrPersistence with a formatted message.
func Persistencef(format string, args ...any) error {
	return wrap(ErrPersistence, format, args...)
}

func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
