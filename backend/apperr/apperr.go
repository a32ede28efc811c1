// Package apperr defines the error values shared by the service layer.
// Controllers translate these to HTTP statuses; nothing below the
// controllers knows about transport codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks caller input as missing or malformed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps a persistence-layer failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// GenerationError wraps a failure to reach the external question generator.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("question generation: %v", e.Err) }
func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedOutputError means the generator replied but its reply could not
// be normalized into questions. Raw preserves the complete reply for
// server-side diagnostics; it must never be sent to the client verbatim.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generator output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
