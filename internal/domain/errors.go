package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound marks a year file that does not exist at load time.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidYear marks a year that cannot be coerced or loaded.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidState marks a state code absent from the loaded data.
	ErrInvalidState = errors.New("invalid STATE number")
)

// FileNotFoundError carries the path that could not be found.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q does not exist", e.Path)
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// InvalidStateError names a state code that does not occur in a year's STATE column.
type InvalidStateError struct {
	State StateCode
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// CoercionError reports an input that could not be turned into an integer key.
// It matches Kind (ErrInvalidYear or ErrInvalidState) and the parse cause via errors.Is.
type CoercionError struct {
	Field string
	Input any
	Kind  error
	Cause error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot use %#v as %s: %v", e.Input, e.Field, e.Cause)
}

func (e *CoercionError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}
