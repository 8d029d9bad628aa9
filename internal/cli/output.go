package cli

import (
	"errors"

	"github.com/BFavetto/fars/internal/domain"
)

// Process exit statuses.
const (
	ExitOK       = 0
	ExitDataErr  = 1 // missing year file, unknown state, unreadable data
	ExitBadInput = 2 // year or state code that cannot be coerced, bad config
)

// ExitError tags a failed operation with the status the process exits with.
type ExitError struct {
	Status int
	Op     string
	Err    error
}

func (e *ExitError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func exitWith(status int, op string, err error) error {
	return &ExitError{Status: status, Op: op, Err: err}
}

// ExitStatus returns the status for a command's error: 0 for nil, the
// tagged status for an ExitError anywhere in the chain, ExitDataErr otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Status
	}
	return ExitDataErr
}

// classify tags a pipeline error: coercion failures are bad input, the rest
// are data errors.
func classify(op string, err error) error {
	var ce *domain.CoercionError
	if errors.As(err, &ce) {
		return exitWith(ExitBadInput, op, err)
	}
	return exitWith(ExitDataErr, op, err)
}
