package cmd

import (
	"errors"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// exitCoder is implemented by entry-point errors that pick their own
// process exit code. Codes below 1 are ignored so a failure never exits 0.
type exitCoder interface {
	ExitCode() int
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() > 0 {
		return coder.ExitCode()
	}

	switch {
	case errors.Is(err, oerrors.ErrDispatch):
		return ExitDispatchError
	case errors.Is(err, oerrors.ErrParse):
		return ExitParseError
	case errors.Is(err, oerrors.ErrConfiguration):
		return ExitConfigurationError
	default:
		return ExitGeneralError
	}
}
