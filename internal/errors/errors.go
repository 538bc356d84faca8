// Package errors defines the error taxonomy of the booter.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates a missing required input, a missing or
	// unreadable descriptor, or a descriptor without an entry point.
	ErrConfiguration = errors.New("configuration error")

	// ErrParse indicates a descriptor that could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrDispatch indicates an entry point that no loader could resolve.
	ErrDispatch = errors.New("dispatch error")

	// ErrNotFound indicates a resource or entry point was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path of the offending resource (optional).
	Location string

	// Field is the descriptor field involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the sentinel classifying the error.
	Cause error

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}
	if e.Field != "" {
		b.WriteString("\n  Field: ")
		b.WriteString(e.Field)
	}
	for k, v := range e.Context {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	if e.Err != nil {
		b.WriteString("\n  Cause: ")
		b.WriteString(e.Err.Error())
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the sentinel and the underlying error.
func (e *DetailError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewConfigurationError creates a configuration error with details.
func NewConfigurationError(message, location, hint string) error {
	return &DetailError{
		Type:     "configuration error",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfiguration,
	}
}

// NewParseError wraps a decoder failure for the descriptor at location.
func NewParseError(format, location string, err error) error {
	return &DetailError{
		Type:     "parse error",
		Message:  fmt.Sprintf("invalid %s descriptor", format),
		Location: location,
		Cause:    ErrParse,
		Err:      err,
	}
}

// NewDispatchError creates a dispatch error for an unresolvable entry point.
func NewDispatchError(entryPoint string, locations []string, err error) error {
	ctx := map[string]string{"Entry point": entryPoint}
	if len(locations) > 0 {
		ctx["Classpath"] = strings.Join(locations, ", ")
	}
	return &DetailError{
		Type:    "dispatch error",
		Message: "entry point not found",
		Context: ctx,
		Hint:    "Check that the entry point is registered in the binary or exported by a plugin on the classpath",
		Cause:   ErrDispatch,
		Err:     err,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
