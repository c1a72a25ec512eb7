// Package errors provides sentinel errors and error types for the board view.
// It defines the failure conditions of configuration and grid construction as
// structured types that keep their context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIconTableIncomplete indicates a (piece, side) pair has no icon.
	ErrIconTableIncomplete = errors.New("icon table incomplete")

	// ErrMalformedGrid indicates a grid that does not cover each square exactly once.
	ErrMalformedGrid = errors.New("malformed grid")
)

// ConfigError wraps a configuration failure with the offending setting.
// It is returned at construction time, never while rendering.
type ConfigError struct {
	Err   error  // The underlying error
	Field string // Setting name (flag, env var or table key)
	Value string // Offending value, if any
}

// Error returns a formatted error message including the setting name.
func (e *ConfigError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	context := strings.Join(parts, " ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "configuration error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ConfigError wrapper.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GridError describes an invariant violation in a projected grid.
type GridError struct {
	Err    error  // The underlying error
	Row    int    // Display row of the offending cell
	Column int    // Display column of the offending cell
	Square string // Algebraic square, if known
	Reason string // What went wrong
}

// Error returns a formatted error message with the cell location.
func (e *GridError) Error() string {
	loc := fmt.Sprintf("row %d, column %d", e.Row, e.Column)
	if e.Square != "" {
		loc += fmt.Sprintf(" (%s)", e.Square)
	}
	if e.Reason != "" {
		loc += ": " + e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error.
func (e *GridError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
