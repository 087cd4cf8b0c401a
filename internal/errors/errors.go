package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was aborted by the user.
)

var (
	// ErrInvalidArgument is the sentinel matched by every invalid-argument
	// condition (missing computation, empty strategy list, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataIntegrity is the sentinel matched by MismatchError. It signals
	// that two summation strategies disagreed on the same input.
	ErrDataIntegrity = errors.New("data integrity fault")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an invalid argument passed to a core operation.
// It identifies which argument failed validation and matches
// ErrInvalidArgument through errors.Is.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Unwrap exposes ErrInvalidArgument so callers can test the error class
// without knowing the field.
func (e ValidationError) Unwrap() error { return ErrInvalidArgument }

// StrategySum is one strategy's result as reported in a MismatchError.
type StrategySum struct {
	Strategy string
	Sum      int64
}

// MismatchError reports that the summation strategies did not all agree on
// the sum of the same input. It is fatal and must not be retried: a race that
// produced a wrong sum once is not fixed by running it again.
type MismatchError struct {
	// Size is the length of the input sequence.
	Size int
	// Sums holds every strategy's result, in execution order.
	Sums []StrategySum
}

// Error returns a diagnostic listing every strategy's sum.
func (e MismatchError) Error() string {
	parts := make([]string, len(e.Sums))
	for i, s := range e.Sums {
		parts[i] = fmt.Sprintf("%s=%d", s.Strategy, s.Sum)
	}
	return fmt.Sprintf("strategies disagree on the sum of %d elements: %s", e.Size, strings.Join(parts, ", "))
}

// Unwrap exposes ErrDataIntegrity.
func (e MismatchError) Unwrap() error { return ErrDataIntegrity }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error returned by the application layers to the exit
// code the process should terminate with.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDataIntegrity):
		return ExitErrorMismatch
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
