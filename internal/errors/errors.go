package errors

import (
	"errors"
	"fmt"
)

// Exit codes for keep-alive
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitUsageError   = 3
)

// KeepAliveError is the base error type for keep-alive
type KeepAliveError struct {
	Code    int
	Message string
	Cause   error
}

func (e *KeepAliveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *KeepAliveError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *KeepAliveError) ExitCode() int {
	return e.Code
}

// New creates a new KeepAliveError
func New(code int, message string) *KeepAliveError {
	return &KeepAliveError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a KeepAliveError
func Wrap(code int, message string, cause error) *KeepAliveError {
	return &KeepAliveError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *KeepAliveError {
	return Wrap(ExitConfigError, message, cause)
}

// InvalidConfig returns an error for a configuration value that fails validation
func InvalidConfig(field, reason string) *KeepAliveError {
	return New(ExitConfigError, fmt.Sprintf("invalid %s: %s", field, reason))
}

// UsageError returns an error for malformed command line usage
func UsageError(message string) *KeepAliveError {
	return New(ExitUsageError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var kaErr *KeepAliveError
	if errors.As(err, &kaErr) {
		return kaErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
