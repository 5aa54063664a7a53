// Package errors provides typed errors with exit codes for keep-alive.
//
// # Error Types
//
// KeepAliveError is the base error type that wraps an error with an exit code:
//
//	type KeepAliveError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0  // Success, including shutdown on SIGINT/SIGTERM
//	ExitGeneralError = 1  // General/unknown errors
//	ExitConfigError  = 2  // Configuration file or value invalid
//	ExitUsageError   = 3  // Malformed command line
//
// Probe failures never surface here: a missing tool or a failing command is
// a normal probe result, not an error.
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
