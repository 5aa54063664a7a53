// Package logging provides logging utilities for keep-alive.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// The heartbeat report itself is not written through this package; it goes
// to the scheduler's own writer. The CLI points user output at stderr with
// SetUserOutput so stdout carries only report lines.
//
// # Debug Logging
//
// Debug logs are written to stderr using slog and controlled by verbosity:
//
//	logging.Debug("running command", "cmd", "docker ps")
//	logging.Info("keep-alive loop started", "interval", interval)
//	logging.With("service", name).Warn("probe panicked", "panic", r)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loaded configuration from %s", path)
//	logging.UserWarning("Unknown service %q will be reported on every tick", name)
//	logging.UserError("%v", err)
//
// Output destinations (defaults, see SetUserOutput):
//   - UserInfo: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
