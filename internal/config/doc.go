// Package config provides the run configuration for keep-alive.
//
// # Sources
//
// Configuration is assembled in three layers, later layers winning:
//
//   - Default(): interval 300s, all services, health checks, timestamps,
//     emoji and the startup banner enabled, colour auto-detected
//   - A TOML file: --config, or keepalive.toml in the working directory
//   - Command line flags that were explicitly set
//
// # File Format
//
//	interval = 120
//	services = ["tailscale", "docker"]
//	message = "Building project..."
//	health_checks = true
//	verbose = false
//	banner = true
//	command_timeout = 30
//
//	[display]
//	timestamp = true
//	emoji = false
//	color = "always"
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
// Unknown service names are accepted and reported on every tick.
package config
