// Package testutil provides test fixtures and utilities.
//
// This package contains embedded fixtures (config files and captured
// backend output) and a mock-backed application environment for command
// tests.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/keepalive.toml
//	fixtures/invalid_keepalive.toml
//	fixtures/tailscale_status.json
//	fixtures/tailscale_status_needs_login.json
//	fixtures/compose_logs.txt
//
// Config fixtures are loaded through config.Load, so they exercise the
// same decoding and validation as a real keepalive.toml:
//
//	cfg, err := testutil.ValidConfig()
//	err := testutil.InvalidConfig()
//
// # Test Environment
//
// NewTestEnv swaps app.Default for one backed by system.MockFS and
// system.MockExecutor, restored when the test ends:
//
//	env := testutil.NewTestEnv(t)
//	env.InstallTailscale(testutil.TailscaleStatus())
//	env.InstallDocker([]string{"a1"}, 300, testutil.ComposeLogs())
//	env.WriteConfig(`services = ["tailscale", "docker"]`)
package testutil
