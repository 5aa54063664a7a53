package testutil

import (
	"embed"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture loads a TOML config fixture through config.Load.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	fsys := system.NewMockFS()
	fsys.AddFile("/fixtures/"+name, data, 0644)
	return config.Load(fsys, "/fixtures/"+name)
}

// ValidConfig returns the valid config fixture.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("keepalive.toml")
}

// InvalidConfig loads the invalid config fixture and returns the
// resulting error.
func InvalidConfig() error {
	_, err := LoadConfigFixture("invalid_keepalive.toml")
	return err
}

// TailscaleStatus returns `tailscale status --json` output for a connected node.
func TailscaleStatus() []byte {
	return mustFixture("tailscale_status.json")
}

// TailscaleNeedsLogin returns `tailscale status --json` output for a node
// waiting for authentication.
func TailscaleNeedsLogin() []byte {
	return mustFixture("tailscale_status_needs_login.json")
}

// ComposeLogs returns sample `docker compose logs` output.
func ComposeLogs() []byte {
	return mustFixture("compose_logs.txt")
}

func mustFixture(name string) []byte {
	data, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return data
}
