package testutil

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/firefly-engineering/actions-keep-alive/internal/app"
	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/errors"
)

func TestLoadValidConfig(t *testing.T) {
	cfg, err := ValidConfig()
	if err != nil {
		t.Fatalf("ValidConfig() error: %v", err)
	}

	if cfg.Interval != 120 {
		t.Errorf("Interval = %d, want 120", cfg.Interval)
	}
	if cfg.Message != "Debug session open..." {
		t.Errorf("Message = %q", cfg.Message)
	}
	if strings.Join(cfg.Services, ",") != "tailscale,docker" {
		t.Errorf("Services = %v", cfg.Services)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.Display.Color != config.ColorNever {
		t.Errorf("Display.Color = %q, want never", cfg.Display.Color)
	}
	if !cfg.HealthChecks {
		t.Error("HealthChecks should keep its default")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	err := InvalidConfig()
	if err == nil {
		t.Fatal("InvalidConfig() should fail validation")
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	if _, err := LoadFixture("missing.json"); err == nil {
		t.Error("LoadFixture should fail for a missing fixture")
	}
}

func TestBackendFixtures(t *testing.T) {
	for name, data := range map[string][]byte{
		"tailscale_status.json":             TailscaleStatus(),
		"tailscale_status_needs_login.json": TailscaleNeedsLogin(),
	} {
		var v map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
	}

	if lines := strings.Count(string(ComposeLogs()), "\n"); lines != 3 {
		t.Errorf("compose logs fixture has %d lines, want 3", lines)
	}
}

func TestNewTestEnv(t *testing.T) {
	original := app.Default

	t.Run("installs app", func(t *testing.T) {
		env := NewTestEnv(t)
		if app.Default != env.App {
			t.Error("NewTestEnv should install its app as app.Default")
		}
		if app.Default.WorkDir != WorkDir {
			t.Errorf("WorkDir = %q, want %q", app.Default.WorkDir, WorkDir)
		}
	})

	if app.Default != original {
		t.Error("app.Default should be restored after the test")
	}
}

func TestTestEnv_Probes(t *testing.T) {
	env := NewTestEnv(t)
	env.InstallSSH()
	env.InstallTailscale(TailscaleStatus())
	env.InstallNgrok(true)
	env.InstallDocker([]string{"a1", "b2"}, 120, ComposeLogs())

	reg := env.App.Registry()
	ctx := context.Background()

	want := map[string]string{
		"tailscale": "Running",
		"docker":    "running",
		"ngrok":     "running",
		"ssh":       "available",
	}
	for name, status := range want {
		p, ok := reg.Lookup(name)
		if !ok {
			t.Fatalf("registry missing %s", name)
		}
		if got := p.Check(ctx).Status; got != status {
			t.Errorf("%s status = %q, want %q", name, got, status)
		}
	}
}
