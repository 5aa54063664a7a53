package heartbeat

import (
	"strings"
	"testing"
	"time"

	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
	"github.com/firefly-engineering/actions-keep-alive/internal/sysinfo"
)

func TestPrintBanner_Configuration(t *testing.T) {
	cfg := testConfig()
	cfg.Interval = 120
	cfg.Services = []string{"tailscale", "docker"}
	cfg.Verbose = true
	s, out := newTestScheduler(cfg, probe.NewRegistryOf())

	s.PrintBanner(nil)

	got := out.String()
	for _, want := range []string{
		"Actions Keep Alive Started",
		"Configuration:\n",
		"  Interval: 120 seconds (2 minutes)\n",
		"  Monitoring: tailscale, docker\n",
		"  Health Checks: Enabled\n",
		"  Verbose: Yes\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "System Information") {
		t.Error("system information should be omitted without info")
	}
}

func TestPrintBanner_AllServicesOmitsMonitoring(t *testing.T) {
	cfg := testConfig()
	cfg.HealthChecks = false
	s, out := newTestScheduler(cfg, probe.NewRegistryOf())

	s.PrintBanner(nil)

	got := out.String()
	if strings.Contains(got, "Monitoring:") {
		t.Errorf("Monitoring line should be omitted for all services:\n%s", got)
	}
	if !strings.Contains(got, "  Health Checks: Disabled\n") {
		t.Errorf("banner should show disabled health checks:\n%s", got)
	}
}

func TestPrintBanner_SystemInformation(t *testing.T) {
	s, out := newTestScheduler(testConfig(), probe.NewRegistryOf())

	s.PrintBanner(&sysinfo.Info{
		Platform: "linux",
		Arch:     "amd64",
		Hostname: "runner-1",
		Cwd:      "/home/runner/work",
		CPUs:     4,
		Memory:   &sysinfo.Capacity{FreeGB: 12, TotalGB: 16},
		IPs:      []string{"10.1.0.4", "172.17.0.1"},
		Uptime:   3*time.Hour + 12*time.Minute,
		Tree:     "work/\n└── go.mod",
	})

	got := out.String()
	for _, want := range []string{
		"System Information:\n",
		"  Platform: linux (amd64)\n",
		"  Hostname: runner-1\n",
		"  CWD: /home/runner/work\n",
		"  CPUs: 4\n",
		"  Memory: 12GB free / 16GB total\n",
		"  Disk: unavailable\n",
		"  IPs: 10.1.0.4, 172.17.0.1\n",
		"  Uptime: 3h 12m\n",
		"  CWD Tree:\n    work/\n    └── go.mod\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q:\n%s", want, got)
		}
	}
}
