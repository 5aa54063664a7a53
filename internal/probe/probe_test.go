package probe

import (
	"context"
	"strings"
	"testing"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

func TestAllProbes_NotInstalled(t *testing.T) {
	exec := system.NewMockExecutor()
	reg := NewRegistry(exec)

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			p, _ := reg.Lookup(name)
			result := p.Check(context.Background())
			if result.Available {
				t.Error("Available should be false when the binary is missing")
			}
			if result.Status != StatusNotInstalled {
				t.Errorf("Status = %q, want %q", result.Status, StatusNotInstalled)
			}
		})
	}

	if len(exec.Commands) != 0 {
		t.Errorf("no commands should run for missing tools, ran %v", exec.Commands)
	}
}

func TestRegistry_Order(t *testing.T) {
	reg := NewRegistry(system.NewMockExecutor())

	got := strings.Join(reg.Names(), ",")
	if got != "tailscale,docker,ngrok,ssh" {
		t.Errorf("Names() = %s, want tailscale,docker,ngrok,ssh", got)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry(system.NewMockExecutor())

	if p, ok := reg.Lookup("docker"); !ok || p.Name() != "docker" {
		t.Errorf("Lookup(docker) = %v, %v", p, ok)
	}
	if _, ok := reg.Lookup("bogus"); ok {
		t.Error("Lookup(bogus) should miss")
	}
	if _, ok := reg.Lookup("Docker"); ok {
		t.Error("Lookup is case sensitive")
	}
}

func TestRegistryOf_DuplicateReplacesInPlace(t *testing.T) {
	exec := system.NewMockExecutor()
	replacement := NewDocker(exec)
	reg := NewRegistryOf(NewTailscale(exec), NewDocker(exec), NewSSH(exec), replacement)

	if got := strings.Join(reg.Names(), ","); got != "tailscale,docker,ssh" {
		t.Errorf("Names() = %s, want tailscale,docker,ssh", got)
	}
	if p, _ := reg.Lookup("docker"); p != Probe(replacement) {
		t.Error("Lookup(docker) should return the replacement probe")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   Class
	}{
		{StatusRunning, ClassSuccess},
		{"Running", ClassSuccess},
		{StatusError, ClassFailure},
		{"ERROR: daemon", ClassFailure},
		{StatusStopped, ClassNeutral},
		{StatusAvailable, ClassNeutral},
		{StatusNotInstalled, ClassNeutral},
		{"NeedsLogin", ClassNeutral},
		{"", ClassNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := Classify(tt.status); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTailscale_JSONStatus(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("tailscale")
	exec.AddResponse("tailscale status --json", []byte(`{
		"Version": "1.76.1",
		"BackendState": "Running",
		"Self": {"HostName": "runner", "DNSName": "runner.tail1234.ts.net."}
	}`), nil)

	result := NewTailscale(exec).Check(context.Background())

	if !result.Available {
		t.Error("Available should be true")
	}
	if result.Status != "Running" {
		t.Errorf("Status = %q, want backend state verbatim", result.Status)
	}
	want := []Detail{{"version", "1.76.1"}, {"self", "runner.tail1234.ts.net"}}
	if len(result.Details) != len(want) {
		t.Fatalf("Details = %v, want %v", result.Details, want)
	}
	for i := range want {
		if result.Details[i] != want[i] {
			t.Errorf("Details[%d] = %v, want %v", i, result.Details[i], want[i])
		}
	}
}

func TestTailscale_EmptyBackendState(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("tailscale")
	exec.AddResponse("tailscale status --json", []byte(`{"Self": {"HostName": "runner"}}`), nil)

	result := NewTailscale(exec).Check(context.Background())

	if result.Status != StatusUnknown {
		t.Errorf("Status = %q, want %q", result.Status, StatusUnknown)
	}
	if len(result.Details) != 1 || result.Details[0] != (Detail{"self", "runner"}) {
		t.Errorf("Details = %v, want [self=runner]", result.Details)
	}
}

func TestTailscale_MalformedJSONFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		plainOK bool
		want    string
	}{
		{"plain status succeeds", true, StatusRunning},
		{"plain status fails", false, StatusStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := system.NewMockExecutor()
			exec.AddBinary("tailscale")
			exec.AddResponse("tailscale status --json", []byte("not json"), nil)
			if tt.plainOK {
				exec.AddResponse("tailscale status", []byte("100.64.0.1 runner linux -"), nil)
			} else {
				exec.AddResponse("tailscale status", nil, errFake("Tailscale is stopped."))
			}

			result := NewTailscale(exec).Check(context.Background())

			if !result.Available {
				t.Error("Available should be true")
			}
			if result.Status != tt.want {
				t.Errorf("Status = %q, want %q", result.Status, tt.want)
			}
			if !exec.Ran("tailscale status") {
				t.Error("fallback `tailscale status` should have run")
			}
		})
	}
}

func TestTailscale_NonObjectJSONFallsBack(t *testing.T) {
	for _, out := range []string{"null", "[]", "42", `"Running"`} {
		t.Run(out, func(t *testing.T) {
			exec := system.NewMockExecutor()
			exec.AddBinary("tailscale")
			exec.AddResponse("tailscale status --json", []byte(out), nil)
			exec.AddResponse("tailscale status", []byte("100.64.0.1 runner linux -"), nil)

			result := NewTailscale(exec).Check(context.Background())

			if result.Status != StatusRunning {
				t.Errorf("Status = %q, want %q from the plain fallback", result.Status, StatusRunning)
			}
			if !exec.Ran("tailscale status") {
				t.Error("fallback `tailscale status` should have run")
			}
		})
	}
}

func TestTailscale_CommandError(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("tailscale")
	exec.AddResponse("tailscale status --json", nil, errFake("failed to connect to local tailscaled"))

	result := NewTailscale(exec).Check(context.Background())

	if result.Status != StatusError {
		t.Errorf("Status = %q, want %q", result.Status, StatusError)
	}
	if !strings.Contains(result.Message, "tailscaled") {
		t.Errorf("Message = %q, want the command error", result.Message)
	}
}

func TestDocker_Check(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("docker")
	exec.AddResponse("docker ps --format {{.ID}}", []byte("a1b2c3\nd4e5f6\n\n"), nil)

	result := NewDocker(exec).Check(context.Background())

	if result.Status != StatusRunning {
		t.Errorf("Status = %q, want %q", result.Status, StatusRunning)
	}
	if len(result.Details) != 1 || result.Details[0] != (Detail{"containers", "2"}) {
		t.Errorf("Details = %v, want [containers=2]", result.Details)
	}
}

func TestDocker_NoContainers(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("docker")
	exec.AddResponse("docker ps --format {{.ID}}", []byte(""), nil)

	result := NewDocker(exec).Check(context.Background())

	if result.Status != StatusRunning {
		t.Errorf("Status = %q, want %q", result.Status, StatusRunning)
	}
	if result.Details[0].Value != "0" {
		t.Errorf("containers = %q, want 0", result.Details[0].Value)
	}
}

func TestDocker_Error(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("docker")
	exec.AddResponse("docker ps --format {{.ID}}", nil, errFake("Cannot connect to the Docker daemon"))

	result := NewDocker(exec).Check(context.Background())

	if !result.Available {
		t.Error("Available should be true")
	}
	if result.Status != StatusError {
		t.Errorf("Status = %q, want %q", result.Status, StatusError)
	}
	if !strings.Contains(result.Message, "Cannot connect") {
		t.Errorf("Message = %q, want raw error text", result.Message)
	}
}

func TestNgrok_Posix(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   string
	}{
		{"process found", "4242\n", nil, StatusRunning},
		{"no process", "", errFake("exit status 1"), StatusStopped},
		{"empty output", "  \n", nil, StatusStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := system.NewMockExecutor()
			exec.AddBinary("ngrok")
			exec.AddResponse("pgrep -f ngrok", []byte(tt.output), tt.err)

			n := NewNgrok(exec)
			n.goos = "linux"
			result := n.Check(context.Background())

			if result.Status != tt.want {
				t.Errorf("Status = %q, want %q", result.Status, tt.want)
			}
			if result.Status == StatusError {
				t.Error("ngrok probe must never report error")
			}
		})
	}
}

func TestNgrok_Windows(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"process found", "Image Name   PID\nngrok.exe    4242 Console  1  20,000 K\n", StatusRunning},
		{"no tasks", "INFO: No tasks are running which match the specified criteria.\n", StatusStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := system.NewMockExecutor()
			exec.AddBinary("ngrok")
			exec.AddResponse("tasklist /FI IMAGENAME eq ngrok.exe", []byte(tt.output), nil)

			n := NewNgrok(exec)
			n.goos = "windows"
			result := n.Check(context.Background())

			if result.Status != tt.want {
				t.Errorf("Status = %q, want %q", result.Status, tt.want)
			}
			if exec.Ran("pgrep -f ngrok") {
				t.Error("pgrep should not run on windows")
			}
		})
	}
}

func TestSSH_Available(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddBinary("ssh")

	result := NewSSH(exec).Check(context.Background())

	if !result.Available || result.Status != StatusAvailable {
		t.Errorf("Check() = %+v, want available", result)
	}
	if len(exec.Commands) != 0 {
		t.Errorf("ssh probe should not run commands, ran %v", exec.Commands)
	}
}

// errFake is a plain error value for command failures.
type errFake string

func (e errFake) Error() string { return string(e) }
