package probe

import (
	"context"
	goruntime "runtime"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// Ngrok probes the ngrok tunnel agent by looking for its process.
type Ngrok struct {
	exec system.CommandExecutor
	goos string
}

// NewNgrok creates an ngrok probe for the current platform.
func NewNgrok(exec system.CommandExecutor) *Ngrok {
	return &Ngrok{exec: exec, goos: goruntime.GOOS}
}

// Name returns "ngrok".
func (n *Ngrok) Name() string { return "ngrok" }

// Check reports running or stopped. A missing process is not an error, so
// this probe never reports StatusError.
func (n *Ngrok) Check(ctx context.Context) Result {
	if !installed(n.exec, "ngrok") {
		return NotInstalled()
	}

	if n.processRunning(ctx) {
		return Result{Available: true, Status: StatusRunning}
	}
	return Result{Available: true, Status: StatusStopped}
}

func (n *Ngrok) processRunning(ctx context.Context) bool {
	if n.goos == "windows" {
		// tasklist exits 0 with an "INFO: No tasks" line when nothing matches.
		out, err := n.exec.Execute(ctx, "tasklist", "/FI", "IMAGENAME eq ngrok.exe")
		return err == nil && strings.Contains(strings.ToLower(string(out)), "ngrok.exe")
	}

	out, err := n.exec.Execute(ctx, "pgrep", "-f", "ngrok")
	return err == nil && strings.TrimSpace(string(out)) != ""
}
