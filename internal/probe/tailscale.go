package probe

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// Tailscale probes the tailscale VPN daemon.
type Tailscale struct {
	exec system.CommandExecutor
}

// NewTailscale creates a tailscale probe.
func NewTailscale(exec system.CommandExecutor) *Tailscale {
	return &Tailscale{exec: exec}
}

// Name returns "tailscale".
func (t *Tailscale) Name() string { return "tailscale" }

// tailscaleStatus is the subset of `tailscale status --json` we report.
type tailscaleStatus struct {
	BackendState string `json:"BackendState"`
	Version      string `json:"Version"`
	Self         *struct {
		HostName string `json:"HostName"`
		DNSName  string `json:"DNSName"`
	} `json:"Self"`
}

// Check reports the backend state verbatim, e.g. "Running" or "NeedsLogin".
func (t *Tailscale) Check(ctx context.Context) Result {
	if !installed(t.exec, "tailscale") {
		return NotInstalled()
	}

	out, err := t.exec.Execute(ctx, "tailscale", "status", "--json")
	if err != nil {
		return Result{Available: true, Status: StatusError, Message: err.Error()}
	}

	// A JSON null decodes without error but carries no status object.
	var status *tailscaleStatus
	if err := json.Unmarshal(out, &status); err != nil || status == nil {
		logging.Debug("tailscale status is not a JSON object, falling back", "error", err)
		return t.checkPlain(ctx)
	}

	result := Result{Available: true, Status: status.BackendState}
	if result.Status == "" {
		result.Status = StatusUnknown
	}
	if status.Version != "" {
		result.Details = append(result.Details, Detail{Key: "version", Value: status.Version})
	}
	if self := selfName(status); self != "" {
		result.Details = append(result.Details, Detail{Key: "self", Value: self})
	}
	return result
}

// checkPlain is the coarse fallback: success of `tailscale status`.
func (t *Tailscale) checkPlain(ctx context.Context) Result {
	if _, err := t.exec.Execute(ctx, "tailscale", "status"); err != nil {
		return Result{Available: true, Status: StatusStopped}
	}
	return Result{Available: true, Status: StatusRunning}
}

func selfName(status *tailscaleStatus) string {
	if status.Self == nil {
		return ""
	}
	if name := strings.TrimSuffix(status.Self.DNSName, "."); name != "" {
		return name
	}
	return status.Self.HostName
}
