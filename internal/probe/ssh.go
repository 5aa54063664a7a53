package probe

import (
	"context"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// SSH probes the remote-shell client.
//
// Only the client binary is looked up; whether an sshd is actually
// accepting connections is not checked, so the status is "available"
// rather than "running".
type SSH struct {
	exec system.CommandExecutor
}

// NewSSH creates an ssh probe.
func NewSSH(exec system.CommandExecutor) *SSH {
	return &SSH{exec: exec}
}

// Name returns "ssh".
func (s *SSH) Name() string { return "ssh" }

// Check reports StatusAvailable when the ssh client is on PATH.
func (s *SSH) Check(ctx context.Context) Result {
	if !installed(s.exec, "ssh") {
		return NotInstalled()
	}
	return Result{Available: true, Status: StatusAvailable}
}
