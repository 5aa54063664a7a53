package probe

import (
	"context"
	"strconv"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// Docker probes the docker container engine.
type Docker struct {
	exec system.CommandExecutor
}

// NewDocker creates a docker probe.
func NewDocker(exec system.CommandExecutor) *Docker {
	return &Docker{exec: exec}
}

// Name returns "docker".
func (d *Docker) Name() string { return "docker" }

// Check lists running containers. A reachable engine reports running with
// the container count; a failing `docker ps` reports StatusError.
func (d *Docker) Check(ctx context.Context) Result {
	if !installed(d.exec, "docker") {
		return NotInstalled()
	}

	out, err := d.exec.Execute(ctx, "docker", "ps", "--format", "{{.ID}}")
	if err != nil {
		return Result{Available: true, Status: StatusError, Message: err.Error()}
	}

	return Result{
		Available: true,
		Status:    StatusRunning,
		Details: []Detail{
			{Key: "containers", Value: strconv.Itoa(len(splitLines(string(out))))},
		},
	}
}

// splitLines returns the trimmed, non-empty lines of s.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
