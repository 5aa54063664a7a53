package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// DefaultLogWindow is the lookback in seconds used when the requested
// window is not positive.
const DefaultLogWindow = 300

// LogSource identifies where recent logs came from.
type LogSource string

const (
	SourceCompose    LogSource = "compose"
	SourceContainers LogSource = "docker"
)

// ErrDockerNotInstalled is the Logs.Error value when docker is not on PATH.
const ErrDockerNotInstalled = "docker_not_installed"

// Logs is the outcome of a recent-log fetch.
type Logs struct {
	// Available is false when no log query could be made at all.
	Available bool
	Source    LogSource

	// Output holds the log text; empty means no new logs.
	Output string

	// Error explains why logs are unavailable.
	Error string

	// ComposeError is set when the compose query failed and per-container
	// logs were used instead.
	ComposeError string
}

// ComposeLogsArgs returns the docker arguments of the aggregate compose
// log query for the given window.
func ComposeLogsArgs(windowSeconds int) []string {
	return []string{"compose", "logs", "--since", since(windowSeconds), "--no-color"}
}

// LogsHeading is the label printed above a recent-log block: the compose
// query as a shell-quoted command line, without the output-format flag.
func LogsHeading(windowSeconds int) string {
	return system.CommandLine("docker", "compose", "logs", "--since", since(windowSeconds))
}

func since(windowSeconds int) string {
	if windowSeconds <= 0 {
		windowSeconds = DefaultLogWindow
	}
	return fmt.Sprintf("%ds", windowSeconds)
}

// RecentLogs returns container logs from the last windowSeconds seconds.
// It asks docker compose first and falls back to querying each running
// container. No output from either path is not an error.
func (d *Docker) RecentLogs(ctx context.Context, windowSeconds int) Logs {
	if !installed(d.exec, "docker") {
		return Logs{Available: false, Error: ErrDockerNotInstalled}
	}

	out, composeErr := d.exec.Execute(ctx, "docker", ComposeLogsArgs(windowSeconds)...)
	if composeErr == nil {
		return Logs{Available: true, Source: SourceCompose, Output: strings.TrimSpace(string(out))}
	}
	logging.Debug("docker compose logs failed, falling back to docker logs", "error", composeErr)

	out, err := d.exec.Execute(ctx, "docker", "ps", "--format", "{{.Names}}")
	if err != nil {
		return Logs{Available: false, Error: composeErr.Error()}
	}

	var sections []string
	for _, name := range splitLines(string(out)) {
		logs, err := d.exec.Execute(ctx, "docker", "logs", "--since", since(windowSeconds), "--timestamps", name)
		text := strings.TrimSpace(string(logs))
		if err != nil || text == "" {
			continue
		}
		sections = append(sections, "["+name+"]", text)
	}

	return Logs{
		Available:    true,
		Source:       SourceContainers,
		Output:       strings.Join(sections, "\n"),
		ComposeError: composeErr.Error(),
	}
}
