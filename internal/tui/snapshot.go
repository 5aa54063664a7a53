package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
)

// StatusUnknownService is shown for names missing from the registry.
const StatusUnknownService = "unknown service"

// maxLogLines bounds the log pane.
const maxLogLines = 12

// Row is one service line of the dashboard.
type Row struct {
	Service string
	Status  string
	Details string
	Class   probe.Class

	// Installed is false for not-installed and unknown services.
	Installed bool
}

// Snapshot is the outcome of one refresh.
type Snapshot struct {
	Rows []Row

	// Logs holds the tail of recent docker logs when docker is running.
	Logs string
	At   time.Time
}

// Counts returns how many rows fall into each classification.
func (s Snapshot) Counts() (ok, failed, other int) {
	for _, r := range s.Rows {
		switch {
		case r.Class == probe.ClassSuccess:
			ok++
		case r.Class == probe.ClassFailure:
			failed++
		default:
			other++
		}
	}
	return ok, failed, other
}

// Collect probes cfg's services, or every registered service when none are
// configured. Each probe is bounded by cfg's command timeout and a probe that
// panics is reported as an error.
func Collect(ctx context.Context, registry *probe.Registry, cfg *config.Config) Snapshot {
	services := cfg.Services
	timeout := cfg.CommandTimeoutDuration()
	if len(services) == 0 {
		services = registry.Names()
	}

	snap := Snapshot{At: time.Now()}
	for _, name := range services {
		p, ok := registry.Lookup(name)
		if !ok {
			snap.Rows = append(snap.Rows, Row{Service: name, Status: StatusUnknownService, Class: probe.ClassNeutral})
			continue
		}

		result := probe.CheckWithin(ctx, p, timeout)
		row := Row{
			Service:   name,
			Status:    result.Status,
			Details:   details(result),
			Class:     probe.Classify(result.Status),
			Installed: result.Available,
		}
		snap.Rows = append(snap.Rows, row)

		if fetcher, ok := p.(probe.LogFetcher); ok && row.Class == probe.ClassSuccess {
			if logs := probe.FetchLogsWithin(ctx, fetcher, cfg.Interval, timeout); logs.Available {
				snap.Logs = tail(logs.Output, maxLogLines)
			}
		}
	}
	return snap
}

func details(r probe.Result) string {
	parts := make([]string, 0, len(r.Details)+1)
	for _, d := range r.Details {
		parts = append(parts, d.Key+"="+d.Value)
	}
	if r.Message != "" {
		parts = append(parts, firstLine(r.Message))
	}
	return strings.Join(parts, ", ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

func statusIcon(c probe.Class, installed bool) string {
	switch {
	case c == probe.ClassSuccess:
		return "✓"
	case c == probe.ClassFailure:
		return "✗"
	case !installed:
		return "○"
	default:
		return "●"
	}
}

// RenderSnapshot renders a snapshot as plain text for non-interactive use.
func RenderSnapshot(snap Snapshot) string {
	var sb strings.Builder

	sb.WriteString("Actions Keep Alive - Services\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(snap.Rows) == 0 {
		sb.WriteString("No services configured.\n")
		return sb.String()
	}

	for _, r := range snap.Rows {
		sb.WriteString(fmt.Sprintf("%s %-10s %s", statusIcon(r.Class, r.Installed), r.Service, r.Status))
		if r.Details != "" {
			sb.WriteString(" (" + r.Details + ")")
		}
		sb.WriteString("\n")
	}

	ok, failed, other := snap.Counts()
	sb.WriteString(fmt.Sprintf("\n%d running, %d failing, %d other\n", ok, failed, other))

	if snap.Logs != "" {
		sb.WriteString("\nRecent docker logs:\n")
		for _, line := range strings.Split(snap.Logs, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}
