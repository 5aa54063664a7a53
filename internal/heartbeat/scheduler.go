package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/logging"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
)

const (
	// TimestampFormat is the header timestamp layout, 24-hour local time.
	TimestampFormat = "2006-01-02 15:04:05"

	// HeartbeatEvery is the number of ticks between heartbeat lines.
	HeartbeatEvery = 10

	lineIndent = "   "
	logIndent  = "      "
)

// Scheduler prints the periodic keep-alive report.
type Scheduler struct {
	cfg      *config.Config
	registry *probe.Registry
	out      io.Writer
	interval time.Duration
	now      func() time.Time

	glyphs glyphs
	styles styles

	iterations   atomic.Int64
	shutdownOnce sync.Once
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the time source for header timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithInterval overrides the tick period derived from the configuration.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

// New creates a Scheduler writing reports to out.
func New(cfg *config.Config, registry *probe.Registry, out io.Writer, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:      cfg,
		registry: registry,
		out:      out,
		interval: cfg.IntervalDuration(),
		now:      time.Now,
		glyphs:   glyphsFor(cfg.Display),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.styles = newStyles(NewRenderer(out, cfg.Display.Color))
	return s
}

// Iterations returns the number of ticks started so far.
func (s *Scheduler) Iterations() int {
	return int(s.iterations.Load())
}

// Run ticks immediately and then on every interval until ctx is cancelled.
// It prints the shutdown summary and returns nil; cancellation is the
// normal way to stop.
func (s *Scheduler) Run(ctx context.Context) error {
	logging.Info("keep-alive loop started", "interval", s.interval, "services", s.cfg.Services)

	s.Tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.shutdown(ctx)
			return nil
		case <-ticker.C:
			// A fire that raced with cancellation must not start a new tick.
			if ctx.Err() != nil {
				continue
			}
			s.Tick(ctx)
		}
	}
}

// shutdown prints the final summary. Only the first call has any effect.
func (s *Scheduler) shutdown(ctx context.Context) {
	s.shutdownOnce.Do(func() {
		reason := "Shutting down gracefully..."
		var sigErr *SignalError
		if errors.As(context.Cause(ctx), &sigErr) {
			reason = fmt.Sprintf("Received %s, shutting down gracefully...", SignalName(sigErr.Signal))
		}

		s.println("")
		s.println(s.styles.neutral.Render(join(s.glyphs.warning, reason)))
		s.println(join(s.glyphs.success, fmt.Sprintf("Keep alive stopped. Total iterations: %d", s.Iterations())))
		s.println("")
		logging.Debug("keep-alive loop stopped", "iterations", s.Iterations())
	})
}

// Tick runs one report cycle. Probes are not interrupted by cancellation of
// ctx: a tick that has started always runs to completion.
func (s *Scheduler) Tick(ctx context.Context) {
	iteration := int(s.iterations.Add(1))
	ctx = context.WithoutCancel(ctx)

	// The heartbeat line and separator are printed even if the report panics.
	defer func() {
		if r := recover(); r != nil {
			logging.Error("tick failed", "iteration", iteration, "panic", r)
		}
		if iteration%HeartbeatEvery == 0 {
			s.println(lineIndent + join(s.glyphs.heart, fmt.Sprintf("Heartbeat: Workflow healthy (%d iterations)", iteration)))
		}
		s.println("")
	}()

	s.printHeader(iteration)

	if s.cfg.HealthChecks {
		for _, name := range s.services() {
			s.reportService(ctx, name)
		}
	}
}

// services returns the configured services, or every registered service.
func (s *Scheduler) services() []string {
	if len(s.cfg.Services) > 0 {
		return s.cfg.Services
	}
	return s.registry.Names()
}

func (s *Scheduler) printHeader(iteration int) {
	var prefix []string
	if s.glyphs.clock != "" {
		prefix = append(prefix, s.glyphs.clock)
	}
	if s.cfg.Display.Timestamp {
		prefix = append(prefix, s.now().Format(TimestampFormat))
	}

	line := s.cfg.Caption() + " (" + s.styles.iteration.Render(fmt.Sprintf("#%d", iteration)) + ")"
	if len(prefix) > 0 {
		line = s.styles.header.Render(strings.Join(prefix, " ")) + " " + line
	}
	s.println(line)
}

func (s *Scheduler) reportService(ctx context.Context, name string) {
	p, ok := s.registry.Lookup(name)
	if !ok {
		s.println(lineIndent + join(s.glyphs.unknown, name+": Unknown service"))
		return
	}

	result := probe.CheckWithin(ctx, p, s.cfg.CommandTimeoutDuration())

	if !result.Available {
		if s.cfg.Verbose {
			s.println(lineIndent + join(s.glyphs.neutral, name+": "+result.Status))
		}
		return
	}

	class := probe.Classify(result.Status)
	line := lineIndent + join(s.glyphs.marker(class), name+": "+s.styles.status(class).Render(result.Status))
	if s.cfg.Verbose && len(result.Details) > 0 {
		line += " (" + formatDetails(result.Details) + ")"
	}
	s.println(line)

	if s.cfg.Verbose && class == probe.ClassFailure && result.Message != "" {
		s.printIndented(result.Message)
	}

	if fetcher, ok := p.(probe.LogFetcher); ok && class == probe.ClassSuccess {
		s.reportLogs(ctx, fetcher)
	}
}

func (s *Scheduler) reportLogs(ctx context.Context, fetcher probe.LogFetcher) {
	logs := probe.FetchLogsWithin(ctx, fetcher, s.cfg.Interval, s.cfg.CommandTimeoutDuration())

	s.println(lineIndent + join(s.glyphs.docker, probe.LogsHeading(s.cfg.Interval)+":"))

	if !logs.Available {
		s.println(logIndent + join(s.glyphs.warning, "Unable to fetch docker logs"))
		if s.cfg.Verbose && logs.Error != "" {
			s.printIndented(logs.Error)
		}
		return
	}

	if logs.Output == "" {
		s.println(logIndent + "(No new logs)")
	} else {
		s.printIndented(logs.Output)
	}

	if s.cfg.Verbose && logs.Source == probe.SourceContainers && logs.ComposeError != "" {
		s.println(logIndent + join(s.glyphs.neutral, "docker compose unavailable, used docker logs fallback"))
	}
}

// printIndented prints every line of text at log indentation.
func (s *Scheduler) printIndented(text string) {
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		s.println(logIndent + line)
	}
}

func (s *Scheduler) println(line string) {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		logging.Debug("failed to write report line", "error", err)
	}
}

// formatDetails flattens details as "key=value, key=value".
func formatDetails(details []probe.Detail) string {
	parts := make([]string, len(details))
	for i, d := range details {
		parts[i] = d.Key + "=" + d.Value
	}
	return strings.Join(parts, ", ")
}

// join prefixes text with a marker, omitting the marker when empty.
func join(marker, text string) string {
	if marker == "" {
		return text
	}
	return marker + " " + text
}
