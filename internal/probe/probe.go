package probe

import (
	"context"
	"strings"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

// Well-known statuses. Probes may also report a backend status verbatim.
const (
	StatusNotInstalled = "not_installed"
	StatusRunning      = "running"
	StatusStopped      = "stopped"
	StatusError        = "error"
	StatusAvailable    = "available"
	StatusUnknown      = "unknown"
)

// Detail is one key/value pair of extra probe information.
type Detail struct {
	Key   string
	Value string
}

// Result is the outcome of a single probe invocation.
type Result struct {
	Available bool
	Status    string
	Details   []Detail
	Message   string
}

// NotInstalled is the result for a service whose tool is not on PATH.
func NotInstalled() Result {
	return Result{Available: false, Status: StatusNotInstalled}
}

// Class is the coarse classification of a status used for report markers.
type Class int

const (
	ClassNeutral Class = iota
	ClassSuccess
	ClassFailure
)

// Classify buckets a status string: anything mentioning "running" is a
// success, anything mentioning "error" a failure, everything else neutral.
func Classify(status string) Class {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "running"):
		return ClassSuccess
	case strings.Contains(s, "error"):
		return ClassFailure
	default:
		return ClassNeutral
	}
}

// Probe reports availability and status of one external service.
type Probe interface {
	// Name returns the service name used in configuration and reports.
	Name() string

	// Check inspects the local environment. It never panics or returns an
	// error for a missing tool; that is a normal Result.
	Check(ctx context.Context) Result
}

// LogFetcher is implemented by probes that can show recent service logs.
type LogFetcher interface {
	RecentLogs(ctx context.Context, windowSeconds int) Logs
}

// Registry maps service names to probes in a fixed order.
type Registry struct {
	probes []Probe
	byName map[string]Probe
}

// NewRegistry returns the registry of all known services, backed by exec.
func NewRegistry(exec system.CommandExecutor) *Registry {
	return NewRegistryOf(
		NewTailscale(exec),
		NewDocker(exec),
		NewNgrok(exec),
		NewSSH(exec),
	)
}

// NewRegistryOf builds a registry from the given probes, keeping their order.
// A later probe with a duplicate name replaces the earlier one in place.
func NewRegistryOf(probes ...Probe) *Registry {
	r := &Registry{byName: make(map[string]Probe, len(probes))}
	for _, p := range probes {
		if _, dup := r.byName[p.Name()]; dup {
			for i, existing := range r.probes {
				if existing.Name() == p.Name() {
					r.probes[i] = p
				}
			}
		} else {
			r.probes = append(r.probes, p)
		}
		r.byName[p.Name()] = p
	}
	return r
}

// Lookup returns the probe for name.
func (r *Registry) Lookup(name string) (Probe, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names returns the registered service names in report order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.probes))
	for i, p := range r.probes {
		names[i] = p.Name()
	}
	return names
}

// installed reports whether name resolves on PATH.
func installed(exec system.CommandExecutor, name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
