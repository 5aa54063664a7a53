// Package probe reports the live status of the local services a CI job
// depends on.
//
// Each service is a Probe. A probe never fails for a missing tool: an
// absent binary is the normal result
//
//	Result{Available: false, Status: StatusNotInstalled}
//
// and a failing command becomes StatusError with the command's error text
// in Message. Malformed structured output falls back to a coarser check.
//
// # Known Services
//
//	tailscale - `tailscale status --json`, falling back to `tailscale status`
//	docker    - `docker ps`, plus recent container logs via RecentLogs
//	ngrok     - process table lookup (pgrep, or tasklist on Windows)
//	ssh       - client on PATH only; the daemon is not checked
//
// # Registry
//
//	reg := probe.NewRegistry(system.DefaultExecutor())
//	if p, ok := reg.Lookup("docker"); ok {
//	    result := p.Check(ctx)
//	}
//
// Names() returns the services in their fixed report order.
package probe
