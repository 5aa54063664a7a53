// Package tui provides the interactive service dashboard behind
// "keep-alive watch".
//
// The dashboard runs the same probes as the keep-alive loop and shows
// them as a table that refreshes on the configured interval:
//
//	reg := probe.NewRegistry(system.DefaultExecutor())
//	err := tui.RunDashboard(reg, cfg)
//
// Probes run in a command off the update loop, so a slow backend never
// blocks key handling. Only one refresh is in flight at a time; a manual
// refresh ([r]) supersedes the pending scheduled one.
//
// # Non-interactive use
//
// Collect and RenderSnapshot produce the same data as plain text, for
// terminals without alternate-screen support and for CI logs:
//
//	snap := tui.Collect(ctx, reg, cfg)
//	fmt.Print(tui.RenderSnapshot(snap))
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - spinner and table components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
