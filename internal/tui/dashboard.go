// Package tui provides the interactive service dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// refreshMsg delivers a completed snapshot.
type refreshMsg Snapshot

// tickMsg schedules the next refresh. Ticks from a superseded schedule
// carry an old generation and are dropped.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	registry *probe.Registry
	cfg      *config.Config
	interval time.Duration

	table   table.Model
	spinner spinner.Model

	snapshot   Snapshot
	refreshes  int
	refreshing bool
	gen        int
	quitting   bool
	width      int
	height     int
}

// NewDashboard creates a dashboard for cfg's services that refreshes on
// cfg's interval.
func NewDashboard(registry *probe.Registry, cfg *config.Config) Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Service", Width: 12},
		{Title: "Status", Width: 16},
		{Title: "Details", Width: 44},
	}

	rows := len(cfg.Services)
	if rows == 0 {
		rows = len(registry.Names())
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(rows+1),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("39")).
		Bold(true)
	t.SetStyles(styles)

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return Model{
		registry: registry,
		cfg:      cfg,
		interval: cfg.IntervalDuration(),
		table:    t,
		spinner:  s,

		// Init starts the first refresh.
		refreshing: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// refresh runs the probes off the update loop.
func (m Model) refresh() tea.Cmd {
	registry, cfg := m.registry, m.cfg
	return func() tea.Msg {
		return refreshMsg(Collect(context.Background(), registry, cfg))
	}
}

func (m Model) scheduleNext() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.snapshot = Snapshot(msg)
		m.refreshes++
		m.refreshing = false
		m.table.SetRows(tableRows(m.snapshot.Rows))
		m.gen++
		return m, m.scheduleNext()

	case tickMsg:
		if msg.gen != m.gen || m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			if m.refreshing {
				return m, nil
			}
			m.refreshing = true
			m.gen++
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Actions Keep Alive - Services"))
	sb.WriteString("\n")

	if m.refreshes == 0 {
		sb.WriteString(m.spinner.View() + " Checking services...\n")
		sb.WriteString(helpStyle.Render("[q] Quit"))
		return sb.String()
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	ok, failed, other := m.snapshot.Counts()
	summary := fmt.Sprintf("%s  %s  %s",
		okStyle.Render(fmt.Sprintf("%d running", ok)),
		failStyle.Render(fmt.Sprintf("%d failing", failed)),
		mutedStyle.Render(fmt.Sprintf("%d other", other)),
	)
	sb.WriteString(summary + "\n")

	status := "Updated " + m.snapshot.At.Format("15:04:05")
	if m.refreshing {
		status = m.spinner.View() + " Refreshing..."
	}
	sb.WriteString(mutedStyle.Render(status) + "\n")

	if m.snapshot.Logs != "" {
		sb.WriteString(logBoxStyle.Render("Recent docker logs\n" + m.snapshot.Logs))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render(fmt.Sprintf("[r] Refresh  [↑/↓] Select  [q] Quit  (every %s)", m.interval)))
	return sb.String()
}

// Snapshot returns the most recent snapshot.
func (m Model) Snapshot() Snapshot {
	return m.snapshot
}

func tableRows(rows []Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{statusIcon(r.Class, r.Installed), r.Service, r.Status, r.Details}
	}
	return out
}

// RunDashboard runs the interactive dashboard until the user quits.
func RunDashboard(registry *probe.Registry, cfg *config.Config) error {
	p := tea.NewProgram(NewDashboard(registry, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
