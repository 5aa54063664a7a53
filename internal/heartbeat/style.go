package heartbeat

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/firefly-engineering/actions-keep-alive/internal/config"
	"github.com/firefly-engineering/actions-keep-alive/internal/probe"
)

// glyphs are the markers used in report lines.
type glyphs struct {
	clock   string
	rocket  string
	success string
	failure string
	warning string
	unknown string
	neutral string
	heart   string
	docker  string
}

var emojiGlyphs = glyphs{
	clock:   "⏰",
	rocket:  "🚀",
	success: "✅",
	failure: "❌",
	warning: "⚠️",
	unknown: "⚠️",
	neutral: "ℹ️",
	heart:   "💓",
	docker:  "🐳",
}

// plainGlyphs are used with emoji disabled; CI log viewers without emoji
// fonts still get a readable marker.
var plainGlyphs = glyphs{
	success: "✓",
	failure: "✗",
	warning: "!",
	unknown: "?",
	neutral: "-",
	heart:   "♥",
}

func glyphsFor(d config.Display) glyphs {
	if d.Emoji {
		return emojiGlyphs
	}
	return plainGlyphs
}

// marker returns the glyph for a status classification.
func (g glyphs) marker(c probe.Class) string {
	switch c {
	case probe.ClassSuccess:
		return g.success
	case probe.ClassFailure:
		return g.failure
	default:
		return g.neutral
	}
}

// styles holds the lipgloss styles for one output stream.
type styles struct {
	header    lipgloss.Style
	iteration lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	neutral   lipgloss.Style
	section   lipgloss.Style
	info      lipgloss.Style
	banner    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w honouring the colour mode.
// CI runners are not terminals, so "always" forces ANSI colours.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:    r.NewStyle().Bold(true),
		iteration: r.NewStyle().Foreground(lipgloss.Color("3")),
		success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		failure:   r.NewStyle().Foreground(lipgloss.Color("1")),
		neutral:   r.NewStyle().Foreground(lipgloss.Color("3")),
		section:   r.NewStyle().Foreground(lipgloss.Color("6")),
		info:      r.NewStyle().Foreground(lipgloss.Color("4")),
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 2),
	}
}

// status returns the style for a status classification.
func (s styles) status(c probe.Class) lipgloss.Style {
	switch c {
	case probe.ClassSuccess:
		return s.success
	case probe.ClassFailure:
		return s.failure
	default:
		return s.neutral
	}
}
