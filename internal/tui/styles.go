package tui

import (
	"github.com/charmbracelet/lipgloss"

	"crimemap/internal/risk"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	untracked = lipgloss.Color("#4B5563")
	outlineFg = lipgloss.Color("#FFFFFF")
	errorFg   = lipgloss.Color("#F87171")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg)
	tooltipStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(baseFg).Padding(0, 1)
)

// tierStyle is the foreground style for a tier's colour.
func tierStyle(t risk.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color())
}

// cellStyle is the style of one map cell.
type cellStyle struct {
	fg   lipgloss.TerminalColor
	bold bool
}

func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != nil {
		s = s.Foreground(c.fg)
	}
	return s.Bold(c.bold)
}
