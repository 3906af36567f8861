package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"crimemap/internal/risk"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	title := " crimemap ─ crime risk map "
	if m.canvas != nil {
		title += "─ " + m.canvas.asset.Name + " "
	}
	header := lipgloss.NewStyle().Width(l.contentW).Render(titleStyle.Render(title))

	var cols []string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		cols = append(cols, lipgloss.NewStyle().Width(l.sidebarW).Render(m.l.View()), " ")
	}

	var mapView string
	switch {
	case m.showAttrs:
		m.tbl.SetHeight(min(l.mapH-2, 20))
		title := "Dataset by name  (s: hotspots)"
		if m.attrByRisk {
			title = "Hotspots by risk  (s: by name)"
		}
		box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), m.tbl.View()))
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	case m.canvas == nil:
		msg := "no map asset loaded  (Tab to browse, p to paste)"
		if m.loading {
			msg = "loading…"
		}
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	default:
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.renderMap(l.mapW, l.mapH))
	}
	cols = append(cols, mapView, " ")

	var panel string
	if m.showPredict {
		panel = m.form.View(l.panelW - 4)
	} else {
		panel = m.legendView()
	}
	cols = append(cols, boxStyle.Width(l.panelW-2).Height(l.contentH-2).Render(panel))
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

// legendView lists the tiers with their colours and the selected region.
func (m Model) legendView() string {
	lines := []string{titleStyle.Render("Crime Risk Level"), ""}
	for _, t := range risk.Tiers() {
		swatch := tierStyle(t).Render("██")
		lines = append(lines, fmt.Sprintf("%s %-7s %s", swatch, t.Label(), dimStyle.Render(tierRange(t))))
	}
	lines = append(lines, "")
	sel := m.state.Selected()
	if sel == "" {
		lines = append(lines, dimStyle.Render("Click a region to select it"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, titleStyle.Render("Selected"), sel)
	if rec, ok := m.binder.Dataset().Lookup(sel); ok {
		lines = append(lines,
			"Crime Rate: "+strconv.FormatFloat(rec.Metric, 'f', -1, 64),
			"Risk Level: "+tierStyle(rec.Tier).Render(rec.Tier.Label()),
		)
	}
	return strings.Join(lines, "\n")
}

func tierRange(t risk.Tier) string {
	switch t {
	case risk.High:
		return fmt.Sprintf(">= %g", risk.HighThreshold)
	case risk.Medium:
		return fmt.Sprintf("%g-%g", risk.MediumThreshold, risk.HighThreshold)
	default:
		return fmt.Sprintf("< %g", risk.MediumThreshold)
	}
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab assets",
		"p paste",
		"a data",
		"f predict",
		"x deselect",
		"r reload",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
