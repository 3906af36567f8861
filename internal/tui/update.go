package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSidebar()
		m.reproject()
	case assetLoadedMsg:
		m.handleLoaded(msg)
		return m, nil
	case predictionMsg:
		m.handlePrediction(msg)
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showPredict {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, m.updatePredict(msg)
		}
		if m.showAttrs {
			switch msg.String() {
			case "a", "esc":
				m.showAttrs = false
				return m, nil
			case "s":
				m.toggleAttrSort()
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
				m.reproject()
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
				m.reproject()
			}
		case "0":
			m.zoom, m.offsetX, m.offsetY = 1.0, 0, 0
			m.status = "view reset"
			m.reproject()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.resizeSidebar()
			}
			m.reproject()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "f":
			cmd := m.openPredict()
			m.reproject()
			return m, cmd
		case "a":
			m.showAttrs = true
			m.refreshAttrs()
		case "x", "esc":
			m.binder.Deselect()
		case "h":
			m.helpVisible = !m.helpVisible
		case "r":
			if m.assetPath != "" {
				return m, m.startLoad(m.assetPath)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					return m, m.startLoad(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
			m.reproject()
		case "down":
			m.offsetY += 1
			m.reproject()
		case "left":
			m.offsetX -= 2
			m.reproject()
		case "right":
			m.offsetX += 2
			m.reproject()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		m.pasteAsset(text)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleMouse turns terminal mouse events into canvas pointer events.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.canvas == nil || m.pasteMode || m.showAttrs {
		return
	}
	l := m.layout()
	cx, cy, ok := l.inMap(msg.X, msg.Y)
	if !ok {
		m.canvas.pointerExit()
		return
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.reproject()
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.reproject()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.canvas.activateAt(cx, cy)
		if sel := m.state.Selected(); sel != "" {
			m.status = "selected: " + sel
		} else {
			m.status = "selection cleared"
		}
	case msg.Action == tea.MouseActionMotion:
		m.canvas.pointerAt(cx, cy)
	}
}

// reproject fits the canvas to the current map area, zoom and pan.
func (m *Model) reproject() {
	if m.canvas == nil {
		return
	}
	l := m.layout()
	m.canvas.reproject(viewport{w: l.mapW, h: l.mapH, zoom: m.zoom, offsetX: m.offsetX, offsetY: m.offsetY})
}

func (m *Model) resizeSidebar() {
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	}
}
