package tui

const (
	headerHeight   = 1
	footerHeight   = 2
	sidebarWidth   = 28
	legendWidth    = 26
	predictWidth   = 46
	minMapWidth    = 10
	minMapHeight   = 4
	minContentSize = 10
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
	panelW             int
}

func (m Model) layout() layout {
	l := layout{contentW: max(minContentSize, m.width)}
	l.contentH = max(minMapHeight, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		l.sidebarW = sidebarWidth
		l.mapX = sidebarWidth + 1
	}
	l.panelW = legendWidth
	if m.showPredict {
		l.panelW = predictWidth
	}
	l.mapY = headerHeight
	l.mapW = max(minMapWidth, l.contentW-l.mapX-l.panelW-1)
	l.mapH = l.contentH
	return l
}

// inMap converts a screen cell to map-local cell coordinates.
func (l layout) inMap(x, y int) (int, int, bool) {
	cx, cy := x-l.mapX, y-l.mapY
	if cx < 0 || cy < 0 || cx >= l.mapW || cy >= l.mapH {
		return 0, 0, false
	}
	return cx, cy, true
}
