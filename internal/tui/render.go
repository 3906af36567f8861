package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"crimemap/internal/interact"
)

// grid is the composed map area, one rune and style per cell.
type grid struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, runes: make([][]rune, h), styles: make([][]cellStyle, h)}
	for y := 0; y < h; y++ {
		g.runes[y] = []rune(strings.Repeat(" ", w))
		g.styles[y] = make([]cellStyle, w)
	}
	return g
}

// String renders every row as runs of identically styled cells.
func (g *grid) String() string {
	rows := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var b strings.Builder
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && g.styles[y][x] == g.styles[y][start] {
				continue
			}
			run := string(g.runes[y][start:x])
			if st := g.styles[y][start]; st.fg != nil || st.bold {
				run = st.style().Render(run)
			}
			b.WriteString(run)
			start = x
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// text returns row y without styling.
func (g *grid) text(y int) string { return string(g.runes[y]) }

// renderMap draws the mounted canvas into a w x h cell area: regions filled in
// their tier colour, outlines weighted by emphasis, then the hover tooltip.
func (m Model) renderMap(w, h int) string {
	return m.composeMap(w, h).String()
}

func (m Model) composeMap(w, h int) *grid {
	g := newGrid(w, h)
	c := m.canvas
	if c == nil || !c.mounted {
		return g
	}
	br := newBrailleBuf(w, h)
	for _, s := range c.shapes {
		br.pen, br.accentPen = s.index, false
		for _, poly := range s.mic {
			fillPolygon(br, poly)
		}
	}
	// selected outlines last so they sit on top of neighbours
	order := make([]*regionShape, len(c.shapes))
	copy(order, c.shapes)
	sort.SliceStable(order, func(i, j int) bool { return order[i].emphasis < order[j].emphasis })
	for _, s := range order {
		br.pen, br.accentPen = s.index, s.emphasis >= interact.Selected
		width := max(1, int(s.emphasis)/2)
		for _, poly := range s.mic {
			for _, ring := range poly {
				for i := range ring {
					a, b := ring[i], ring[(i+1)%len(ring)]
					br.drawLineMicro(int(a[0]), int(a[1]), int(b[0]), int(b[1]), width)
				}
			}
		}
	}

	hoverLabel, _, _, _ := m.state.Hover()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := br.glyph(x, y)
			if r == ' ' {
				continue
			}
			g.runes[y][x] = r
			owner := br.owner[y][x]
			if owner < 0 || owner >= len(c.shapes) {
				continue
			}
			if br.accent[y][x] {
				g.styles[y][x] = cellStyle{fg: outlineFg, bold: true}
				continue
			}
			s := c.shapes[owner]
			st := cellStyle{fg: untracked}
			if rec, ok := m.binder.Dataset().Lookup(s.Label()); ok {
				st.fg = rec.Tier.Color()
			}
			st.bold = hoverLabel != "" && s.Label() == hoverLabel
			g.styles[y][x] = st
		}
	}

	if label, a, content, ok := m.state.Hover(); ok && label != "" {
		overlayTooltip(g, content, a, m.tooltipOffset)
	}
	return g
}

// fillPolygon fills poly with a checker pattern using the even-odd rule across
// all rings, so holes stay empty.
func fillPolygon(br *brailleBuf, poly [][][2]float64) {
	wMic, hMic := br.w*2, br.h*4
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ring := range poly {
		for _, p := range ring {
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}
	y0 := max(0, int(math.Ceil(minY)))
	y1 := min(hMic-1, int(math.Floor(maxY)))
	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for _, ring := range poly {
			for i := range ring {
				a, b := ring[i], ring[(i+1)%len(ring)]
				if (a[1] > fy) == (b[1] > fy) {
					continue
				}
				xs = append(xs, a[0]+(fy-a[1])*(b[0]-a[0])/(b[1]-a[1]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, int(math.Ceil(xs[i]))); x <= min(wMic-1, int(math.Floor(xs[i+1]))); x++ {
				if (x+y)%2 == 0 {
					br.setPixel(x, y)
				}
			}
		}
	}
}

// tooltipOrigin places a bw x bh box centred on the anchor column with its top
// row offset rows above the anchor, kept inside a w x h area.
func tooltipOrigin(a interact.Anchor, offset, bw, bh, w, h int) (int, int) {
	x := int(math.Round(a.X)) - bw/2
	y := int(math.Round(a.Y)) - offset
	return clamp(x, 0, w-bw), clamp(y, 0, h-bh)
}

// overlayTooltip draws the tooltip box over the map cells.
func overlayTooltip(g *grid, content string, a interact.Anchor, offset int) {
	box := ansi.Strip(tooltipStyle.Render(content))
	lines := strings.Split(box, "\n")
	bw := 0
	for _, l := range lines {
		bw = max(bw, lipgloss.Width(l))
	}
	bh := len(lines)
	ox, oy := tooltipOrigin(a, offset, bw, bh, g.w, g.h)
	for i, l := range lines {
		y := oy + i
		if y < 0 || y >= g.h {
			continue
		}
		for j, r := range []rune(padRight(l, bw-lipgloss.Width(l))) {
			x := ox + j
			if x < 0 || x >= g.w {
				continue
			}
			g.runes[y][x] = r
			g.styles[y][x] = cellStyle{fg: baseFg, bold: i == 1}
		}
	}
}
