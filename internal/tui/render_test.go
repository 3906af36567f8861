package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"crimemap/internal/interact"
	"crimemap/internal/risk"
)

func TestTooltipOrigin(t *testing.T) {
	tests := []struct {
		name   string
		anchor interact.Anchor
		offset int
		x, y   int
	}{
		{"centred above", interact.Anchor{X: 30, Y: 10}, 4, 25, 6},
		{"clamped left", interact.Anchor{X: 2, Y: 10}, 4, 0, 6},
		{"clamped right", interact.Anchor{X: 58, Y: 10}, 4, 50, 6},
		{"clamped top", interact.Anchor{X: 30, Y: 1}, 4, 25, 0},
		{"clamped bottom", interact.Anchor{X: 30, Y: 19}, 0, 25, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tooltipOrigin(tt.anchor, tt.offset, 10, 5, 60, 20)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestComposeMapColoursRegions(t *testing.T) {
	m := mounted(t)
	l := m.layout()
	g := m.composeMap(l.mapW, l.mapH)

	var filled int
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.runes[y][x] != ' ' {
				filled++
			}
		}
	}
	assert.Greater(t, filled, 0)
	// left region is tracked and drawn in its tier colour, right one is untracked
	assert.Equal(t, cellStyle{fg: risk.High.Color()}, g.styles[13][5])
	assert.Equal(t, cellStyle{fg: untracked}, g.styles[13][60])
}

func TestComposeMapTooltipOverlay(t *testing.T) {
	m := mounted(t)
	m, _ = update(t, m, overX)
	l := m.layout()
	g := m.composeMap(l.mapW, l.mapH)

	var rows []string
	for y := 0; y < g.h; y++ {
		rows = append(rows, g.text(y))
	}
	joined := strings.Join(rows, "\n")
	assert.Contains(t, joined, "│ X ")
	assert.Contains(t, joined, "Crime Rate: 85")
}

func TestFillPolygonClipsToBuffer(t *testing.T) {
	br := newBrailleBuf(2, 1)
	br.pen = 0
	huge := [][][2]float64{{{-1e9, -1e9}, {1e9, -1e9}, {1e9, 1e9}, {-1e9, 1e9}}}
	fillPolygon(br, huge)

	// checker pattern: micro-pixels with even x+y in both cells
	assert.Equal(t, uint8(0x01|0x04|0x10|0x80), br.m[0][0])
	assert.Equal(t, br.m[0][0], br.m[0][1])
	assert.Equal(t, 0, br.owner[0][1])
}
