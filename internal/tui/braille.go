package tui

// brailleBuf is a 2x4 micro-pixel canvas per terminal cell. Each cell also
// remembers which region last drew into it and whether that was an accent stroke.
type brailleBuf struct {
	w, h   int       // in cells
	m      [][]uint8 // per-cell 8-bit mask
	owner  [][]int   // region index per cell, -1 when empty
	accent [][]bool

	pen       int
	accentPen bool
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int, h)
	accent := make([][]bool, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int, w)
		accent[i] = make([]bool, w)
		for j := range owner[i] {
			owner[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner, accent: accent, pen: -1}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if b.accent[cy][cx] && !b.accentPen {
		// accent strokes keep their cell
		return
	}
	b.owner[cy][cx] = b.pen
	if b.accentPen {
		b.accent[cy][cx] = true
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham. Widths above one
// thicken the stroke downward and to the right.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, width int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		for ox := 0; ox < width; ox++ {
			for oy := 0; oy < width; oy++ {
				b.setPixel(x0+ox, y0+oy)
			}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) glyph(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}
