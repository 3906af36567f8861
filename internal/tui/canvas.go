package tui

import (
	"math"

	"crimemap/internal/geom"
	"crimemap/internal/interact"
)

// viewport is the projection of an asset bbox onto a map area of w x h cells.
type viewport struct {
	w, h    int
	zoom    float64
	offsetX int
	offsetY int
}

// regionShape is one region of the mounted asset, projected to micro-pixels.
type regionShape struct {
	index    int
	region   geom.Region
	mic      []geom.Polygon // micro-pixel coordinates
	flat     [][][]float64  // mic flattened for hit tests
	bounds   interact.Rect  // cells
	emphasis interact.Emphasis
}

func (s *regionShape) Label() string                   { return s.region.Label }
func (s *regionShape) Bounds() interact.Rect           { return s.bounds }
func (s *regionShape) SetEmphasis(e interact.Emphasis) { s.emphasis = e }

// canvas is the terminal rendition of a loaded asset. It implements
// interact.Document by hit-testing pointer cells against projected regions and
// synthesising enter, leave and activate callbacks.
type canvas struct {
	asset  *geom.Asset
	bbox   geom.BBox
	vp     viewport
	shapes []*regionShape

	subs   map[*regionShape]*subscriptions
	nextID int

	hovered    *regionShape
	pointer    [2]int
	hasPointer bool
	mounted    bool
}

type subscriptions struct {
	enter, leave, activate map[int]func()
}

func newCanvas(a *geom.Asset) *canvas {
	c := &canvas{
		asset:   a,
		bbox:    a.BBox,
		subs:    make(map[*regionShape]*subscriptions),
		mounted: true,
		vp:      viewport{zoom: 1},
	}
	for i, r := range a.Regions {
		c.shapes = append(c.shapes, &regionShape{index: i, region: r, emphasis: interact.Unselected})
	}
	return c
}

// Shapes returns the regions in paint order.
func (c *canvas) Shapes() []interact.Shape {
	out := make([]interact.Shape, len(c.shapes))
	for i, s := range c.shapes {
		out[i] = s
	}
	return out
}

func (c *canvas) OnEnter(s interact.Shape, fn func()) interact.Handle {
	return c.subscribe(s, fn, enterSubs)
}

func (c *canvas) OnLeave(s interact.Shape, fn func()) interact.Handle {
	return c.subscribe(s, fn, leaveSubs)
}

func (c *canvas) OnActivate(s interact.Shape, fn func()) interact.Handle {
	return c.subscribe(s, fn, activateSubs)
}

func (c *canvas) subscribe(s interact.Shape, fn func(), pick func(*subscriptions) map[int]func()) interact.Handle {
	rs, ok := s.(*regionShape)
	if !ok || !c.mounted {
		return interact.Handle{}
	}
	ss := c.subs[rs]
	if ss == nil {
		ss = &subscriptions{enter: map[int]func(){}, leave: map[int]func(){}, activate: map[int]func(){}}
		c.subs[rs] = ss
	}
	c.nextID++
	id := c.nextID
	m := pick(ss)
	m[id] = fn
	return interact.NewHandle(func() { delete(m, id) })
}

func (c *canvas) fire(s *regionShape, pick func(*subscriptions) map[int]func()) {
	if s == nil || !c.mounted {
		return
	}
	ss := c.subs[s]
	if ss == nil {
		return
	}
	for _, fn := range pick(ss) {
		fn()
	}
}

func enterSubs(ss *subscriptions) map[int]func()    { return ss.enter }
func leaveSubs(ss *subscriptions) map[int]func()    { return ss.leave }
func activateSubs(ss *subscriptions) map[int]func() { return ss.activate }

// subscribers counts the callbacks attached to s.
func (c *canvas) subscribers(s *regionShape) int {
	ss := c.subs[s]
	if ss == nil {
		return 0
	}
	return len(ss.enter) + len(ss.leave) + len(ss.activate)
}

// unmount drops all callbacks; later pointer events are ignored.
func (c *canvas) unmount() {
	c.mounted = false
	c.subs = make(map[*regionShape]*subscriptions)
	c.hovered = nil
}

// microXY maps lon/lat into the 2x4 microgrid considering zoom and pan.
func (c *canvas) microXY(lon, lat float64) (float64, float64, bool) {
	b := c.bbox
	if !b.Valid() || c.vp.w <= 0 || c.vp.h <= 0 {
		return 0, 0, false
	}
	nx := (lon - b.MinX) / (b.MaxX - b.MinX)
	ny := (lat - b.MinY) / (b.MaxY - b.MinY)
	zx := 0.5 + (nx-0.5)*c.vp.zoom
	zy := 0.5 + (ny-0.5)*c.vp.zoom
	wMic := float64(c.vp.w * 2)
	hMic := float64(c.vp.h * 4)
	sx := zx*(wMic-1) + float64(c.vp.offsetX*2)
	sy := (1.0-zy)*(hMic-1) + float64(c.vp.offsetY*4)
	return sx, sy, true
}

// reproject recomputes every shape's micro geometry and rendered bounds, then
// replays the last pointer position so a hover anchor never outlives the geometry
// it was taken from.
func (c *canvas) reproject(vp viewport) {
	if vp.zoom <= 0 {
		vp.zoom = 1
	}
	c.vp = vp
	for _, s := range c.shapes {
		s.mic, s.flat = s.mic[:0], s.flat[:0]
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, poly := range s.region.Polygons {
			var mp geom.Polygon
			for _, ring := range poly {
				mr := make(geom.Ring, 0, len(ring))
				for _, p := range ring {
					x, y, ok := c.microXY(p[0], p[1])
					if !ok {
						continue
					}
					mr = append(mr, [2]float64{x, y})
					minX, maxX = math.Min(minX, x), math.Max(maxX, x)
					minY, maxY = math.Min(minY, y), math.Max(maxY, y)
				}
				if len(mr) >= 3 {
					mp = append(mp, mr)
				}
			}
			if len(mp) > 0 {
				s.mic = append(s.mic, mp)
				s.flat = append(s.flat, geom.FlatPolygon(mp))
			}
		}
		if len(s.mic) == 0 {
			s.bounds = interact.Rect{}
			continue
		}
		s.bounds = interact.Rect{
			X: minX / 2,
			Y: minY / 4,
			W: (maxX - minX) / 2,
			H: (maxY - minY) / 4,
		}
	}
	if c.hovered != nil {
		prev := c.hovered
		c.hovered = nil
		c.fire(prev, leaveSubs)
	}
	if c.hasPointer {
		c.pointerAt(c.pointer[0], c.pointer[1])
	}
}

// hitTest returns the topmost shape under the centre of cell (cx, cy).
func (c *canvas) hitTest(cx, cy int) *regionShape {
	mx := float64(cx*2) + 1
	my := float64(cy*4) + 2
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		for _, rings := range s.flat {
			if geom.FlatPolygonContains(rings, mx, my) {
				return s
			}
		}
	}
	return nil
}

// pointerAt moves the pointer to map cell (cx, cy), delivering leave to the
// region it exits before enter to the region it reaches.
func (c *canvas) pointerAt(cx, cy int) {
	if !c.mounted {
		return
	}
	c.pointer, c.hasPointer = [2]int{cx, cy}, true
	hit := c.hitTest(cx, cy)
	if hit == c.hovered {
		return
	}
	prev := c.hovered
	c.hovered = hit
	c.fire(prev, leaveSubs)
	c.fire(hit, enterSubs)
}

// pointerExit is the pointer leaving the map area.
func (c *canvas) pointerExit() {
	c.hasPointer = false
	if c.hovered == nil {
		return
	}
	prev := c.hovered
	c.hovered = nil
	c.fire(prev, leaveSubs)
}

// activateAt is a click on map cell (cx, cy).
func (c *canvas) activateAt(cx, cy int) {
	c.pointerAt(cx, cy)
	c.fire(c.hitTest(cx, cy), activateSubs)
}
