package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crimemap/internal/geom"
	"crimemap/internal/interact"
	"crimemap/internal/risk"
)

func square(x0, y0, x1, y1 float64) []geom.Polygon {
	return []geom.Polygon{{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}}
}

// testAsset is two 10x10 regions side by side with a gap: "X" and an unlabelled one.
func testAsset() *geom.Asset {
	a := &geom.Asset{Name: "test"}
	a.AddRegion(geom.Region{Label: "X", Polygons: square(0, 0, 10, 10)})
	a.AddRegion(geom.Region{Label: "", Polygons: square(20, 0, 30, 10)})
	return a
}

func boundCanvas(t *testing.T) (*canvas, *interact.Binder) {
	t.Helper()
	c := newCanvas(testAsset())
	c.reproject(viewport{w: 31, h: 11, zoom: 1})
	b := interact.NewBinder(risk.NewDataset(map[string]float64{"X": 85}), interact.NewState())
	bd := b.Bind(c)
	require.Equal(t, 1, bd.Bound())
	require.Equal(t, 1, bd.Inert())
	return c, b
}

func TestCanvasBounds(t *testing.T) {
	c, _ := boundCanvas(t)
	r := c.shapes[0].Bounds()
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 0, r.Y, 1e-9)
	assert.InDelta(t, 61.0/3/2, r.W, 1e-9)
	assert.InDelta(t, 43.0/4, r.H, 1e-9)
}

func TestCanvasHoverDispatch(t *testing.T) {
	c, b := boundCanvas(t)
	st := b.State()

	c.pointerAt(2, 5)
	label, a, content, ok := st.Hover()
	require.True(t, ok)
	assert.Equal(t, "X", label)
	assert.Equal(t, interact.AnchorOf(c.shapes[0].Bounds()), a)
	assert.Contains(t, content, "Risk Level: High")

	// gap between the regions
	c.pointerAt(12, 5)
	_, _, _, ok = st.Hover()
	assert.False(t, ok)

	// the unlabelled region is inert
	c.pointerAt(25, 5)
	_, _, _, ok = st.Hover()
	assert.False(t, ok)

	c.pointerAt(2, 5)
	c.pointerExit()
	_, _, _, ok = st.Hover()
	assert.False(t, ok)
}

func TestCanvasActivateTogglesSelection(t *testing.T) {
	c, b := boundCanvas(t)

	c.activateAt(2, 5)
	assert.Equal(t, "X", b.State().Selected())
	assert.Equal(t, interact.Selected, c.shapes[0].emphasis)

	c.activateAt(25, 5)
	assert.Equal(t, "X", b.State().Selected())

	c.activateAt(2, 5)
	assert.Equal(t, "", b.State().Selected())
	assert.Equal(t, interact.Unselected, c.shapes[0].emphasis)
}

func TestCanvasReprojectRefreshesAnchor(t *testing.T) {
	c, b := boundCanvas(t)
	c.pointerAt(2, 5)
	_, before, _, ok := b.State().Hover()
	require.True(t, ok)

	c.reproject(viewport{w: 31, h: 11, zoom: 2})
	_, after, _, ok := b.State().Hover()
	require.True(t, ok)
	assert.NotEqual(t, before, after)
	assert.Equal(t, interact.AnchorOf(c.shapes[0].Bounds()), after)
}

func TestCanvasReleaseRemovesHandlers(t *testing.T) {
	c, b := boundCanvas(t)
	assert.Equal(t, 3, c.subscribers(c.shapes[0]))
	assert.Equal(t, 0, c.subscribers(c.shapes[1]))

	b.Unbind()
	assert.Equal(t, 0, c.subscribers(c.shapes[0]))

	c.pointerAt(2, 5)
	_, _, _, ok := b.State().Hover()
	assert.False(t, ok)
}

func TestCanvasUnmountIgnoresPointer(t *testing.T) {
	c, b := boundCanvas(t)
	c.unmount()
	c.activateAt(2, 5)
	assert.Equal(t, "", b.State().Selected())
}

func TestCanvasTopmostShapeWins(t *testing.T) {
	a := &geom.Asset{}
	a.AddRegion(geom.Region{Label: "under", Polygons: square(0, 0, 10, 10)})
	a.AddRegion(geom.Region{Label: "over", Polygons: square(0, 0, 10, 10)})
	c := newCanvas(a)
	c.reproject(viewport{w: 20, h: 10, zoom: 1})
	hit := c.hitTest(5, 5)
	require.NotNil(t, hit)
	assert.Equal(t, "over", hit.Label())
}
