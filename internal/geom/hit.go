package geom

import (
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// FlatRing returns ring as closed XY flat coordinates, the form go-geom's
// ring predicates take. Rings with fewer than three vertices yield nil.
func FlatRing(ring Ring) []float64 {
	if len(ring) < 3 {
		return nil
	}
	out := make([]float64, 0, 2*len(ring)+2)
	for _, p := range ring {
		out = append(out, p[0], p[1])
	}
	if first, last := ring[0], ring[len(ring)-1]; first != last {
		out = append(out, first[0], first[1])
	}
	return out
}

// FlatPolygon flattens every ring of poly; the first stays the outer ring.
func FlatPolygon(poly Polygon) [][]float64 {
	out := make([][]float64, 0, len(poly))
	for _, r := range poly {
		out = append(out, FlatRing(r))
	}
	return out
}

// RingContains reports whether (x, y) lies inside or on ring.
func RingContains(ring Ring, x, y float64) bool {
	return flatRingContains(FlatRing(ring), x, y)
}

// PolygonContains tests the outer ring and excludes holes.
func PolygonContains(poly Polygon, x, y float64) bool {
	return FlatPolygonContains(FlatPolygon(poly), x, y)
}

// FlatPolygonContains is PolygonContains over rings already flattened by FlatPolygon.
func FlatPolygonContains(rings [][]float64, x, y float64) bool {
	if len(rings) == 0 || !flatRingContains(rings[0], x, y) {
		return false
	}
	for _, hole := range rings[1:] {
		if flatRingContains(hole, x, y) {
			return false
		}
	}
	return true
}

func flatRingContains(flat []float64, x, y float64) bool {
	if len(flat) < 8 {
		return false
	}
	return xy.IsPointInRing(gogeom.XY, gogeom.Coord{x, y}, flat)
}
