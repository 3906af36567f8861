package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a non-zero extent on both axes.
func (b BBox) Valid() bool { return b.MaxX > b.MinX && b.MaxY > b.MinY }

// Ring is a closed sequence of lon/lat vertices.
type Ring = [][2]float64

// Polygon holds rings: first outer, following holes.
type Polygon = []Ring

// Region is one named shape of a map asset. Label is the identifying attribute;
// an empty label marks a shape nothing can be looked up for.
type Region struct {
	Label    string
	Polygons []Polygon
}

// Asset is a loaded region map.
type Asset struct {
	Name    string
	Regions []Region
	BBox    BBox

	seeded bool
}

// DefaultLabelAttrs are the feature attributes tried, in order, for a region's label.
var DefaultLabelAttrs = []string{"name", "title"}

// AddRegion appends a region and grows the bbox. Regions without vertices are dropped.
func (a *Asset) AddRegion(r Region) {
	n := 0
	for _, poly := range r.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				a.extend(p)
				n++
			}
		}
	}
	if n == 0 {
		return
	}
	a.Regions = append(a.Regions, r)
}

func (a *Asset) extend(pt [2]float64) {
	if !a.seeded {
		a.BBox = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
		a.seeded = true
		return
	}
	if pt[0] < a.BBox.MinX {
		a.BBox.MinX = pt[0]
	}
	if pt[1] < a.BBox.MinY {
		a.BBox.MinY = pt[1]
	}
	if pt[0] > a.BBox.MaxX {
		a.BBox.MaxX = pt[0]
	}
	if pt[1] > a.BBox.MaxY {
		a.BBox.MaxY = pt[1]
	}
}

// Labels returns the non-empty region labels in asset order.
func (a *Asset) Labels() []string {
	var out []string
	for _, r := range a.Regions {
		if r.Label != "" {
			out = append(out, r.Label)
		}
	}
	return out
}
