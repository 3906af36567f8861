package geom

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

type rawGeoJSON struct {
	Type     string             `json:"type"`
	Features []*geojson.Feature `json:"features"`
}

// LoadGeoJSON reads a Feature or FeatureCollection of Polygon/MultiPolygon features.
// Each feature becomes one Region labelled by the first of labelAttrs present in its properties.
func LoadGeoJSON(path string, labelAttrs []string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "geom: read geojson")
	}
	return DecodeGeoJSON(data, labelAttrs)
}

// DecodeGeoJSON is LoadGeoJSON over an in-memory document.
func DecodeGeoJSON(data []byte, labelAttrs []string) (*Asset, error) {
	var raw rawGeoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "geom: decode geojson")
	}
	var features []*geojson.Feature
	switch raw.Type {
	case "FeatureCollection":
		features = raw.Features
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, eris.Wrap(err, "geom: decode feature")
		}
		features = []*geojson.Feature{&f}
	default:
		return nil, eris.Errorf("geom: unsupported geojson type %q", raw.Type)
	}
	a := &Asset{}
	for _, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		polys := polygonsOf(f.Geometry)
		if len(polys) == 0 {
			continue
		}
		a.AddRegion(Region{Label: labelFrom(f.Properties, labelAttrs), Polygons: polys})
	}
	if len(a.Regions) == 0 {
		return nil, eris.New("geom: no polygon features found")
	}
	return a, nil
}

func labelFrom(props map[string]interface{}, attrs []string) string {
	if len(attrs) == 0 {
		attrs = DefaultLabelAttrs
	}
	for _, k := range attrs {
		switch v := props[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}

// polygonsOf flattens Polygon and MultiPolygon geometries; other types yield nothing.
func polygonsOf(g gogeom.T) []Polygon {
	switch t := g.(type) {
	case *gogeom.Polygon:
		if p := polygonOf(t); len(p) > 0 {
			return []Polygon{p}
		}
	case *gogeom.MultiPolygon:
		var out []Polygon
		for i := 0; i < t.NumPolygons(); i++ {
			if p := polygonOf(t.Polygon(i)); len(p) > 0 {
				out = append(out, p)
			}
		}
		return out
	case *gogeom.GeometryCollection:
		var out []Polygon
		for _, sub := range t.Geoms() {
			out = append(out, polygonsOf(sub)...)
		}
		return out
	}
	return nil
}

func polygonOf(p *gogeom.Polygon) Polygon {
	var poly Polygon
	for i := 0; i < p.NumLinearRings(); i++ {
		coords := p.LinearRing(i).Coords()
		ring := make(Ring, 0, len(coords))
		for _, c := range coords {
			ring = append(ring, [2]float64{c.X(), c.Y()})
		}
		if len(ring) >= 3 {
			poly = append(poly, ring)
		}
	}
	return poly
}
