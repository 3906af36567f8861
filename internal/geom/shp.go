package geom

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// LoadShapefile reads polygon records; the first of labelAttrs found among the DBF
// fields (case-insensitive) supplies each region's label.
func LoadShapefile(path string, labelAttrs []string) (*Asset, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geom: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	if len(labelAttrs) == 0 {
		labelAttrs = DefaultLabelAttrs
	}
	fieldIdx := make(map[string]int)
	for i, f := range reader.Fields() {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToLower(name)] = i
	}
	labelIdx := -1
	for _, attr := range labelAttrs {
		if i, ok := fieldIdx[strings.ToLower(attr)]; ok {
			labelIdx = i
			break
		}
	}

	a := &Asset{}
	skipped := 0
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok || poly == nil {
			skipped++
			continue
		}
		label := ""
		if labelIdx >= 0 {
			label = strings.TrimSpace(strings.TrimRight(reader.Attribute(labelIdx), "\x00"))
		}
		a.AddRegion(Region{Label: label, Polygons: shpPolygon(poly)})
	}
	if skipped > 0 {
		zap.L().Debug("geom: skipped non-polygon shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	if len(a.Regions) == 0 {
		return nil, eris.New("geom: shapefile has no polygon records")
	}
	return a, nil
}

// shpPolygon splits a shapefile polygon into parts. Shapefile parts do not mark
// which ring is a hole, so every part is treated as its own outer ring.
func shpPolygon(p *shp.Polygon) []Polygon {
	var out []Polygon
	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		end := int32(len(p.Points))
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		}
		ring := make(Ring, 0, end-start)
		for j := start; j < end; j++ {
			ring = append(ring, [2]float64{p.Points[j].X, p.Points[j].Y})
		}
		if len(ring) >= 3 {
			out = append(out, Polygon{ring})
		}
	}
	return out
}
