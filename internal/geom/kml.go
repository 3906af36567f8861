package geom

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer  kmlRing   `xml:"outerBoundaryIs"`
	Inners []kmlRing `xml:"innerBoundaryIs"`
}

type kmlPlacemark struct {
	Name     string       `xml:"name"`
	Polygons []kmlPolygon `xml:"Polygon"`
	Multi    []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlDoc struct {
	Document kmlFolder `xml:"Document"`
	kmlFolder
}

// LoadKML reads Placemark polygons; the Placemark <name> is the region label.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "geom: read kml")
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "geom: decode kml")
	}
	a := &Asset{}
	var walk func(f kmlFolder)
	walk = func(f kmlFolder) {
		for _, pm := range f.Placemarks {
			var polys []Polygon
			for _, kp := range append(pm.Polygons, pm.Multi...) {
				outer := parseKMLCoords(kp.Outer.Coordinates)
				if len(outer) < 3 {
					continue
				}
				poly := Polygon{outer}
				for _, in := range kp.Inners {
					if r := parseKMLCoords(in.Coordinates); len(r) >= 3 {
						poly = append(poly, r)
					}
				}
				polys = append(polys, poly)
			}
			if len(polys) > 0 {
				a.AddRegion(Region{Label: strings.TrimSpace(pm.Name), Polygons: polys})
			}
		}
		for _, sub := range f.Folders {
			walk(sub)
		}
	}
	walk(doc.kmlFolder)
	walk(doc.Document)
	if len(a.Regions) == 0 {
		return nil, eris.New("geom: kml: no polygon placemarks found")
	}
	return a, nil
}

func parseKMLCoords(s string) Ring {
	var ring Ring
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, [2]float64{lon, lat})
	}
	return ring
}
