package geom

import (
	"bufio"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ParseRegionsWKT parses one region per line in the form "Name|POLYGON((x y, ...))".
// A line without a name yields an unlabelled region. Blank lines and lines starting
// with '#' are skipped.
func ParseRegionsWKT(text string) (*Asset, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, eris.New("geom: empty wkt")
	}
	a := &Asset{}
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		label, body := "", row
		if i := strings.Index(row, "|"); i >= 0 {
			label, body = strings.TrimSpace(row[:i]), strings.TrimSpace(row[i+1:])
		}
		g, err := wkt.Unmarshal(body)
		if err != nil {
			return nil, eris.Wrapf(err, "geom: wkt line %d", line)
		}
		polys := polygonsOf(g)
		if len(polys) == 0 {
			return nil, eris.Errorf("geom: wkt line %d is not a polygon", line)
		}
		a.AddRegion(Region{Label: label, Polygons: polys})
	}
	if err := sc.Err(); err != nil {
		return nil, eris.Wrap(err, "geom: scan wkt")
	}
	if len(a.Regions) == 0 {
		return nil, eris.New("geom: wkt: no regions parsed")
	}
	return a, nil
}
