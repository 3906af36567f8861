// Package geom loads region map assets and answers point-in-region queries.
package geom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Extensions lists the asset file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".wkt", ".kml", ".shp"}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a region asset, choosing the decoder from the file extension.
func Load(path string, labelAttrs []string) (*Asset, error) {
	var (
		a   *Asset
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		a, err = LoadGeoJSON(path, labelAttrs)
	case ".kml":
		a, err = LoadKML(path)
	case ".shp":
		a, err = LoadShapefile(path, labelAttrs)
	case ".wkt":
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, eris.Wrap(rerr, "geom: read wkt")
		}
		a, err = ParseRegionsWKT(string(data))
	default:
		return nil, eris.Errorf("geom: unsupported file %q", ext)
	}
	if err != nil {
		return nil, err
	}
	a.Name = filepath.Base(path)
	return a, nil
}
