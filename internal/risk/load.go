package risk

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadDataset reads a dataset file. Supported: .csv and .yaml/.yml.
func LoadDataset(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, eris.Errorf("risk: unsupported dataset file %q", filepath.Base(path))
	}
}

// loadCSV reads a header row and region/metric columns.
// Column detection: region|name|state|id and metric|value|crime_rate|rate (case-insensitive).
// An optional tier|risk_level column must agree with Classify.
func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "risk: open dataset")
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "risk: read csv")
	}
	if len(recs) == 0 {
		return nil, eris.New("risk: empty csv")
	}
	idxID, idxMetric, idxTier := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "region", "name", "state", "id":
			if idxID == -1 {
				idxID = i
			}
		case "metric", "value", "crime_rate", "rate":
			if idxMetric == -1 {
				idxMetric = i
			}
		case "tier", "risk_level", "risklevel":
			if idxTier == -1 {
				idxTier = i
			}
		}
	}
	if idxID == -1 || idxMetric == -1 {
		return nil, eris.New("risk: csv region/metric columns not found")
	}
	metrics := make(map[string]float64, len(recs)-1)
	for line, row := range recs[1:] {
		if idxID >= len(row) || idxMetric >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idxID])
		if id == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idxMetric]), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "risk: csv line %d metric", line+2)
		}
		if _, dup := metrics[id]; dup {
			return nil, eris.Errorf("risk: duplicate region %q", id)
		}
		if idxTier >= 0 && idxTier < len(row) {
			if err := checkTier(id, v, row[idxTier]); err != nil {
				return nil, err
			}
		}
		metrics[id] = v
	}
	if len(metrics) == 0 {
		return nil, eris.New("risk: csv has no records")
	}
	return NewDataset(metrics), nil
}

type yamlDataset struct {
	Regions []struct {
		Region string  `yaml:"region"`
		Metric float64 `yaml:"metric"`
		Tier   string  `yaml:"tier"`
	} `yaml:"regions"`
}

func loadYAML(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "risk: read dataset")
	}
	var doc yamlDataset
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, eris.Wrap(err, "risk: decode yaml")
	}
	metrics := make(map[string]float64, len(doc.Regions))
	for _, r := range doc.Regions {
		if r.Region == "" {
			continue
		}
		if _, dup := metrics[r.Region]; dup {
			return nil, eris.Errorf("risk: duplicate region %q", r.Region)
		}
		if err := checkTier(r.Region, r.Metric, r.Tier); err != nil {
			return nil, err
		}
		metrics[r.Region] = r.Metric
	}
	if len(metrics) == 0 {
		return nil, eris.New("risk: yaml has no regions")
	}
	return NewDataset(metrics), nil
}

// checkTier rejects a declared tier that disagrees with the metric. Empty means undeclared.
func checkTier(id string, metric float64, declared string) error {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if declared == "" {
		return nil
	}
	t, ok := ParseTier(declared)
	if !ok {
		return eris.Errorf("risk: region %q has unknown tier %q", id, declared)
	}
	if want := Classify(metric); t != want {
		return eris.Errorf("risk: region %q declares tier %s but metric %g is %s", id, t, metric, want)
	}
	return nil
}
