package risk

import (
	"sort"
)

// Record is one region's metric and the tier derived from it.
type Record struct {
	ID     string  `yaml:"region" json:"region"`
	Metric float64 `yaml:"metric" json:"metric"`
	Tier   Tier    `yaml:"-" json:"-"`
}

// Dataset is a read-only mapping from region name to Record.
// Keys are matched exactly, case and spelling included.
type Dataset struct {
	records map[string]Record
}

// NewDataset builds a Dataset from region metrics. Tiers are always derived with Classify.
func NewDataset(metrics map[string]float64) *Dataset {
	d := &Dataset{records: make(map[string]Record, len(metrics))}
	for id, v := range metrics {
		d.records[id] = Record{ID: id, Metric: v, Tier: Classify(v)}
	}
	return d
}

// Lookup returns the record for id. A missing region is not an error.
func (d *Dataset) Lookup(id string) (Record, bool) {
	if d == nil {
		return Record{}, false
	}
	r, ok := d.records[id]
	return r, ok
}

// Len is the number of tracked regions.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns every record sorted by region name.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	out := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByRisk returns every record grouped by tier, highest first, and by
// descending metric within a tier.
func (d *Dataset) ByRisk() []Record {
	out := d.Records()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier > out[j].Tier
		}
		return out[i].Metric > out[j].Metric
	})
	return out
}

// Names returns the sorted region names.
func (d *Dataset) Names() []string {
	recs := d.Records()
	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.ID
	}
	return names
}

// Default is the built-in state-level table.
func Default() *Dataset {
	return NewDataset(map[string]float64{
		"Jammu and Kashmir": 45,
		"Himachal Pradesh":  25,
		"Punjab":            55,
		"Uttarakhand":       30,
		"Haryana":           60,
		"Rajasthan":         70,
		"Uttar Pradesh":     85,
		"Bihar":             75,
		"West Bengal":       65,
		"Gujarat":           50,
		"Madhya Pradesh":    55,
		"Maharashtra":       80,
		"Karnataka":         50,
		"Tamil Nadu":        40,
		"Kerala":            30,
	})
}
