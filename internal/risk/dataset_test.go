package risk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetLookup(t *testing.T) {
	d := NewDataset(map[string]float64{"X": 85, "Y": 25})

	x, ok := d.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, Record{ID: "X", Metric: 85, Tier: High}, x)

	_, ok = d.Lookup("x")
	assert.False(t, ok, "lookup is case sensitive")
	_, ok = d.Lookup("Z")
	assert.False(t, ok)

	var nilSet *Dataset
	_, ok = nilSet.Lookup("X")
	assert.False(t, ok)
	assert.Zero(t, nilSet.Len())
}

func TestDefaultTiersAreConsistent(t *testing.T) {
	d := Default()
	assert.Equal(t, 15, d.Len())
	for _, r := range d.Records() {
		assert.Equal(t, Classify(r.Metric), r.Tier, r.ID)
	}
	tn, ok := d.Lookup("Tamil Nadu")
	require.True(t, ok)
	assert.Equal(t, Medium, tn.Tier)
	rj, _ := d.Lookup("Rajasthan")
	assert.Equal(t, High, rj.Tier)
}

func TestRecordsSorted(t *testing.T) {
	d := NewDataset(map[string]float64{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, d.Names())
}

func TestByRiskGroupsTiers(t *testing.T) {
	d := NewDataset(map[string]float64{"Kerala": 30, "Bihar": 75, "Goa": 45, "Delhi": 85, "Punjab": 45, "Assam": 10})

	var ids []string
	for _, r := range d.ByRisk() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"Delhi", "Bihar", "Goa", "Punjab", "Kerala", "Assam"}, ids)
	assert.Nil(t, (*Dataset)(nil).ByRisk())
}

func TestLoadDatasetRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "risk.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("region,metric\nGoa,45\nGoa,80\n"), 0o644))
	_, err := LoadDataset(csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate region "Goa"`)

	yamlPath := filepath.Join(dir, "risk.yaml")
	doc := "regions:\n  - region: Goa\n    metric: 45\n  - region: Goa\n    metric: 80\n"
	require.NoError(t, os.WriteFile(yamlPath, []byte(doc), 0o644))
	_, err = LoadDataset(yamlPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate region "Goa"`)
}

func TestLoadDatasetCSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "risk.csv")
	require.NoError(t, os.WriteFile(p, []byte("State, Crime_Rate, Tier\nBihar, 75, high\nKerala, 30,\n"), 0o644))

	d, err := LoadDataset(p)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	r, ok := d.Lookup("Kerala")
	require.True(t, ok)
	assert.Equal(t, Low, r.Tier)
}

func TestLoadDatasetCSVRejectsInconsistentTier(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "risk.csv")
	require.NoError(t, os.WriteFile(p, []byte("region,metric,tier\nTamil Nadu,40,low\n"), 0o644))

	_, err := LoadDataset(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tamil Nadu")
}

func TestLoadDatasetCSVMissingColumns(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "risk.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b\n1,2\n"), 0o644))

	_, err := LoadDataset(p)
	assert.Error(t, err)
}

func TestLoadDatasetYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "risk.yaml")
	doc := `
regions:
  - region: Punjab
    metric: 55
    tier: medium
  - region: Maharashtra
    metric: 80
`
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	d, err := LoadDataset(p)
	require.NoError(t, err)
	r, ok := d.Lookup("Maharashtra")
	require.True(t, ok)
	assert.Equal(t, High, r.Tier)
}

func TestLoadDatasetUnsupported(t *testing.T) {
	_, err := LoadDataset("risk.txt")
	assert.Error(t, err)
}
