package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

var attrColumns = []table.Column{
	{Title: "Region", Width: 20},
	{Title: "Crime Rate", Width: 11},
	{Title: "Risk Level", Width: 11},
	{Title: "On map", Width: 7},
}

// datasetRows lists every record with whether the mounted asset tracks it,
// by name or, for the hotspot view, by tier and metric.
func (m *Model) datasetRows() []table.Row {
	bd := m.binder.Current()
	ds := m.binder.Dataset()
	recs := ds.Records()
	if m.attrByRisk {
		recs = ds.ByRisk()
	}
	rows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		on := "no"
		if bd.Live() && bd.Has(r.ID) {
			on = "yes"
		}
		rows = append(rows, table.Row{
			r.ID,
			strconv.FormatFloat(r.Metric, 'f', -1, 64),
			r.Tier.Label(),
			on,
		})
	}
	return rows
}

// refreshAttrs rebuilds the dataset table.
func (m *Model) refreshAttrs() {
	// clear rows first so SetColumns never sees a mismatched row
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(attrColumns)
	m.tbl.SetRows(m.datasetRows())
}

// toggleAttrSort switches the table between name order and hotspot order.
func (m *Model) toggleAttrSort() {
	m.attrByRisk = !m.attrByRisk
	if m.attrByRisk {
		m.status = "dataset: hotspots by risk"
	} else {
		m.status = "dataset: by name"
	}
	m.refreshAttrs()
}
