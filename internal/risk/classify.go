// Package risk classifies crime metrics into tiers and holds the per-region dataset.
package risk

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tier is a discrete risk classification.
type Tier int

const (
	Low Tier = iota
	Medium
	High
)

// Tier thresholds. A metric equal to a threshold belongs to the higher tier.
const (
	MediumThreshold = 40.0
	HighThreshold   = 70.0
)

// Classify maps a metric to its tier. Values outside 0..100 are not clamped.
func Classify(metric float64) Tier {
	switch {
	case metric >= HighThreshold:
		return High
	case metric >= MediumThreshold:
		return Medium
	default:
		return Low
	}
}

// Tiers lists every tier from highest to lowest, the order the legend uses.
func Tiers() []Tier { return []Tier{High, Medium, Low} }

func (t Tier) String() string {
	switch t {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// Label is the capitalised display name, e.g. "High".
func (t Tier) Label() string { return cases.Title(language.English).String(t.String()) }

// Color is the presentation colour for the tier.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case High:
		return lipgloss.Color("#DC2626")
	case Medium:
		return lipgloss.Color("#F97316")
	default:
		return lipgloss.Color("#22C55E")
	}
}

// ParseTier accepts the lower-case names produced by String.
func ParseTier(s string) (Tier, bool) {
	switch s {
	case "high":
		return High, true
	case "medium":
		return Medium, true
	case "low":
		return Low, true
	}
	return Low, false
}
