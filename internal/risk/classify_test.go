package risk

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		metric float64
		want   Tier
	}{
		{metric: 0, want: Low},
		{metric: 25, want: Low},
		{metric: 39.999, want: Low},
		{metric: 40, want: Medium},
		{metric: 55, want: Medium},
		{metric: 69.99, want: Medium},
		{metric: 70, want: High},
		{metric: 85, want: High},
		{metric: 100, want: High},
		{metric: -12, want: Low},
		{metric: 250, want: High},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.metric), "metric %g", tt.metric)
	}
}

func TestTierLabelAndColor(t *testing.T) {
	assert.Equal(t, "High", High.Label())
	assert.Equal(t, "Medium", Medium.Label())
	assert.Equal(t, "Low", Low.Label())

	assert.Equal(t, lipgloss.Color("#DC2626"), High.Color())
	assert.Equal(t, lipgloss.Color("#F97316"), Medium.Color())
	assert.Equal(t, lipgloss.Color("#22C55E"), Low.Color())

	seen := map[lipgloss.Color]bool{}
	for _, tier := range Tiers() {
		seen[tier.Color()] = true
	}
	assert.Len(t, seen, 3)
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, ok := ParseTier(tier.String())
		assert.True(t, ok)
		assert.Equal(t, tier, got)
	}
	_, ok := ParseTier("severe")
	assert.False(t, ok)
}
