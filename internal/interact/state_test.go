package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateHoverInvariant(t *testing.T) {
	s := NewState()
	_, _, _, ok := s.Hover()
	assert.False(t, ok)

	s.SetHover("X", Anchor{X: 5, Y: 2}, "X\n85")
	label, a, content, ok := s.Hover()
	assert.True(t, ok)
	assert.Equal(t, "X", label)
	assert.Equal(t, Anchor{X: 5, Y: 2}, a)
	assert.Equal(t, "X\n85", content)

	s.SetHover("Y", Anchor{X: 9, Y: 1}, "Y")
	label, _, _, _ = s.Hover()
	assert.Equal(t, "Y", label, "last pointer wins")

	s.ClearHover()
	snap := s.Snapshot()
	assert.False(t, snap.Hovering)
	assert.Empty(t, snap.HoverLabel)
	assert.Equal(t, Anchor{}, snap.HoverAnchor)

	s.SetHover("", Anchor{X: 1}, "ignored")
	assert.False(t, s.Snapshot().Hovering, "empty label never sets an anchor")
}

func TestStateClearHoverFor(t *testing.T) {
	s := NewState()
	s.SetHover("A", Anchor{}, "a")
	assert.False(t, s.ClearHoverFor("B"))
	assert.True(t, s.Snapshot().Hovering)
	assert.True(t, s.ClearHoverFor("A"))
	assert.False(t, s.Snapshot().Hovering)
}

func TestStateToggleSelection(t *testing.T) {
	s := NewState()
	assert.Equal(t, "A", s.ToggleSelection("A"))
	assert.Equal(t, "B", s.ToggleSelection("B"), "different label replaces")
	assert.Equal(t, "", s.ToggleSelection("B"), "same label clears")
	assert.Equal(t, "", s.Selected())
}

func TestStateObserve(t *testing.T) {
	s := NewState()
	var seen []Snapshot
	s.Observe(func(snap Snapshot) { seen = append(seen, snap) })

	s.SetHover("A", Anchor{X: 1}, "a")
	s.ToggleSelection("A")
	s.ClearHover()
	s.ClearHover()

	if assert.Len(t, seen, 3) {
		assert.True(t, seen[0].Hovering)
		assert.Equal(t, "A", seen[1].Selected)
		assert.False(t, seen[2].Hovering)
	}
}
