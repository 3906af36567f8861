package interact

// Snapshot is a copy of State for readers.
type Snapshot struct {
	HoverLabel   string
	HoverContent string
	HoverAnchor  Anchor
	Hovering     bool
	Selected     string
}

// State holds the current hover and selection. The hover label and anchor are
// always set or cleared together, and at most one label is selected.
//
// State is confined to the UI event loop and is not safe for concurrent use.
type State struct {
	hoverLabel   string
	hoverContent string
	hoverAnchor  Anchor
	hovering     bool
	selected     string

	observers []func(Snapshot)
}

func NewState() *State { return &State{} }

// Observe registers fn to run after every change.
func (s *State) Observe(fn func(Snapshot)) {
	s.observers = append(s.observers, fn)
}

func (s *State) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range s.observers {
		fn(snap)
	}
}

// SetHover replaces any previous hover; the last pointer wins.
// An empty label clears the hover instead.
func (s *State) SetHover(label string, a Anchor, content string) {
	if label == "" {
		s.ClearHover()
		return
	}
	s.hoverLabel, s.hoverAnchor, s.hoverContent, s.hovering = label, a, content, true
	s.notify()
}

// ClearHover drops the hover regardless of which region owns it.
func (s *State) ClearHover() {
	if !s.hovering {
		return
	}
	s.hoverLabel, s.hoverAnchor, s.hoverContent, s.hovering = "", Anchor{}, "", false
	s.notify()
}

// ClearHoverFor drops the hover only when label currently owns it.
func (s *State) ClearHoverFor(label string) bool {
	if !s.hovering || s.hoverLabel != label {
		return false
	}
	s.ClearHover()
	return true
}

// ToggleSelection clears the selection when label is already selected and
// selects label otherwise. It returns the selection after the toggle.
func (s *State) ToggleSelection(label string) string {
	if label == "" || s.selected == label {
		s.selected = ""
	} else {
		s.selected = label
	}
	s.notify()
	return s.selected
}

// ClearSelection drops the selection.
func (s *State) ClearSelection() {
	if s.selected == "" {
		return
	}
	s.selected = ""
	s.notify()
}

// Hover reports the hovered label, its anchor and tooltip content.
func (s *State) Hover() (label string, a Anchor, content string, ok bool) {
	return s.hoverLabel, s.hoverAnchor, s.hoverContent, s.hovering
}

// Selected is the selected label, or "".
func (s *State) Selected() string { return s.selected }

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		HoverLabel:   s.hoverLabel,
		HoverContent: s.hoverContent,
		HoverAnchor:  s.hoverAnchor,
		Hovering:     s.hovering,
		Selected:     s.selected,
	}
}
