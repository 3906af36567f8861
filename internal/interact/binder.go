package interact

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"crimemap/internal/risk"
)

// Option configures a Binder.
type Option func(*Binder)

// WithStrictHover makes pointer-leave clear the hover only when the region being
// left is the one currently hovered.
func WithStrictHover() Option {
	return func(b *Binder) { b.strictHover = true }
}

// WithLogger sets the logger used for bind passes.
func WithLogger(l *zap.Logger) Option {
	return func(b *Binder) { b.log = l }
}

// Binder attaches dataset-driven handlers to document shapes.
type Binder struct {
	dataset     *risk.Dataset
	state       *State
	strictHover bool
	log         *zap.Logger

	current *Binding
}

func NewBinder(dataset *risk.Dataset, state *State, opts ...Option) *Binder {
	b := &Binder{dataset: dataset, state: state, log: zap.L()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State is the interaction state this binder writes.
func (b *Binder) State() *State { return b.state }

// Dataset is the dataset shapes are looked up in.
func (b *Binder) Dataset() *risk.Dataset { return b.dataset }

// Binding is the set of subscriptions made by one Bind pass.
type Binding struct {
	live    bool
	handles []Handle
	shapes  map[string][]Shape
	inert   int
}

// Live reports whether the binding's callbacks may still change state.
func (bd *Binding) Live() bool { return bd != nil && bd.live }

// Bound is the number of shapes that received handlers.
func (bd *Binding) Bound() int {
	if bd == nil {
		return 0
	}
	n := 0
	for _, ss := range bd.shapes {
		n += len(ss)
	}
	return n
}

// Inert is the number of shapes left without handlers.
func (bd *Binding) Inert() int {
	if bd == nil {
		return 0
	}
	return bd.inert
}

// Has reports whether any shape labelled label was bound.
func (bd *Binding) Has(label string) bool {
	if bd == nil {
		return false
	}
	return len(bd.shapes[label]) > 0
}

// Release removes every subscription. Callbacks delivered afterwards are ignored.
func (bd *Binding) Release() {
	if bd == nil || !bd.live {
		return
	}
	bd.live = false
	for _, h := range bd.handles {
		h.Remove()
	}
	bd.handles = nil
}

// Bind releases the previous binding and subscribes to every shape of doc whose
// label is in the dataset. A nil document or one without matching shapes binds
// nothing; neither is an error.
func (b *Binder) Bind(doc Document) *Binding {
	b.Unbind()
	bd := &Binding{live: true, shapes: make(map[string][]Shape)}
	b.current = bd
	if doc == nil {
		b.log.Debug("interact: bind skipped, no document")
		return bd
	}
	for _, s := range doc.Shapes() {
		label := s.Label()
		if label == "" {
			bd.inert++
			continue
		}
		rec, ok := b.dataset.Lookup(label)
		if !ok {
			bd.inert++
			continue
		}
		b.attach(doc, bd, s, rec)
	}

	// A selection carried over from a previous asset survives only if the new one has it.
	if sel := b.state.Selected(); sel != "" {
		if bd.Has(sel) {
			for _, s := range bd.shapes[sel] {
				s.SetEmphasis(Selected)
			}
		} else {
			b.state.ClearSelection()
		}
	}
	b.log.Debug("interact: bind pass",
		zap.Int("bound", bd.Bound()),
		zap.Int("inert", bd.inert),
	)
	return bd
}

// Unbind releases the current binding and clears the hover, which referred to
// shapes of the unmounted document.
func (b *Binder) Unbind() {
	if b.current == nil {
		return
	}
	b.current.Release()
	b.current = nil
	b.state.ClearHover()
}

// Deselect drops the selection and restores the selected shapes' outline.
func (b *Binder) Deselect() {
	sel := b.state.Selected()
	if sel == "" {
		return
	}
	if b.current != nil {
		for _, s := range b.current.shapes[sel] {
			s.SetEmphasis(Unselected)
		}
	}
	b.state.ClearSelection()
}

// Current is the binding made by the last Bind, or nil.
func (b *Binder) Current() *Binding { return b.current }

func (b *Binder) attach(doc Document, bd *Binding, s Shape, rec risk.Record) {
	label := rec.ID
	content := TooltipContent(rec)
	s.SetEmphasis(Unselected)
	bd.shapes[label] = append(bd.shapes[label], s)

	bd.handles = append(bd.handles,
		doc.OnEnter(s, func() {
			if !bd.live {
				return
			}
			b.state.SetHover(label, AnchorOf(s.Bounds()), content)
		}),
		doc.OnLeave(s, func() {
			if !bd.live {
				return
			}
			if b.strictHover {
				b.state.ClearHoverFor(label)
				return
			}
			b.state.ClearHover()
		}),
		doc.OnActivate(s, func() {
			if !bd.live {
				return
			}
			b.toggle(bd, label)
		}),
	)
}

// toggle applies the selection rule and keeps exactly the selected label emphasised.
func (b *Binder) toggle(bd *Binding, label string) {
	prev := b.state.Selected()
	now := b.state.ToggleSelection(label)
	if prev != "" && prev != now {
		for _, s := range bd.shapes[prev] {
			s.SetEmphasis(Unselected)
		}
	}
	if now != "" {
		for _, s := range bd.shapes[now] {
			s.SetEmphasis(Selected)
		}
	}
	b.log.Debug("interact: selection changed",
		zap.String("previous", prev),
		zap.String("selected", now),
	)
}

// TooltipContent formats a record as region name, metric and capitalised tier.
func TooltipContent(rec risk.Record) string {
	return fmt.Sprintf("%s\nCrime Rate: %s\nRisk Level: %s",
		rec.ID, strconv.FormatFloat(rec.Metric, 'f', -1, 64), rec.Tier.Label())
}
