package interact

type fakeShape struct {
	label    string
	bounds   Rect
	emphasis Emphasis
}

func (s *fakeShape) Label() string          { return s.label }
func (s *fakeShape) Bounds() Rect           { return s.bounds }
func (s *fakeShape) SetEmphasis(e Emphasis) { s.emphasis = e }

type fakeDoc struct {
	shapes   []*fakeShape
	enter    map[Shape][]func()
	leave    map[Shape][]func()
	activate map[Shape][]func()
	removed  int
}

func newFakeDoc(shapes ...*fakeShape) *fakeDoc {
	return &fakeDoc{
		shapes:   shapes,
		enter:    map[Shape][]func(){},
		leave:    map[Shape][]func(){},
		activate: map[Shape][]func(){},
	}
}

func (d *fakeDoc) Shapes() []Shape {
	out := make([]Shape, len(d.shapes))
	for i, s := range d.shapes {
		out[i] = s
	}
	return out
}

func (d *fakeDoc) OnEnter(s Shape, fn func()) Handle    { return d.add(d.enter, s, fn) }
func (d *fakeDoc) OnLeave(s Shape, fn func()) Handle    { return d.add(d.leave, s, fn) }
func (d *fakeDoc) OnActivate(s Shape, fn func()) Handle { return d.add(d.activate, s, fn) }

// add keeps callbacks after Remove so tests can simulate late delivery.
func (d *fakeDoc) add(m map[Shape][]func(), s Shape, fn func()) Handle {
	m[s] = append(m[s], fn)
	return NewHandle(func() { d.removed++ })
}

func (d *fakeDoc) handlers(s Shape) int {
	return len(d.enter[s]) + len(d.leave[s]) + len(d.activate[s])
}

func fire(m map[Shape][]func(), s Shape) {
	for _, fn := range m[s] {
		fn()
	}
}

func (d *fakeDoc) hover(s Shape) { fire(d.enter, s) }
func (d *fakeDoc) out(s Shape)   { fire(d.leave, s) }
func (d *fakeDoc) click(s Shape) { fire(d.activate, s) }
