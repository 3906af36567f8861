package interact

// Rect is a rendered bounding box in screen units.
type Rect struct {
	X, Y, W, H float64
}

// Anchor is the screen point a tooltip hangs from.
type Anchor struct {
	X, Y float64
}

// AnchorOf returns the horizontal centre of r's top edge. Any upward offset is
// applied by the renderer, not stored here.
func AnchorOf(r Rect) Anchor {
	return Anchor{X: r.X + r.W/2, Y: r.Y}
}

// Emphasis is the outline weight of a shape.
type Emphasis int

const (
	Unselected Emphasis = 2
	Selected   Emphasis = 4
)

// Shape is a non-owning handle to one renderable region of a loaded document.
type Shape interface {
	// Label is the identifying attribute; empty when the region carries none.
	Label() string
	// Bounds is the shape's current rendered bounding box.
	Bounds() Rect
	SetEmphasis(Emphasis)
}

// Document is a loaded map asset that can deliver pointer events per shape.
type Document interface {
	Shapes() []Shape
	OnEnter(s Shape, fn func()) Handle
	OnLeave(s Shape, fn func()) Handle
	OnActivate(s Shape, fn func()) Handle
}

// Handle removes a subscription. The zero Handle is a no-op.
type Handle struct {
	remove func()
}

// NewHandle wraps a removal function for Document implementations.
func NewHandle(remove func()) Handle { return Handle{remove: remove} }

// Remove unsubscribes. Calling it more than once is harmless.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
