package reveal

import "math"

// elementIDCounter is a plain counter. reveal runs on one goroutine.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the in-memory reference Target: a renderable box with a layout
// position assigned by the host and a set of animatable properties layered on
// top of it. Hosts that own their own element types can implement Target
// directly instead.
type Element struct {
	// Identity
	ID   uint32
	Name string
	Text string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout is the untransformed document-space box assigned by the host.
	// Scroll triggers measure against it.
	Layout Rect

	// Animatable properties
	Opacity   float64
	X, Y      float64
	Scale     float64
	Rotation  float64
	RotationY float64
	Width     float64

	// Presentation
	Color        Color
	ZIndex       int
	Visible      bool
	Interactable bool

	// Per-element pointer callbacks (nil by default)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	handlers handlerRegistry
	disposed bool
}

// NewElement creates a visible, fully opaque, un-transformed element with the
// given layout box.
func NewElement(name string, layout Rect) *Element {
	return &Element{
		ID:      nextElementID(),
		Name:    name,
		Layout:  layout,
		Opacity: 1,
		Scale:   1,
		Width:   layout.Width,
		Color:   ColorWhite,
		Visible: true,
	}
}

// Prop implements Target.
func (e *Element) Prop(p Prop) (float64, bool) {
	switch p {
	case Opacity:
		return e.Opacity, true
	case X:
		return e.X, true
	case Y:
		return e.Y, true
	case Scale:
		return e.Scale, true
	case Rotation:
		return e.Rotation, true
	case RotationY:
		return e.RotationY, true
	case Width:
		return e.Width, true
	}
	return 0, false
}

// SetProp implements Target. Opacity is clamped to [0, 1].
func (e *Element) SetProp(p Prop, v float64) {
	switch p {
	case Opacity:
		e.Opacity = clamp01(v)
	case X:
		e.X = v
	case Y:
		e.Y = v
	case Scale:
		e.Scale = v
	case Rotation:
		e.Rotation = v
	case RotationY:
		e.RotationY = v
	case Width:
		e.Width = v
	}
}

// Bounds returns the element's layout box.
func (e *Element) Bounds() Rect {
	return e.Layout
}

// Disposed reports whether Dispose has been called. A nil element counts as
// disposed.
func (e *Element) Disposed() bool {
	return e == nil || e.disposed
}

// Dispose detaches the element from its parent and marks it and its subtree
// disposed. Animations targeting a disposed element stop writing to it.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	if e.Parent != nil {
		e.Parent.RemoveChild(e)
	}
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, c := range e.children {
		c.Parent = nil
		c.dispose()
	}
	e.children = nil
	e.handlers = handlerRegistry{}
	e.OnPointerEnter = nil
	e.OnPointerLeave = nil
}

// AddChild appends child to e's children, reparenting it if needed.
func (e *Element) AddChild(child *Element) {
	if child == nil || child == e || child.disposed {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. No-op if child is not a direct child.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			child.Parent = nil
			return
		}
	}
}

// Children returns the element's children in insertion order. The returned
// slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// ChildTargets returns the children as a Target slice, for stagger groups.
func (e *Element) ChildTargets() []Target {
	out := make([]Target, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Composite is the accumulated visual state of an element and its ancestors,
// as a host draws it.
type Composite struct {
	OffsetX, OffsetY float64
	Alpha            float64
	Scale            float64
	Rotation         float64
}

// Composite folds translation, opacity, scale and rotation from the root down
// to e. Translations add; opacity and scale multiply.
func (e *Element) Composite() Composite {
	c := Composite{Alpha: 1, Scale: 1}
	for n := e; n != nil; n = n.Parent {
		c.OffsetX += n.X
		c.OffsetY += n.Y
		c.Alpha *= n.Opacity
		c.Scale *= n.Scale
		c.Rotation += n.Rotation
	}
	return c
}

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Corners returns e's drawn corners in document space: top-left, top-right,
// bottom-right, bottom-left. Scale and rotation pivot on the element's own
// layout center; RotationY is a horizontal squash by its cosine. The box
// width follows the Width property, anchored at the left edge.
func (e *Element) Corners() [4]Point {
	c := e.Composite()
	x0 := e.Layout.X + c.OffsetX
	y0 := e.Layout.Y + c.OffsetY
	cx := x0 + e.Layout.Width/2
	cy := y0 + e.Layout.Height/2

	sx := c.Scale * math.Cos(e.RotationY*math.Pi/180)
	sy := c.Scale
	sin, cos := math.Sincos(c.Rotation * math.Pi / 180)

	corners := [4]Point{
		{x0, y0},
		{x0 + e.Width, y0},
		{x0 + e.Width, y0 + e.Layout.Height},
		{x0, y0 + e.Layout.Height},
	}
	for i, p := range corners {
		lx := (p.X - cx) * sx
		ly := (p.Y - cy) * sy
		corners[i] = Point{
			X: cx + lx*cos - ly*sin,
			Y: cy + lx*sin + ly*cos,
		}
	}
	return corners
}

// quadContains reports whether (x, y) lies inside or on the edge of the
// convex quad q. A quad with no area contains nothing.
func quadContains(q [4]Point, x, y float64) bool {
	area := cross(q[0], q[1], q[2]) + cross(q[0], q[2], q[3])
	if math.Abs(area) < 1e-9 {
		return false
	}
	p := Point{x, y}
	for i := range q {
		side := cross(q[i], q[(i+1)%4], p)
		if side*area < 0 {
			return false
		}
	}
	return true
}

// cross is the z component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Rendered reports whether e and all its ancestors are visible and e's
// composite opacity is above zero.
func (e *Element) Rendered() bool {
	for n := e; n != nil; n = n.Parent {
		if !n.Visible || n.disposed {
			return false
		}
	}
	return e.Composite().Alpha > 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
