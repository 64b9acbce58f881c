package reveal

import "fmt"

// Prop identifies one animatable visual property of a Target.
type Prop uint8

const (
	Opacity   Prop = iota // alpha in [0, 1]
	X                     // horizontal translation in pixels
	Y                     // vertical translation in pixels
	Scale                 // uniform scale factor (1 = natural size)
	Rotation              // rotation in degrees
	RotationY             // rotation around the vertical axis in degrees
	Width                 // rendered width in pixels
	propCount
)

// AllProps lists every Prop in the order the engine writes them.
var AllProps = [propCount]Prop{Opacity, X, Y, Scale, Rotation, RotationY, Width}

var propNames = [propCount]string{"opacity", "x", "y", "scale", "rotation", "rotationY", "width"}

// String returns the property name as used in configuration and diagnostics.
func (p Prop) String() string {
	if p < propCount {
		return propNames[p]
	}
	return fmt.Sprintf("Prop(%d)", int(p))
}

// ParseProp resolves a property name. Names are case-sensitive and match
// Prop.String.
func ParseProp(name string) (Prop, bool) {
	for i, n := range propNames {
		if n == name {
			return Prop(i), true
		}
	}
	return 0, false
}

// Props is a sparse set of property values keyed by Prop.
type Props map[Prop]float64

// Clone returns an independent copy of p. A nil Props clones to nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Hidden is the conventional pre-entrance state: transparent and shifted down.
func Hidden(dy float64) Props {
	return Props{Opacity: 0, Y: dy}
}

// Shown is the fail-open baseline: fully opaque, un-transformed.
func Shown() Props {
	return Props{Opacity: 1, X: 0, Y: 0, Scale: 1, Rotation: 0, RotationY: 0}
}

// Rect is an axis-aligned rectangle in document space. The origin is the
// top-left of the page, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element tint.
var ColorWhite = Color{1, 1, 1, 1}

// Direction is the scroll direction observed between two viewport updates.
type Direction int8

const (
	DirectionNone     Direction = 0  // first observation or no movement
	DirectionForward  Direction = 1  // scrolling down the page
	DirectionBackward Direction = -1 // scrolling back up
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}
