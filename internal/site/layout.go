package site

import "github.com/phanxgames/reveal"

var (
	colorNone     = reveal.Color{}
	colorLoaderBg = reveal.Color{R: 0.06, G: 0.05, B: 0.12, A: 1}
	colorSurface  = reveal.Color{R: 0.11, G: 0.1, B: 0.19, A: 1}
	colorCard     = reveal.Color{R: 0.18, G: 0.16, B: 0.29, A: 1}
	colorAccent   = reveal.Color{R: 0.55, G: 0.36, B: 0.96, A: 1}
	colorAccent2  = reveal.Color{R: 0.93, G: 0.35, B: 0.6, A: 1}
	colorMuted    = reveal.Color{R: 0.3, G: 0.3, B: 0.4, A: 1}
)

// box creates a filled element under parent.
func box(parent *reveal.Element, name string, r reveal.Rect, c reveal.Color) *reveal.Element {
	e := reveal.NewElement(name, r)
	e.Color = c
	if parent != nil {
		parent.AddChild(e)
	}
	return e
}

// group creates an unfilled container element.
func group(parent *reveal.Element, name string, r reveal.Rect) *reveal.Element {
	return box(parent, name, r, colorNone)
}

// label creates an unfilled text element.
func label(parent *reveal.Element, name, text string, r reveal.Rect) *reveal.Element {
	e := box(parent, name, r, colorNone)
	e.Text = text
	return e
}

// inner creates a wrapper filling parent's box. Loops and hover tweens target
// wrappers so they never write the properties an entrance animates on the
// outer element.
func inner(parent *reveal.Element, name string, c reveal.Color) *reveal.Element {
	return box(parent, name, parent.Layout, c)
}

func targets(els ...*reveal.Element) []reveal.Target {
	out := make([]reveal.Target, len(els))
	for i, e := range els {
		out[i] = e
	}
	return out
}

// subtree returns root and all its descendants, depth first.
func subtree(root *reveal.Element) []reveal.Target {
	out := []reveal.Target{root}
	for _, c := range root.Children() {
		out = append(out, subtree(c)...)
	}
	return out
}

// row lays out n boxes of width w left to right from x with gap between them.
func row(n int, x, y, w, h, gap float64) []reveal.Rect {
	out := make([]reveal.Rect, n)
	for i := range out {
		out[i] = reveal.Rect{X: x + float64(i)*(w+gap), Y: y, Width: w, Height: h}
	}
	return out
}

// centeredRow is row centered in a page of the given width.
func centeredRow(n int, pageWidth, y, w, h, gap float64) []reveal.Rect {
	total := float64(n)*w + float64(n-1)*gap
	return row(n, (pageWidth-total)/2, y, w, h, gap)
}

func ptr(v float64) *float64 {
	return &v
}
