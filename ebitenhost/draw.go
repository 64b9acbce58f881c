package ebitenhost

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/reveal"
)

// whitePixel is the source texture for solid quads. The 1x1 sub-image sits in
// the middle of a 3x3 image so linear filtering never samples an edge.
var (
	whiteImage = ebiten.NewImage(3, 3)
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

type point = reveal.Point

// quad returns the screen-space corners of e with the page scrolled to top.
func quad(e *reveal.Element, top float64) [4]point {
	corners := e.Corners()
	for i := range corners {
		corners[i].Y -= top
	}
	return corners
}

// drawOrder returns e's children sorted by ZIndex, keeping insertion order
// among equals.
func drawOrder(e *reveal.Element) []*reveal.Element {
	kids := e.Children()
	ordered := make([]*reveal.Element, len(kids))
	copy(ordered, kids)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})
	return ordered
}

// drawTree paints e and its descendants. Invisible subtrees and subtrees whose
// composite opacity is zero are skipped.
func drawTree(screen *ebiten.Image, e *reveal.Element, top float64) {
	if e.Disposed() || !e.Visible {
		return
	}
	c := e.Composite()
	if c.Alpha <= 0 {
		return
	}
	if e.Color.A > 0 && e.Width > 0 && e.Layout.Height > 0 {
		drawQuad(screen, quad(e, top), e.Color, c.Alpha)
	}
	if e.Text != "" && c.Alpha >= 0.5 {
		q := quad(e, top)
		ebitenutil.DebugPrintAt(screen, e.Text, int(q[0].X)+8, int(q[0].Y)+8)
	}
	for _, child := range drawOrder(e) {
		drawTree(screen, child, top)
	}
}

func drawQuad(screen *ebiten.Image, q [4]point, tint reveal.Color, alpha float64) {
	var verts [4]ebiten.Vertex
	for i, p := range q {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(tint.R),
			ColorG: float32(tint.G),
			ColorB: float32(tint.B),
			ColorA: float32(tint.A * alpha),
		}
	}
	screen.DrawTriangles(verts[:], quadIndices, whitePixel, &ebiten.DrawTrianglesOptions{})
}

var (
	debugActive   = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	debugInactive = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	debugStart    = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	debugEnd      = color.RGBA{R: 255, G: 120, B: 80, A: 255}
)

// drawDebug outlines every trigger box and draws its start and end lines.
func (p *Page) drawDebug(screen *ebiten.Image) {
	w := float32(p.cfg.Width)
	h := p.View.Height
	for _, b := range p.Observer.Bindings() {
		box := b.TriggerBounds()
		clr := debugInactive
		if b.Inside() {
			clr = debugActive
		}
		y := float32(box.Y - p.View.Top)
		vector.StrokeRect(screen, float32(box.X), y, float32(box.Width), float32(box.Height), 1, clr, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", b.Name(), b.State()), int(box.X)+4, int(y)+4)

		start, end := b.Thresholds()
		vector.StrokeLine(screen, 0, float32(start*h), w, float32(start*h), 1, debugStart, false)
		vector.StrokeLine(screen, 0, float32(end*h), w, float32(end*h), 1, debugEnd, false)
	}
}
