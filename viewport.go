package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the visible window onto the page document. Top is the scroll
// offset in document pixels; Rect feeds ScrollObserver.Update.
type Viewport struct {
	Top           float64
	Width         float64
	Height        float64
	ContentHeight float64

	scrollTween *gween.Tween
}

// NewViewport creates a viewport of the given size at the top of the page.
func NewViewport(width, height, contentHeight float64) *Viewport {
	return &Viewport{Width: width, Height: height, ContentHeight: contentHeight}
}

// Rect returns the document-space rectangle currently on screen.
func (v *Viewport) Rect() Rect {
	return Rect{X: 0, Y: v.Top, Width: v.Width, Height: v.Height}
}

// MaxTop returns the largest valid scroll offset.
func (v *Viewport) MaxTop() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// ScrollBy moves the viewport by dy pixels immediately, cancelling any smooth
// scroll in progress.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.Top = v.clamp(v.Top + dy)
}

// ScrollTo animates the viewport to offset y over duration seconds. A
// non-positive duration jumps.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.scrollTween = nil
		v.Top = y
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutCubic
	}
	v.scrollTween = gween.New(float32(v.Top), float32(y), duration, easeFn)
}

// Scrolling reports whether a smooth scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances a smooth scroll by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.Update(dt)
	v.Top = v.clamp(float64(val))
	if done {
		v.scrollTween = nil
	}
}

func (v *Viewport) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), v.MaxTop())
}
