// Package ebitenhost renders a reveal page with Ebitengine. It owns the frame
// loop: each Update reads wheel, keyboard and cursor input, moves the
// viewport, evaluates scroll bindings and ticks the scheduler; each Draw
// paints the element tree at the current scroll offset.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/reveal"
)

// Config holds window and input settings for a Page.
type Config struct {
	Width, Height int
	ClearColor    reveal.Color
	// WheelStep is the scroll distance in pixels per wheel notch.
	WheelStep float64
	// ArrowSpeed is the scroll speed in pixels per second while an arrow key
	// is held.
	ArrowSpeed    float64
	ShowFPS       bool
	Debug         bool
	ScreenshotDir string
	// ExitWhenScriptDone ends the game once an attached script has run and
	// its screenshots are written.
	ExitWhenScriptDone bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.WheelStep <= 0 {
		c.WheelStep = 60
	}
	if c.ArrowSpeed <= 0 {
		c.ArrowSpeed = 900
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.ClearColor == (reveal.Color{}) {
		c.ClearColor = reveal.Color{R: 0.05, G: 0.04, B: 0.09, A: 1}
	}
	return c
}

// Page implements ebiten.Game and reveal.LoadingHost.
type Page struct {
	Sched    *reveal.Scheduler
	Observer *reveal.ScrollObserver
	View     *reveal.Viewport

	cfg     Config
	content *reveal.Element
	overlay *reveal.Element
	loader  *reveal.Element
	// pointer tracks the content in document space; overlayPointer tracks
	// the overlay layer in screen space and takes precedence.
	pointer        reveal.PointerTracker
	overlayPointer reveal.PointerTracker

	contentVisible bool
	loaderMounted  bool
	loaderDone     bool
	onSkip         func()

	injectQueue     []syntheticEvent
	runner          *ScriptRunner
	screenshotQueue []string
	fps             fpsOverlay
}

// NewPage creates a page with its own scheduler, observer and viewport. Mount
// the content and loader trees before running it.
func NewPage(cfg Config) *Page {
	cfg = cfg.withDefaults()
	p := &Page{
		Sched:    reveal.NewScheduler(),
		Observer: reveal.NewScrollObserver(),
		View:     reveal.NewViewport(float64(cfg.Width), float64(cfg.Height), float64(cfg.Height)),
		cfg:      cfg,
	}
	p.Sched.SetDebugMode(cfg.Debug)
	return p
}

// Mount sets the content tree, the loader tree and the document height.
// Content stays mounted for the page's lifetime; the loader is drawn until
// UnmountLoader, which may already have been called.
func (p *Page) Mount(content, loader *reveal.Element, contentHeight float64) {
	p.content = content
	p.loader = loader
	p.loaderMounted = loader != nil && !p.loaderDone
	p.View.ContentHeight = contentHeight
	p.pointer = reveal.PointerTracker{Root: content}
}

// MountOverlay sets a screen-space layer drawn above the content and below
// the loader, such as a menu drawer. Pointer input hits it before the content.
func (p *Page) MountOverlay(overlay *reveal.Element) {
	p.overlay = overlay
	p.overlayPointer = reveal.PointerTracker{Root: overlay}
}

// OnSkip sets the function run when the visitor presses Escape during
// loading.
func (p *Page) OnSkip(fn func()) {
	p.onSkip = fn
}

// SetContentVisible implements reveal.LoadingHost. Scrolling and hover stay
// locked until the content is visible.
func (p *Page) SetContentVisible(visible bool) {
	p.contentVisible = visible
	if !visible {
		p.pointer.Leave()
		p.overlayPointer.Leave()
	}
}

// UnmountLoader implements reveal.LoadingHost.
func (p *Page) UnmountLoader() {
	p.loaderMounted = false
	p.loaderDone = true
}

// ContentVisible reports the host's content flag.
func (p *Page) ContentVisible() bool {
	return p.contentVisible
}

// LoaderMounted reports whether the loader is still drawn.
func (p *Page) LoaderMounted() bool {
	return p.loaderMounted
}

// SetScriptRunner attaches a scripted input runner. Its steps run from Update
// before real input is read.
func (p *Page) SetScriptRunner(r *ScriptRunner) {
	p.runner = r
}

// Update implements ebiten.Game.
func (p *Page) Update() error {
	p.update(1/float64(ebiten.TPS()), true)
	if p.cfg.ExitWhenScriptDone && p.runner != nil && p.runner.Done() && len(p.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// update advances one frame. Real input is skipped while an injected event is
// pending.
func (p *Page) update(dt float64, realInput bool) {
	if p.runner != nil {
		p.runner.step(p)
	}
	if !p.processInjected() && realInput {
		p.processInput(dt)
	}
	p.View.Update(float32(dt))
	p.Observer.Update(p.View.Rect())
	p.Sched.Tick(dt)
	p.fps.update(dt)
}

func (p *Page) processInput(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.cfg.Debug = !p.cfg.Debug
		p.Sched.SetDebugMode(p.cfg.Debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		p.cfg.ShowFPS = !p.cfg.ShowFPS
	}
	if !p.contentVisible {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && p.onSkip != nil {
			p.onSkip()
		}
		return
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.View.ScrollBy(-wy * p.cfg.WheelStep)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		p.View.ScrollBy(p.cfg.ArrowSpeed * dt)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		p.View.ScrollBy(-p.cfg.ArrowSpeed * dt)
	}
	page := p.View.Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.View.ScrollTo(p.View.Top+page, 0.6, ease.InOutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.View.ScrollTo(p.View.Top-page, 0.6, ease.InOutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.View.ScrollTo(0, 1, ease.InOutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.View.ScrollTo(p.View.MaxTop(), 1, ease.InOutCubic)
	}

	// The cursor is re-tested every frame: scrolling moves elements under a
	// still pointer.
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= p.cfg.Width || my >= p.cfg.Height {
		p.leavePointer()
		return
	}
	p.movePointer(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.click(float64(mx), float64(my))
	}
}

// movePointer feeds a screen-space pointer position to the hover trackers.
// While the pointer is over the overlay the content sees it leave.
func (p *Page) movePointer(sx, sy float64) {
	if !p.contentVisible {
		return
	}
	p.overlayPointer.Move(sx, sy)
	if p.overlayPointer.Hovered() != nil {
		p.pointer.Leave()
		return
	}
	p.pointer.Move(sx, sy+p.View.Top)
}

// click delivers a screen-space click to the overlay, or to the content when
// the overlay has nothing under the pointer.
func (p *Page) click(sx, sy float64) {
	if !p.contentVisible {
		return
	}
	if p.overlayPointer.Click(sx, sy) != nil {
		return
	}
	p.pointer.Click(sx, sy+p.View.Top)
}

func (p *Page) leavePointer() {
	p.pointer.Leave()
	p.overlayPointer.Leave()
}

// Draw implements ebiten.Game.
func (p *Page) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(p.cfg.ClearColor))
	if p.content != nil {
		drawTree(screen, p.content, p.View.Top)
	}
	if p.overlay != nil {
		drawTree(screen, p.overlay, 0)
	}
	if p.loaderMounted && p.loader != nil {
		drawTree(screen, p.loader, 0)
	}
	if p.cfg.Debug {
		p.drawDebug(screen)
	}
	if p.cfg.ShowFPS {
		p.fps.draw(screen)
	}
	p.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is fixed; Ebitengine
// scales it to the window.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Width, p.cfg.Height
}

func toRGBA(c reveal.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
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
