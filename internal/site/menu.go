package site

import "github.com/phanxgames/reveal"

const (
	drawerWidth = 320
	barGap      = 6
)

var colorScrim = reveal.Color{R: 0, G: 0, B: 0, A: 0.5}

// MobileMenu is the slide-in navigation drawer opened from the nav toggle.
// Its scrim and drawer live on the screen-space Overlay layer; the toggle
// button and its three bars sit in the nav.
//
// Every Open or Close interrupts the previous transition and animates from
// the current values, so rapid toggling never jumps.
type MobileMenu struct {
	Button  *reveal.Element
	Scrim   *reveal.Element
	Drawer  *reveal.Element
	Items   []*reveal.Element
	Bars    [3]*reveal.Element
	sched   *reveal.Scheduler
	reduced bool

	open    bool
	tl      *reveal.Timeline
	morph   []*reveal.Tween
	handles []reveal.CallbackHandle
	removed bool
}

// menu builds the toggle inside nav and the drawer on layer. Call it after the
// section scope is open and before any hidden state is written. The scope
// records baselines for every menu element, with the drawer closed, and owns
// the menu's animations and click listeners through Remove.
func (b *builder) menu(sec *Section, nav, layer *reveal.Element) {
	w, h := b.d.Width, b.d.ViewportHeight
	y := nav.Layout.Y

	toggle := group(nav, "menu-toggle", reveal.Rect{X: w - 72, Y: y + 16, Width: 40, Height: 32})
	toggle.Interactable = true
	var bars [3]*reveal.Element
	for i := range bars {
		bars[i] = box(toggle, "menu-bar", reveal.Rect{X: w - 64, Y: y + 23 + float64(i)*barGap, Width: 24, Height: 2}, reveal.ColorWhite)
	}

	scrim := box(layer, "menu-scrim", reveal.Rect{Width: w, Height: h}, colorScrim)
	scrim.Interactable = true
	drawer := box(layer, "menu-drawer", reveal.Rect{X: w - drawerWidth, Width: drawerWidth, Height: h}, colorSurface)
	drawer.Interactable = true
	label(drawer, "menu-drawer-brand", "Student Hub", reveal.Rect{X: w - drawerWidth + 24, Y: 24, Width: 200, Height: 32})
	var items []*reveal.Element
	for i, name := range menuItems {
		item := label(drawer, "menu-drawer-item", name, reveal.Rect{X: w - drawerWidth + 24, Y: 160 + float64(i)*64, Width: drawerWidth - 48, Height: 48})
		item.Interactable = true
		items = append(items, item)
	}

	reveal.Set(scrim, reveal.Props{reveal.Opacity: 0})
	reveal.Set(drawer, reveal.Props{reveal.X: drawerWidth})
	sec.Scope.AddTargets(subtree(toggle)...)
	sec.Scope.AddTargets(subtree(layer)...)

	m := &MobileMenu{
		Button:  toggle,
		Scrim:   scrim,
		Drawer:  drawer,
		Items:   items,
		Bars:    bars,
		sched:   b.d.Sched,
		reduced: b.reduced,
	}
	m.handles = append(m.handles,
		toggle.On(reveal.EventPointerClick, func(reveal.PointerContext) { m.Toggle() }),
		scrim.On(reveal.EventPointerClick, func(reveal.PointerContext) { m.Close() }),
	)
	for _, item := range items {
		m.handles = append(m.handles, item.On(reveal.EventPointerClick, func(reveal.PointerContext) { m.Close() }))
	}
	sec.Scope.TrackListener(m)
	b.site.Menu = m
}

// IsOpen reports the last requested state.
func (m *MobileMenu) IsOpen() bool {
	return m.open
}

// Toggle flips the menu.
func (m *MobileMenu) Toggle() {
	m.set(!m.open)
}

// Open slides the drawer in over a fading scrim and morphs the bars into an X.
func (m *MobileMenu) Open() {
	m.set(true)
}

// Close slides the drawer out, fades the scrim and restores the bars.
func (m *MobileMenu) Close() {
	m.set(false)
}

// Timeline returns the running open or close timeline, or nil.
func (m *MobileMenu) Timeline() *reveal.Timeline {
	return m.tl
}

func (m *MobileMenu) set(open bool) {
	if m.removed || open == m.open {
		return
	}
	m.open = open
	m.stop()

	tb := reveal.NewTimeline()
	var morph []*reveal.Tween
	if open {
		tb.To(m.Scrim, reveal.Props{reveal.Opacity: 1}, 0.3, reveal.Ease("power2.out"), "").
			To(m.Drawer, reveal.Props{reveal.X: 0}, 0.5, reveal.Ease("power3.out"), "-=0.1")
		morph = []*reveal.Tween{
			reveal.TweenTo(m.Bars[0], reveal.Props{reveal.Rotation: 45, reveal.Y: barGap}, 0.3, reveal.Ease("power1.out")),
			reveal.TweenTo(m.Bars[1], reveal.Props{reveal.Opacity: 0}, 0.2, reveal.Ease("power1.out")),
			reveal.TweenTo(m.Bars[2], reveal.Props{reveal.Rotation: -45, reveal.Y: -barGap}, 0.3, reveal.Ease("power1.out")),
		}
	} else {
		tb.To(m.Drawer, reveal.Props{reveal.X: drawerWidth}, 0.4, reveal.Ease("power3.in"), "").
			To(m.Scrim, reveal.Props{reveal.Opacity: 0}, 0.3, reveal.Ease("power2.in"), "-=0.2")
		reappear := reveal.TweenTo(m.Bars[1], reveal.Props{reveal.Opacity: 1}, 0.2, reveal.Ease("power1.out"))
		reappear.Delay = 0.1
		morph = []*reveal.Tween{
			reveal.TweenTo(m.Bars[0], reveal.Props{reveal.Rotation: 0, reveal.Y: 0}, 0.3, reveal.Ease("power1.out")),
			reappear,
			reveal.TweenTo(m.Bars[2], reveal.Props{reveal.Rotation: 0, reveal.Y: 0}, 0.3, reveal.Ease("power1.out")),
		}
	}

	tl, err := tb.Build(m.sched)
	if err != nil {
		// Cannot happen with the fixed tokens above; land on the end state.
		m.jump()
		return
	}
	m.tl = tl
	if m.reduced {
		tl.Seek(tl.TotalDuration())
		for _, tw := range morph {
			reveal.Set(tw.Target, tw.To)
		}
		return
	}
	tl.Play()
	for _, tw := range morph {
		m.morph = append(m.morph, m.sched.Run(tw))
	}
}

// jump writes the end state of the current request directly.
func (m *MobileMenu) jump() {
	if m.open {
		reveal.Set(m.Scrim, reveal.Props{reveal.Opacity: 1})
		reveal.Set(m.Drawer, reveal.Props{reveal.X: 0})
		return
	}
	reveal.Set(m.Scrim, reveal.Props{reveal.Opacity: 0})
	reveal.Set(m.Drawer, reveal.Props{reveal.X: drawerWidth})
}

// stop kills the running transition where it stands.
func (m *MobileMenu) stop() {
	if m.tl != nil {
		m.tl.Kill()
	}
	for _, tw := range m.morph {
		tw.Cancel()
	}
	m.morph = m.morph[:0]
}

// Remove stops the menu and unregisters its click listeners, so a Scope can
// own it.
func (m *MobileMenu) Remove() {
	if m.removed {
		return
	}
	m.removed = true
	m.stop()
	for _, h := range m.handles {
		h.Remove()
	}
	m.handles = nil
}
