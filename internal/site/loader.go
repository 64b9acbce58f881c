package site

import (
	"github.com/pkg/errors"

	"github.com/phanxgames/reveal"
)

// particleDrift is the end offset of each floating loader particle: x, y and
// rotation in degrees.
var particleDrift = [][3]float64{
	{-12, 18, 140},
	{9, -15, -90},
	{15, 6, 170},
	{-6, -20, -160},
	{4, 12, 60},
	{-15, -8, -120},
}

var particleDurations = []float64{2, 2.5, 3, 3.5, 4}

// loader builds the full-screen loading overlay in screen space: logo, title,
// progress bar and drifting particles. Its intro timeline plays at once and
// its loops run until the handoff is Ready.
func (b *builder) loader() error {
	w, h := b.d.Width, b.d.ViewportHeight
	root := box(nil, "loader", reveal.Rect{Width: w, Height: h}, colorLoaderBg)

	logo := group(root, "loader-logo", reveal.Rect{X: w/2 - 60, Y: h/2 - 120, Width: 120, Height: 120})
	mark := inner(logo, "loader-logo-mark", colorAccent)
	title := label(root, "loader-text", "Student Community Hub", reveal.Rect{X: w/2 - 120, Y: h/2 + 20, Width: 240, Height: 32})

	trackRect := reveal.Rect{X: w/2 - 150, Y: h/2 + 80, Width: 300, Height: 4}
	track := box(root, "loader-progress-track", trackRect, colorMuted)
	bar := box(track, "loader-progress", trackRect, colorAccent)

	var particles []*reveal.Element
	for i := range particleDrift {
		x := w/2 - 200 + float64(i)*80
		y := h/2 - 200 + float64(i%3)*150
		particles = append(particles, box(root, "loader-particle", reveal.Rect{X: x, Y: y, Width: 8, Height: 8}, colorAccent2))
	}

	// The root is left out: the handoff fades it, and reverting the scope on
	// Ready must not bring it back before the host unmounts it.
	scope := reveal.NewScope(subtree(root)[1:]...)
	b.site.Loader = root
	b.site.loaderScope = scope

	hidden := reveal.Props{reveal.Opacity: 0, reveal.Scale: 0.8, reveal.Y: 30}
	reveal.Set(logo, hidden)
	reveal.Set(title, hidden)
	reveal.Set(bar, reveal.Props{reveal.Width: 0})

	tl, err := reveal.NewTimeline().
		To(logo, shownScale, 0.8, reveal.Ease("back.out"), "").
		To(title, shownScale, 0.6, reveal.Ease("power2.out"), "-=0.4").
		FromTo(bar, reveal.Props{reveal.Width: 0}, reveal.Props{reveal.Width: trackRect.Width}, 2.5, reveal.Ease("power2.inOut"), "-=0.2").
		Build(b.d.Sched)
	if err != nil {
		return errors.Wrap(err, "loader")
	}
	scope.Track(tl)
	if b.reduced {
		tl.Seek(tl.TotalDuration())
		return nil
	}
	tl.Play()

	b.loop(scope, &reveal.Tween{
		Target:   mark,
		To:       reveal.Props{reveal.Scale: 1.1},
		Duration: 1.5,
		Ease:     reveal.Ease("power2.inOut"),
		Delay:    0.5,
	})
	for i, p := range particles {
		d := particleDrift[i]
		b.loop(scope, &reveal.Tween{
			Target:   p,
			By:       reveal.Props{reveal.X: d[0], reveal.Y: d[1], reveal.Rotation: d[2]},
			Duration: particleDurations[i%len(particleDurations)],
			Ease:     reveal.Ease("power2.inOut"),
			Delay:    float64(i) * 0.2,
		})
	}
	return nil
}
