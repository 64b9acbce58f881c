package site

import (
	"fmt"

	"github.com/phanxgames/reveal"
)

const (
	logoCount    = 6
	logoSlot     = 176 // logo width plus gap
	marqueeCycle = 30  // seconds per loop
)

// logos builds the partner strip: two copies of the logo set on one track so
// the marquee can wrap after exactly one copy.
func (b *builder) logos() (*Section, error) {
	sec := b.section(Logos, 260, colorSurface)
	y := sec.Root.Layout.Y
	label(sec.Root, "logos-title", "Trusted by student communities", reveal.Rect{X: 80, Y: y + 32, Width: 400, Height: 24})

	loop := float64(logoCount * logoSlot)
	track := group(sec.Root, "logos-track", reveal.Rect{X: 0, Y: y + 100, Width: 2 * loop, Height: 120})
	var logos, marks []*reveal.Element
	for i := 0; i < 2*logoCount; i++ {
		r := reveal.Rect{X: float64(i) * logoSlot, Y: y + 110, Width: logoSlot - 16, Height: 100}
		logo := group(track, "logo", r)
		mark := inner(logo, "logo-mark", colorCard)
		mark.Text = fmt.Sprintf("Partner %d", i%logoCount+1)
		logos = append(logos, logo)
		marks = append(marks, mark)
	}

	b.open(sec)

	for _, l := range logos {
		reveal.Set(l, reveal.Props{reveal.Opacity: 0, reveal.Y: 30, reveal.Scale: 0.8})
	}
	tb := reveal.NewTimeline().
		Stagger(targets(logos...), reveal.StaggerSpec{
			To:       reveal.Props{reveal.Opacity: 1, reveal.Y: 0, reveal.Scale: 1},
			Duration: 0.6,
			Ease:     reveal.Ease("back.out"),
			Each:     sec.Settings.StaggerEach,
		}, "")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}

	for i, m := range marks {
		b.loop(sec.Scope, &reveal.Tween{
			Target:   m,
			By:       reveal.Props{reveal.Y: 5},
			Duration: 2 + float64(i)*0.1,
			Ease:     reveal.Ease("power2.inOut"),
			Delay:    float64(i) * 0.2,
		})
	}
	if !b.reduced {
		sec.Marquee = reveal.NewMarquee(b.d.Sched, track, loop, marqueeCycle)
		if tw := sec.Marquee.Tween(); tw != nil {
			sec.Scope.Track(tw)
		}
	}
	return sec, nil
}
