package site

import "github.com/phanxgames/reveal"

var (
	shown      = reveal.Props{reveal.Opacity: 1, reveal.Y: 0}
	shownScale = reveal.Props{reveal.Opacity: 1, reveal.Y: 0, reveal.Scale: 1}
)

// heading adds a section's title and subtitle at the top of root.
func heading(root *reveal.Element, name, title, subtitle string) (*reveal.Element, *reveal.Element) {
	y := root.Layout.Y
	w := root.Layout.Width
	t := label(root, name+"-title", title, reveal.Rect{X: 80, Y: y + 80, Width: w - 160, Height: 48})
	s := label(root, name+"-subtitle", subtitle, reveal.Rect{X: 80, Y: y + 140, Width: w - 160, Height: 40})
	return t, s
}

// cards adds n cards in a centered row, each with an inner body that carries
// the fill and the hover motion.
func cards(root *reveal.Element, name string, n int, y, w, h float64) (outer, bodies []*reveal.Element) {
	for _, r := range centeredRow(n, root.Layout.Width, y, w, h, 24) {
		card := group(root, name, r)
		outer = append(outer, card)
		bodies = append(bodies, inner(card, name+"-body", colorCard))
	}
	return outer, bodies
}

func (b *builder) hoverCards(sec *Section, outer, bodies []*reveal.Element, enter reveal.Props) {
	leave := reveal.Props{}
	for p := range enter {
		switch p {
		case reveal.Scale:
			leave[p] = 1
		default:
			leave[p] = 0
		}
	}
	for i := range outer {
		b.hover(sec.Scope, reveal.HoverSpec{
			Target:   bodies[i],
			Source:   outer[i],
			Enter:    enter,
			Leave:    leave,
			Duration: 0.3,
			Ease:     reveal.Ease("power2.out"),
		})
	}
}

func (b *builder) whyJoin() (*Section, error) {
	sec := b.section(WhyJoin, 900, colorNone)
	y := sec.Root.Layout.Y
	title, subtitle := heading(sec.Root, WhyJoin, "Why join us", "Everything you need to grow, in one community")
	outer, bodies := cards(sec.Root, "benefit", 3, y+240, 360, 400)
	var icons []*reveal.Element
	for _, body := range bodies {
		r := body.Layout
		icons = append(icons, box(body, "benefit-icon", reveal.Rect{X: r.X + 24, Y: r.Y + 24, Width: 64, Height: 64}, colorAccent))
	}
	badge := group(sec.Root, "cta-badge", reveal.Rect{X: b.d.Width/2 - 160, Y: y + 720, Width: 320, Height: 64})
	badgeBody := inner(badge, "cta-badge-body", colorAccent2)
	badgeBody.Text = "Become a member"

	b.open(sec)

	reveal.Set(title, reveal.Hidden(50))
	reveal.Set(subtitle, reveal.Hidden(50))
	for _, c := range outer {
		reveal.Set(c, reveal.Props{reveal.Opacity: 0, reveal.Y: 80, reveal.Scale: 0.8})
	}
	reveal.Set(badge, reveal.Props{reveal.Opacity: 0, reveal.Y: 50, reveal.Scale: 0.9})

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(title, shown, 0.8, ease, "").
		To(subtitle, shown, 0.8, ease, "-=0.4").
		Stagger(targets(outer...), reveal.StaggerSpec{
			To:       shownScale,
			Duration: 0.8,
			Ease:     reveal.Ease("back.out"),
			Each:     sec.Settings.StaggerEach,
		}, "-=0.4").
		To(badge, shownScale, 0.8, reveal.Ease("back.out"), "-=0.2")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}

	b.hoverCards(sec, outer, bodies, reveal.Props{reveal.Y: -10, reveal.Scale: 1.05})
	for i, icon := range icons {
		b.loop(sec.Scope, &reveal.Tween{
			Target:   icon,
			By:       reveal.Props{reveal.Y: 8},
			Duration: 2 + float64(i)*0.3,
			Ease:     reveal.Ease("power2.inOut"),
			Delay:    float64(i) * 0.2,
		})
	}
	b.loop(sec.Scope, &reveal.Tween{
		Target:   badgeBody,
		By:       reveal.Props{reveal.Y: 6},
		Duration: 3,
		Ease:     reveal.Ease("power2.inOut"),
		Delay:    1,
	})
	return sec, nil
}

func (b *builder) whoWeAre() (*Section, error) {
	sec := b.section(WhoWeAre, 820, colorSurface)
	y := sec.Root.Layout.Y
	subtitle := label(sec.Root, "who-subtitle", "Who we are", reveal.Rect{X: 80, Y: y + 80, Width: 400, Height: 24})
	title := label(sec.Root, "who-title", "Students building for students", reveal.Rect{X: 80, Y: y + 120, Width: 720, Height: 48})
	desc := label(sec.Root, "who-desc", "Workshops, hackathons and mentoring run by members, for members.", reveal.Rect{X: 80, Y: y + 190, Width: 720, Height: 60})
	var photos []*reveal.Element
	for _, r := range centeredRow(4, b.d.Width, y+300, 260, 340, 24) {
		photos = append(photos, box(sec.Root, "who-photo", r, colorCard))
	}

	b.open(sec)

	for _, e := range []*reveal.Element{subtitle, title, desc} {
		reveal.Set(e, reveal.Hidden(50))
	}
	for _, p := range photos {
		reveal.Set(p, reveal.Props{reveal.Opacity: 0, reveal.Y: 80, reveal.Scale: 0.9})
	}

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(subtitle, shown, 0.8, ease, "").
		To(title, shown, 0.8, ease, "-=0.4").
		To(desc, shown, 0.8, ease, "-=0.4").
		Stagger(targets(photos...), reveal.StaggerSpec{
			To:       shownScale,
			Duration: 1,
			Ease:     ease,
			Each:     sec.Settings.StaggerEach,
		}, "-=0.2")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}
	return sec, nil
}

func (b *builder) team() (*Section, error) {
	sec := b.section(Team, 820, colorNone)
	y := sec.Root.Layout.Y
	title, subtitle := heading(sec.Root, Team, "Meet the team", "The people keeping the lights on")
	outer, bodies := cards(sec.Root, "member", 4, y+240, 260, 360)

	b.open(sec)

	reveal.Set(subtitle, reveal.Hidden(50))
	reveal.Set(title, reveal.Hidden(50))
	for _, c := range outer {
		reveal.Set(c, reveal.Props{reveal.Opacity: 0, reveal.Scale: 0.8, reveal.RotationY: 45})
	}

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(subtitle, shown, 0.8, ease, "").
		To(title, shown, 0.8, ease, "-=0.4").
		Stagger(targets(outer...), reveal.StaggerSpec{
			To:       reveal.Props{reveal.Opacity: 1, reveal.Scale: 1, reveal.RotationY: 0},
			Duration: 1,
			Ease:     reveal.Ease("back.out"),
			Each:     sec.Settings.StaggerEach,
		}, "-=0.4")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}
	b.hoverCards(sec, outer, bodies, reveal.Props{reveal.Scale: 1.05, reveal.Y: -10})
	return sec, nil
}

func (b *builder) events() (*Section, error) {
	sec := b.section(Events, 820, colorSurface)
	y := sec.Root.Layout.Y
	title, subtitle := heading(sec.Root, Events, "Upcoming events", "Show up, learn something, meet someone")
	outer, bodies := cards(sec.Root, "event", 3, y+240, 360, 380)

	b.open(sec)

	reveal.Set(subtitle, reveal.Hidden(50))
	reveal.Set(title, reveal.Hidden(50))
	for _, c := range outer {
		reveal.Set(c, reveal.Props{reveal.Opacity: 0, reveal.Y: 80, reveal.Scale: 0.9})
	}

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(subtitle, shown, 0.8, ease, "").
		To(title, shown, 0.8, ease, "-=0.4").
		Stagger(targets(outer...), reveal.StaggerSpec{
			To:       shownScale,
			Duration: 1,
			Ease:     reveal.Ease("back.out"),
			Each:     sec.Settings.StaggerEach,
		}, "-=0.4")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}
	b.hoverCards(sec, outer, bodies, reveal.Props{reveal.Y: -10, reveal.Scale: 1.02})
	return sec, nil
}

func (b *builder) footer() (*Section, error) {
	sec := b.section(Footer, 420, colorLoaderBg)
	y := sec.Root.Layout.Y
	newsletter := box(sec.Root, "newsletter", reveal.Rect{X: 80, Y: y + 60, Width: b.d.Width - 160, Height: 120}, colorCard)
	newsletter.Text = "Get the newsletter"
	content := label(sec.Root, "footer-content", "Student Community Hub", reveal.Rect{X: 80, Y: y + 240, Width: b.d.Width - 160, Height: 120})

	b.open(sec)

	reveal.Set(newsletter, reveal.Hidden(50))
	reveal.Set(content, reveal.Hidden(50))

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(newsletter, shown, 0.8, ease, "").
		To(content, shown, 0.8, ease, "-=0.4")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}
	return sec, nil
}
