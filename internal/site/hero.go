package site

import "github.com/phanxgames/reveal"

var menuItems = []string{"Home", "About", "Team", "Events", "Join"}

// heroCard places one of the three fanned cards inside the cards container:
// left and top offsets and resting rotation. spread is where it moves while
// the container is hovered.
type heroCard struct {
	left, top, rotation float64
	spreadX, spreadRot  float64
	color               reveal.Color
}

var heroCards = []heroCard{
	{left: 0, top: 40, rotation: -8, spreadX: -40, spreadRot: -14, color: colorAccent2},
	{left: 80, top: 0, rotation: 0, spreadX: 0, spreadRot: 0, color: colorAccent},
	{left: 160, top: 40, rotation: 8, spreadX: 40, spreadRot: 14, color: colorCard},
}

// hero builds the first screen. It has no scroll binding: its timeline plays
// when the loader starts handing off.
func (b *builder) hero() (*Section, error) {
	w := b.d.Width
	sec := b.section(Hero, b.d.ViewportHeight, colorNone)
	y := sec.Root.Layout.Y

	nav := box(sec.Root, "nav", reveal.Rect{X: 0, Y: y, Width: w, Height: 64}, colorSurface)
	label(nav, "brand", "Student Hub", reveal.Rect{X: 32, Y: y + 20, Width: 160, Height: 24})
	var menu []*reveal.Element
	for i, r := range row(len(menuItems), w-640, y+20, 100, 24, 12) {
		menu = append(menu, label(nav, "menu-item", menuItems[i], r))
	}

	text := label(sec.Root, "hero-text", "Build, learn and grow together", reveal.Rect{X: 80, Y: y + 200, Width: 560, Height: 60})
	desc := label(sec.Root, "hero-desc", "A student community for builders, designers and curious minds.", reveal.Rect{X: 80, Y: y + 280, Width: 560, Height: 80})
	buttons := group(sec.Root, "hero-buttons", reveal.Rect{X: 80, Y: y + 380, Width: 360, Height: 52})
	primary := box(buttons, "hero-join", reveal.Rect{X: 80, Y: y + 380, Width: 170, Height: 52}, colorAccent)
	primary.Text = "Join us"
	secondary := box(buttons, "hero-explore", reveal.Rect{X: 270, Y: y + 380, Width: 170, Height: 52}, colorMuted)
	secondary.Text = "Explore"

	cx, cy := w-560, y+160
	container := group(sec.Root, "hero-cards", reveal.Rect{X: cx, Y: cy, Width: 460, Height: 380})
	var cards []*reveal.Element
	for _, c := range heroCards {
		card := box(container, "hero-card", reveal.Rect{X: cx + c.left, Y: cy + c.top, Width: 240, Height: 300}, c.color)
		card.Rotation = c.rotation
		cards = append(cards, card)
	}

	b.open(sec)
	b.menu(sec, nav, b.site.Overlay)

	for _, e := range []*reveal.Element{nav, text, desc, buttons} {
		reveal.Set(e, reveal.Hidden(50))
	}
	for _, e := range menu {
		reveal.Set(e, reveal.Props{reveal.Opacity: 0, reveal.Y: -20})
	}
	reveal.Set(container, reveal.Props{reveal.Opacity: 0, reveal.Scale: 0.8, reveal.Rotation: -10})

	ease := sec.Settings.Ease()
	tb := reveal.NewTimeline().
		To(nav, shown, 0.8, ease, "").
		To(text, shown, 0.8, ease, "-=0.4").
		To(desc, shown, 0.8, ease, "-=0.6").
		To(buttons, shown, 0.8, ease, "-=0.6").
		To(container, reveal.Props{reveal.Opacity: 1, reveal.Scale: 1, reveal.Rotation: 0}, 1, reveal.Ease("back.out(1.7)"), "-=0.4").
		Stagger(targets(menu...), reveal.StaggerSpec{
			From:     reveal.Props{reveal.Opacity: 0, reveal.Y: -20},
			To:       shown,
			Duration: 0.5,
			Ease:     ease,
			Each:     0.1,
		}, "0.3")
	if err := b.entrance(sec, tb); err != nil {
		return nil, err
	}

	for i, card := range cards {
		c := heroCards[i]
		if c.spreadX == 0 && c.spreadRot == c.rotation {
			continue
		}
		b.hover(sec.Scope, reveal.HoverSpec{
			Target:   card,
			Source:   container,
			Enter:    reveal.Props{reveal.X: c.spreadX, reveal.Rotation: c.spreadRot},
			Leave:    reveal.Props{reveal.X: 0, reveal.Rotation: c.rotation},
			Duration: 0.4,
			Ease:     reveal.Ease("power2.out"),
		})
	}
	return sec, nil
}
