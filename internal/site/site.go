// Package site builds the student community landing page: the loader, the
// hero and every scroll-revealed section, each with its own scope, scroll
// binding and entrance timeline.
package site

import (
	"github.com/pkg/errors"

	"github.com/phanxgames/reveal"
)

// Section names, also the keys of Config.Sections.
const (
	Hero     = "hero"
	Logos    = "logos"
	WhyJoin  = "why-join"
	WhoWeAre = "who-we-are"
	Team     = "team"
	Events   = "events"
	Footer   = "footer"
)

// sectionDefaults are the per-section settings the page was designed with.
// Values from the config file take precedence.
var sectionDefaults = map[string]reveal.SectionConfig{
	Logos: {
		StartThreshold: ptr(0.85),
		EndThreshold:   ptr(0.15),
		StaggerDelayMs: ptr(100),
	},
	Events: {
		StaggerDelayMs: ptr(300),
	},
}

// Deps are the collaborators a Site is built on.
type Deps struct {
	Sched    *reveal.Scheduler
	Observer *reveal.ScrollObserver
	Host     reveal.LoadingHost
	Config   reveal.Config
	// Width and ViewportHeight size the page and the loader overlay.
	Width, ViewportHeight float64
}

// Section is one mounted page section.
type Section struct {
	Name     string
	Root     *reveal.Element
	Settings reveal.SectionSettings
	Scope    *reveal.Scope
	Timeline *reveal.Timeline
	// Binding is nil for the hero, which plays on the loader handoff instead
	// of on scroll, and for every section under reduced motion.
	Binding *reveal.Binding
	// Marquee is set on the logos section only.
	Marquee *reveal.Marquee
}

// Site is the mounted page.
type Site struct {
	Content *reveal.Element
	Loader  *reveal.Element
	// Overlay is the screen-space layer above the content holding the mobile
	// menu drawer.
	Overlay *reveal.Element
	Menu    *MobileMenu
	Handoff *reveal.LoadingHandoff
	Hover   *reveal.HoverController

	sections    []*Section
	loaderScope *reveal.Scope
	pageScope   *reveal.Scope
	height      float64
}

// New builds and mounts the page. The loader starts immediately; the hero
// plays once the handoff begins.
func New(d Deps) (*Site, error) {
	if d.Sched == nil || d.Observer == nil {
		return nil, errors.New("site: scheduler and observer are required")
	}
	if d.Width <= 0 {
		d.Width = 1280
	}
	if d.ViewportHeight <= 0 {
		d.ViewportHeight = 720
	}
	d.Config = withSectionDefaults(d.Config)

	content := group(nil, "content", reveal.Rect{Width: d.Width})
	s := &Site{
		Content:   content,
		Overlay:   group(nil, "overlay", reveal.Rect{Width: d.Width, Height: d.ViewportHeight}),
		Hover:     reveal.NewHoverController(d.Sched),
		pageScope: reveal.NewScope(),
	}
	b := &builder{d: d, site: s, content: content, reduced: d.Config.ReducedMotion}

	if err := b.loader(); err != nil {
		return nil, err
	}
	builders := []func() (*Section, error){
		b.hero, b.logos, b.whyJoin, b.whoWeAre, b.team, b.events, b.footer,
	}
	for _, build := range builders {
		sec, err := build()
		if err != nil {
			s.Unmount()
			return nil, err
		}
		s.sections = append(s.sections, sec)
	}
	content.Layout.Height = b.y
	s.height = b.y

	// A configured zero means no wait, not the default wait.
	wait := d.Config.LoadingDuration()
	if wait == 0 {
		wait = reveal.Instant
	}
	s.Handoff = reveal.NewLoadingHandoff(d.Sched, reveal.LoadingConfig{
		Duration: wait,
		Loader:   s.Loader,
		Content:  content,
		Host:     d.Host,
	})
	s.pageScope.TrackListener(s.Handoff)
	s.loaderScope.TrackListener(reveal.RemoverFunc(s.Handoff.OnPhase(func(p reveal.LoadingPhase) {
		if p == reveal.PhaseReady {
			s.loaderScope.Revert()
		}
	})))

	hero := s.Section(Hero)
	if b.reduced {
		s.Handoff.Skip()
		return s, nil
	}
	hero.Scope.TrackListener(reveal.RemoverFunc(s.Handoff.OnPhase(func(p reveal.LoadingPhase) {
		if p >= reveal.PhaseHandingOff {
			hero.Timeline.Play()
		}
	})))
	return s, nil
}

// withSectionDefaults fills unset per-section fields from sectionDefaults.
// cfg.Sections is copied, never modified in place.
func withSectionDefaults(cfg reveal.Config) reveal.Config {
	merged := make(map[string]reveal.SectionConfig, len(cfg.Sections)+len(sectionDefaults))
	for name, sc := range cfg.Sections {
		merged[name] = sc
	}
	for name, def := range sectionDefaults {
		sc := merged[name]
		if sc.StartThreshold == nil {
			sc.StartThreshold = def.StartThreshold
		}
		if sc.EndThreshold == nil {
			sc.EndThreshold = def.EndThreshold
		}
		if sc.StaggerDelayMs == nil {
			sc.StaggerDelayMs = def.StaggerDelayMs
		}
		merged[name] = sc
	}
	cfg.Sections = merged
	return cfg
}

// Height returns the document height of the content.
func (s *Site) Height() float64 {
	return s.height
}

// Sections returns the mounted sections in page order.
func (s *Site) Sections() []*Section {
	return s.sections
}

// Section returns the named section, or nil.
func (s *Site) Section(name string) *Section {
	for _, sec := range s.sections {
		if sec.Name == name {
			return sec
		}
	}
	return nil
}

// Unmount reverts every section scope, last section first, then stops the
// loader. Content is left visible. Safe to call more than once.
func (s *Site) Unmount() {
	for i := len(s.sections) - 1; i >= 0; i-- {
		s.sections[i].Scope.Revert()
	}
	s.pageScope.Revert()
	if s.loaderScope != nil {
		s.loaderScope.Revert()
	}
}

// builder carries the layout cursor while sections are created top to bottom.
type builder struct {
	d       Deps
	site    *Site
	content *reveal.Element
	y       float64
	reduced bool
}

// section creates a section root at the layout cursor and advances it. Call
// open once the subtree is built.
func (b *builder) section(name string, height float64, c reveal.Color) *Section {
	root := box(b.content, name, reveal.Rect{X: 0, Y: b.y, Width: b.d.Width, Height: height}, c)
	b.y += height
	return &Section{
		Name:     name,
		Root:     root,
		Settings: b.d.Config.Section(name),
	}
}

// open records baselines for the finished subtree. It runs before any hidden
// state is written, so a revert restores the visible layout.
func (b *builder) open(sec *Section) {
	sec.Scope = reveal.NewScope(subtree(sec.Root)...)
}

// entrance builds the entrance timeline and binds it to the section's scroll
// position. Under reduced motion the timeline is jumped to its end instead.
func (b *builder) entrance(sec *Section, tb *reveal.TimelineBuilder) error {
	tl, err := tb.Build(b.d.Sched)
	if err != nil {
		return errors.Wrapf(err, "section %s", sec.Name)
	}
	sec.Timeline = tl
	sec.Scope.Track(tl)
	if b.reduced {
		tl.Seek(tl.TotalDuration())
		return nil
	}
	if sec.Name == Hero {
		return nil
	}
	sec.Binding = b.d.Observer.Bind(reveal.BindingSpec{
		Name:     sec.Name,
		Trigger:  sec.Root,
		Start:    sec.Settings.Start,
		End:      sec.Settings.End,
		Timeline: tl,
		Mode:     sec.Settings.Mode,
	})
	sec.Scope.TrackBinding(sec.Binding)
	return nil
}

// loop runs an endless yoyo tween owned by scope. Loops are skipped under
// reduced motion.
func (b *builder) loop(scope *reveal.Scope, tw *reveal.Tween) {
	if b.reduced {
		return
	}
	tw.Yoyo = true
	tw.Repeat = reveal.RepeatForever
	scope.Track(b.d.Sched.Run(tw))
}

// hover adds a hover binding owned by scope.
func (b *builder) hover(scope *reveal.Scope, spec reveal.HoverSpec) {
	scope.TrackListener(b.site.Hover.Bind(spec))
}
