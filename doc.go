// Package reveal is a frame-driven entrance animation system for a scrolling
// landing page: a one-shot loading screen handed off to the content,
// scroll-triggered section reveals that play on entry and reverse on exit,
// staggered list entrances, hover micro-interactions and an infinite logo
// marquee. It renders through [Ebitengine] via the reveal/ebitenhost package
// and interpolates with [gween].
//
// # Quick start
//
// Each page owns one [Scheduler] and ticks it once per frame:
//
//	sched := reveal.NewScheduler()
//	card := reveal.NewElement("card", reveal.Rect{Y: 900, Width: 320, Height: 200})
//	reveal.Set(card, reveal.Hidden(50))
//
//	tl, err := reveal.NewTimeline().
//		To(card, reveal.Shown(), 0.8, reveal.Ease("power2.out"), "").
//		Build(sched)
//
//	obs := reveal.NewScrollObserver()
//	obs.Bind(reveal.BindingSpec{
//		Trigger:  card,
//		Start:    reveal.DefaultStartThreshold,
//		End:      reveal.DefaultEndThreshold,
//		Timeline: tl,
//	})
//
//	// every frame:
//	obs.Update(viewport.Rect())
//	sched.Tick(1.0 / 60)
//
// # Targets
//
// Anything animatable implements [Target]. [Element] is the reference
// implementation used by the Ebitengine host; the reveal/ecs module exposes
// Donburi entities the same way. A target that reports itself disposed is
// skipped silently: animations never fail because the page tore an element
// down first.
//
// # Timelines
//
// A [Timeline] places animations at resolved start times. Position tokens
// follow the familiar grammar: "" or ">" after the previous entry, "<" with
// it, "-=0.4" overlapping its end, "+=0.2" after a gap, or an absolute time.
// Reversing a timeline walks the same path backward.
//
// # Scroll triggers
//
// A [ScrollObserver] evaluates [Binding] values against the viewport. A
// binding with [PlayReverseOnExit] plays on entry and reverses on exit;
// [PlayOnce] plays once and stays.
//
// # Scopes
//
// Components track everything they create in a [Scope]. [Scope.Revert]
// cancels it all and restores the tracked targets, so remounting starts
// clean.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reveal
