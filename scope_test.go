package reveal

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestScopeRevertRestoresBaselines(t *testing.T) {
	s := NewScheduler()
	el := NewElement("heading", Rect{Y: 900, Height: 100})
	el.Opacity = 0.3
	el.Y = 7

	scope := NewScope()
	tl := MustBuildTimeline(s, Entry{Anim: TweenTo(el, Props{Opacity: 1, Y: 0}, 1, ease.Linear)})
	scope.Track(tl)
	tl.Play()
	run(s, 0.5)

	scope.Revert()
	if el.Opacity != 0.3 || el.Y != 7 {
		t.Errorf("after revert: opacity %v y %v, want 0.3 and 7", el.Opacity, el.Y)
	}
	if tl.Status() != StatusKilled {
		t.Errorf("timeline status = %v, want killed", tl.Status())
	}
	run(s, 1)
	if el.Opacity != 0.3 {
		t.Errorf("reverted timeline still writing: %v", el.Opacity)
	}
}

func TestScopeRevertIsIdempotent(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	obs := NewScrollObserver()
	hover := NewHoverController(s)

	scope := NewScope(el)
	tl := MustBuildTimeline(s, Entry{Anim: TweenTo(el, Props{X: 50}, 1, nil)})
	scope.Track(tl)
	scope.TrackBinding(obs.Bind(BindingSpec{Trigger: el, Start: 0.8, End: 0.2, Timeline: tl}))
	scope.TrackListener(hover.Bind(HoverSpec{Target: el, Enter: Props{Scale: 1.05}, Leave: Props{Scale: 1}, Duration: 0.3}))
	tl.Play()
	run(s, 0.25)

	scope.Revert()
	first := Capture(el)
	scope.Revert()
	second := Capture(el)

	if !scope.Reverted() {
		t.Error("Reverted = false")
	}
	for p, v := range first {
		if second[p] != v {
			t.Errorf("%s changed on second revert: %v -> %v", p, v, second[p])
		}
	}
	if first[X] != 0 {
		t.Errorf("X = %v, want baseline 0", first[X])
	}
	if obs.Len() != 0 {
		t.Errorf("observer still has %d bindings", obs.Len())
	}
	if hover.Len() != 0 {
		t.Errorf("hover controller still has %d bindings", hover.Len())
	}
}

func TestScopeFirstBaselineWins(t *testing.T) {
	el := NewElement("el", Rect{})
	el.Opacity = 0.5
	scope := NewScope(el)
	el.Opacity = 0.9
	scope.AddTargets(el)
	scope.Revert()
	if el.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want first baseline 0.5", el.Opacity)
	}
}

func TestScopeTrackAfterRevertKills(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	scope := NewScope()
	scope.Revert()

	tw := s.Run(TweenTo(el, Props{X: 10}, 1, nil))
	scope.Track(tw)
	if !tw.Cancelled() {
		t.Error("tween tracked into a reverted scope should be cancelled")
	}

	removed := false
	scope.TrackListener(RemoverFunc(func() { removed = true }))
	if !removed {
		t.Error("listener tracked into a reverted scope should be removed")
	}
}

func TestScopeRemountStartsClean(t *testing.T) {
	s := NewScheduler()
	el := NewElement("card", Rect{})

	mount := func() *Scope {
		scope := NewScope(el)
		Set(el, Hidden(50))
		tl := MustBuildTimeline(s, Entry{Anim: TweenTo(el, Shown(), 1, nil)})
		scope.Track(tl)
		tl.Play()
		return scope
	}

	first := mount()
	run(s, 0.5)
	first.Revert()
	if el.Opacity != 1 || el.Y != 0 {
		t.Fatalf("after unmount: opacity %v y %v", el.Opacity, el.Y)
	}

	second := mount()
	run(s, 1)
	if el.Opacity != 1 || el.Y != 0 {
		t.Errorf("remount did not finish cleanly: opacity %v y %v", el.Opacity, el.Y)
	}
	second.Revert()
}

func TestScopeIgnoresMissingTargets(t *testing.T) {
	gone := NewElement("gone", Rect{})
	gone.Dispose()
	scope := NewScope(nil, gone)
	scope.Track(nil)
	scope.TrackBinding(nil)
	scope.TrackListener(nil)
	scope.Revert()
}
