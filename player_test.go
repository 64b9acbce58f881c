package reveal

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newOpacityTimeline(t *testing.T, s *Scheduler, el *Element, d float64) *Timeline {
	t.Helper()
	tl, err := NewTimeline().
		FromTo(el, Props{Opacity: 0}, Props{Opacity: 1}, d, ease.Linear, "").
		Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tl
}

func TestPlayerStatusTransitions(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	tl := newOpacityTimeline(t, s, el, 0.5)

	var seen []Status
	tl.Player().AddStatusListener(func(st Status) { seen = append(seen, st) })

	tl.Play()
	run(s, 0.5)
	tl.Reverse()
	run(s, 0.5)

	want := []Status{StatusForward, StatusCompleted, StatusReverse, StatusDismissed}
	if len(seen) != len(want) {
		t.Fatalf("statuses = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("status[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestPlayerListenersInRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	tl := newOpacityTimeline(t, s, NewElement("el", Rect{}), 0.25)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		tl.Player().AddStatusListener(func(Status) { order = append(order, i) })
	}
	tl.Play()
	for i, v := range order {
		if v != i {
			t.Fatalf("notification order = %v", order)
		}
	}
}

func TestPlayerUnsubscribe(t *testing.T) {
	s := NewScheduler()
	tl := newOpacityTimeline(t, s, NewElement("el", Rect{}), 0.25)
	calls := 0
	unsub := tl.Player().AddStatusListener(func(Status) { calls++ })
	unsub()
	tl.Play()
	if calls != 0 {
		t.Errorf("calls = %d after unsubscribe", calls)
	}
}

func TestPlayerPauseAndResume(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	tl := newOpacityTimeline(t, s, el, 1)

	tl.Play()
	run(s, 0.25)
	tl.Pause()
	if tl.Status() != StatusPaused {
		t.Fatalf("Status = %v, want paused", tl.Status())
	}
	held := el.Opacity
	run(s, 0.5)
	if el.Opacity != held {
		t.Errorf("paused timeline moved: %v -> %v", held, el.Opacity)
	}
	tl.Play()
	run(s, 0.75)
	if tl.Status() != StatusCompleted {
		t.Errorf("Status = %v, want completed", tl.Status())
	}
}

func TestPlayerSeek(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	tl := newOpacityTimeline(t, s, el, 1)

	tl.Seek(0.75)
	if !approxEqual(el.Opacity, 0.75, epsilon) {
		t.Errorf("Opacity after Seek = %v, want 0.75", el.Opacity)
	}
	if tl.Status() != StatusPaused {
		t.Errorf("Status = %v, want paused", tl.Status())
	}
	if !approxEqual(tl.Progress(), 0.75, 1e-9) {
		t.Errorf("Progress = %v", tl.Progress())
	}

	tl.Seek(5)
	if tl.Status() != StatusCompleted || el.Opacity != 1 {
		t.Errorf("Seek past end: status %v opacity %v", tl.Status(), el.Opacity)
	}
	tl.Seek(-1)
	if tl.Status() != StatusDismissed || el.Opacity != 0 {
		t.Errorf("Seek before start: status %v opacity %v", tl.Status(), el.Opacity)
	}
}

func TestPlayerRestart(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	tl := newOpacityTimeline(t, s, el, 0.5)
	completions := 0
	tl.OnComplete(func() { completions++ })

	tl.Play()
	run(s, 0.5)
	tl.Restart()
	if el.Opacity != 0 {
		t.Errorf("Restart did not render the start: %v", el.Opacity)
	}
	run(s, 0.5)
	if completions != 2 {
		t.Errorf("completions = %d, want 2", completions)
	}
}

func TestPlayerNoopsAtEnds(t *testing.T) {
	s := NewScheduler()
	tl := newOpacityTimeline(t, s, NewElement("el", Rect{}), 0.25)

	tl.Reverse()
	if tl.Status() != StatusDismissed || s.Active() != 0 {
		t.Errorf("Reverse at start: status %v active %d", tl.Status(), s.Active())
	}
	tl.Play()
	run(s, 0.25)
	tl.Play()
	if tl.Status() != StatusCompleted || s.Active() != 0 {
		t.Errorf("Play at end: status %v active %d", tl.Status(), s.Active())
	}
}

func TestPlayerKill(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	tl := newOpacityTimeline(t, s, el, 1)
	tl.Play()
	run(s, 0.25)
	tl.Kill()
	tl.Kill()
	held := el.Opacity
	tl.Play()
	tl.Seek(1)
	run(s, 1)
	if tl.Status() != StatusKilled {
		t.Errorf("Status = %v, want killed", tl.Status())
	}
	if el.Opacity != held {
		t.Errorf("killed timeline wrote %v -> %v", held, el.Opacity)
	}
}
