package reveal

import "testing"

func TestSchedulerTimer(t *testing.T) {
	s := NewScheduler()
	fired := 0
	tm := s.After(0.5, func() { fired++ })
	run(s, 0.25)
	if fired != 0 || !tm.Pending() {
		t.Fatalf("timer fired early: %d", fired)
	}
	run(s, 0.25)
	if fired != 1 {
		t.Fatalf("fired = %d at due time, want 1", fired)
	}
	run(s, 1)
	if fired != 1 || tm.Pending() {
		t.Errorf("timer fired again or still pending: %d", fired)
	}
}

func TestSchedulerTimerStop(t *testing.T) {
	s := NewScheduler()
	fired := false
	tm := s.After(0.25, func() { fired = true })
	tm.Stop()
	tm.Stop()
	run(s, 1)
	if fired {
		t.Error("stopped timer fired")
	}
	var nilTimer *Timer
	nilTimer.Stop()
	if nilTimer.Pending() {
		t.Error("nil timer pending")
	}
}

func TestSchedulerStartDuringTickWaitsOneFrame(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	var tw *Tween
	s.After(0, func() {
		tw = s.Run(TweenTo(el, Props{X: 64}, 1, nil))
	})
	s.Tick(frame)
	if tw == nil {
		t.Fatal("timer did not fire")
	}
	if el.X != 0 {
		t.Errorf("tween started in a timer advanced in the same tick: X = %v", el.X)
	}
	s.Tick(frame)
	if !approxEqual(el.X, 1, epsilon) {
		t.Errorf("X = %v after first advancing tick, want ~1", el.X)
	}
}

func TestSchedulerAdvancesInStartOrder(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	// Two zero-length writers of the same property: the later start wins.
	s.Run(TweenTo(el, Props{X: 1}, 0, nil))
	s.Run(TweenTo(el, Props{X: 2}, 0, nil))
	s.Tick(frame)
	if el.X != 2 {
		t.Errorf("X = %v, want 2 from the later tween", el.X)
	}
}

func TestSchedulerNegativeDt(t *testing.T) {
	s := NewScheduler()
	s.Tick(-1)
	if s.Now() != 0 {
		t.Errorf("Now = %v after negative dt", s.Now())
	}
	if s.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", s.Frame())
	}
}

func TestSchedulerRunNil(t *testing.T) {
	s := NewScheduler()
	if s.Run(nil) != nil {
		t.Error("Run(nil) should return nil")
	}
}
