package ecs

import (
	"math"
	"testing"

	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func run(s *reveal.Scheduler, o *reveal.ScrollObserver, view reveal.Rect, seconds float64) {
	for i := 0; i < int(seconds*64); i++ {
		o.Update(view)
		s.Tick(1.0 / 64)
	}
}

func TestNewAnimatable(t *testing.T) {
	world := donburi.NewWorld()
	e := NewAnimatable(world, reveal.Rect{Y: 100, Width: 50, Height: 20})
	target := Target(world, e)

	if target.Disposed() {
		t.Fatal("new entity reported disposed")
	}
	props := reveal.Capture(target)
	if props[reveal.Opacity] != 1 || props[reveal.Scale] != 1 || props[reveal.Width] != 50 {
		t.Errorf("initial props = %v", props)
	}
	if b := target.Bounds(); b.Y != 100 || b.Height != 20 {
		t.Errorf("Bounds = %+v", b)
	}
	if target.Entity() != e {
		t.Error("Entity mismatch")
	}
}

func TestEntityTargetTween(t *testing.T) {
	world := donburi.NewWorld()
	target := Target(world, NewAnimatable(world, reveal.Rect{}))
	reveal.Set(target, reveal.Hidden(40))

	s := reveal.NewScheduler()
	s.Run(reveal.TweenTo(target, reveal.Shown(), 0.5, nil))
	for i := 0; i < 64; i++ {
		s.Tick(1.0 / 64)
	}

	d := Animatable.Get(world.Entry(target.Entity()))
	if d.Opacity != 1 || d.Y != 0 {
		t.Errorf("component after tween = %+v", *d)
	}

	target.SetProp(reveal.Opacity, 3)
	if d.Opacity != 1 {
		t.Errorf("opacity not clamped: %v", d.Opacity)
	}
}

func TestEntityTargetRemoved(t *testing.T) {
	world := donburi.NewWorld()
	e := NewAnimatable(world, reveal.Rect{})
	target := Target(world, e)
	world.Remove(e)

	if !target.Disposed() {
		t.Fatal("removed entity should be disposed")
	}
	if _, ok := target.Prop(reveal.Opacity); ok {
		t.Error("Prop on removed entity reported ok")
	}
	target.SetProp(reveal.X, 10) // must not panic

	s := reveal.NewScheduler()
	tw := s.Run(reveal.TweenTo(target, reveal.Props{reveal.X: 10}, 0.1, nil))
	for i := 0; i < 16; i++ {
		s.Tick(1.0 / 64)
	}
	_ = tw
}

func TestPublishTriggers(t *testing.T) {
	world := donburi.NewWorld()
	target := Target(world, NewAnimatable(world, reveal.Rect{Y: 1000, Width: 100, Height: 400}))
	reveal.Set(target, reveal.Hidden(50))

	s := reveal.NewScheduler()
	o := reveal.NewScrollObserver()
	tl := reveal.MustBuildTimeline(s, reveal.Entry{Anim: reveal.TweenTo(target, reveal.Shown(), 0.5, nil)})
	b := o.Bind(reveal.BindingSpec{
		Name:     "card",
		Trigger:  target,
		Start:    reveal.DefaultStartThreshold,
		End:      reveal.DefaultEndThreshold,
		Timeline: tl,
		Mode:     reveal.PlayReverseOnExit,
	})

	var received []reveal.TriggerEvent
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		received = append(received, e)
	})
	unsub := PublishTriggers(world, b)

	view := reveal.Rect{Width: 1280, Height: 720}
	run(s, o, view, 0.25)
	view.Y = 600
	run(s, o, view, 1)

	if len(received) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	TriggerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %+v", received)
	}
	if received[0].Name != "card" || received[0].State != reveal.StateEntering || received[0].Direction != reveal.DirectionForward {
		t.Errorf("event 0 = %+v", received[0])
	}
	if received[1].State != reveal.StateVisible {
		t.Errorf("event 1 = %+v", received[1])
	}
	if y, _ := target.Prop(reveal.Y); math.Abs(y) > 1e-9 {
		t.Errorf("entity Y = %v after reveal", y)
	}

	unsub()
	view.Y = 0
	run(s, o, view, 1)
	events.ProcessAllEvents(world)
	if len(received) != 2 {
		t.Errorf("events after unsubscribe: %+v", received[2:])
	}
}
