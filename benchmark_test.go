package reveal

import "testing"

// setupBenchTweens runs n looping tweens on n elements.
func setupBenchTweens(n int) *Scheduler {
	s := NewScheduler()
	for i := 0; i < n; i++ {
		el := NewElement("bench", Rect{Y: float64(i) * 40, Width: 32, Height: 32})
		s.Run(&Tween{
			Target:   el,
			To:       Props{Opacity: 0.5, Y: 10, Scale: 1.1},
			Duration: 1 + float64(i%5)*0.1,
			Ease:     Ease("power2.inOut"),
			Repeat:   RepeatForever,
			Yoyo:     true,
		})
	}
	s.Tick(frame) // warm up: tweens capture start values
	return s
}

func BenchmarkTick_1000Tweens(b *testing.B) {
	s := setupBenchTweens(1000)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Tick(frame)
	}
}

func BenchmarkTimeline_Stagger100(b *testing.B) {
	s := NewScheduler()
	var targets []Target
	for i := 0; i < 100; i++ {
		targets = append(targets, NewElement("card", Rect{}))
	}
	tl := MustBuildTimeline(s, Entry{Anim: Stagger(targets, StaggerSpec{
		To:       Shown(),
		Duration: 0.8,
		Ease:     Ease("back.out"),
		Each:     0.02,
	})})
	d := tl.TotalDuration()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tl.Seek(float64(i%64) / 64 * d)
	}
}

func BenchmarkObserverUpdate_200Bindings(b *testing.B) {
	s := NewScheduler()
	o := NewScrollObserver()
	for i := 0; i < 200; i++ {
		el := NewElement("section", Rect{Y: float64(i) * 500, Width: 1280, Height: 500})
		tl := MustBuildTimeline(s, Entry{Anim: TweenTo(el, Shown(), 0.5, nil)})
		o.Bind(BindingSpec{Trigger: el, Start: DefaultStartThreshold, End: DefaultEndThreshold, Timeline: tl, Mode: PlayReverseOnExit})
	}
	view := Rect{Width: 1280, Height: 720}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		view.Y = float64(i%2000) * 50
		o.Update(view)
		s.Tick(frame)
	}
}
