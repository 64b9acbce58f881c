package reveal

import "testing"

type fakeHost struct {
	log            []string
	contentVisible bool
	loaderMounted  bool
	loader         *Element
}

func (h *fakeHost) SetContentVisible(v bool) {
	h.contentVisible = v
	if v {
		h.log = append(h.log, "content visible")
	} else {
		h.log = append(h.log, "content hidden")
	}
}

func (h *fakeHost) UnmountLoader() {
	if h.loader.Opacity != 0 {
		h.log = append(h.log, "unmount while loader shown")
	}
	h.loaderMounted = false
	h.log = append(h.log, "unmount loader")
}

func newLoadingFixture() (*Scheduler, *Element, *Element, *fakeHost, *LoadingHandoff) {
	s := NewScheduler()
	loader := NewElement("loader", Rect{Width: 800, Height: 600})
	content := NewElement("content", Rect{Width: 800, Height: 4000})
	host := &fakeHost{loaderMounted: true, loader: loader}
	h := NewLoadingHandoff(s, LoadingConfig{Loader: loader, Content: content, Host: host})
	return s, loader, content, host, h
}

func TestLoadingHandoffSequence(t *testing.T) {
	s, loader, content, host, h := newLoadingFixture()
	if content.Opacity != 0 || content.Scale != 0.95 {
		t.Fatalf("content not hidden at start: opacity %v scale %v", content.Opacity, content.Scale)
	}

	var phases []LoadingPhase
	h.OnPhase(func(p LoadingPhase) {
		phases = append(phases, p)
		if p == PhaseReady && (!host.contentVisible || !host.loaderMounted) {
			t.Errorf("Ready observed with content flag %v, loader mounted %v", host.contentVisible, host.loaderMounted)
		}
	})

	run(s, 3.25)
	if h.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v before the loader duration", h.Phase())
	}

	for i := 0; i < 400 && !h.Ready(); i++ {
		s.Tick(frame)
		loaderShown := host.loaderMounted && loader.Opacity > 0
		if !loaderShown && content.Opacity == 0 {
			t.Fatalf("frame %d: neither loader nor content visible", i)
		}
	}
	if !h.Ready() {
		t.Fatal("handoff never reached Ready")
	}
	if content.Opacity != 1 || content.Scale != 1 {
		t.Errorf("content end state opacity %v scale %v", content.Opacity, content.Scale)
	}
	if loader.Opacity != 0 || loader.Scale != 0.9 {
		t.Errorf("loader end state opacity %v scale %v", loader.Opacity, loader.Scale)
	}

	wantLog := []string{"content hidden", "content visible", "unmount loader"}
	if len(host.log) != len(wantLog) {
		t.Fatalf("host log = %v, want %v", host.log, wantLog)
	}
	for i := range wantLog {
		if host.log[i] != wantLog[i] {
			t.Errorf("host log[%d] = %q, want %q", i, host.log[i], wantLog[i])
		}
	}
	if len(phases) != 2 || phases[0] != PhaseHandingOff || phases[1] != PhaseReady {
		t.Errorf("phases = %v", phases)
	}
}

func TestLoadingHandoffTiming(t *testing.T) {
	s, _, _, _, h := newLoadingFixture()
	run(s, 3.5)
	if h.Phase() != PhaseHandingOff {
		t.Fatalf("Phase = %v at 3.5s, want handing-off", h.Phase())
	}
	tl := h.Timeline()
	if tl == nil {
		t.Fatal("no handoff timeline")
	}
	starts := tl.Starts()
	if !approxEqual(starts[1], 0.5, 1e-9) || !approxEqual(tl.TotalDuration(), 1.5, 1e-9) {
		t.Errorf("starts %v duration %v, want content at 0.5 and 1.5 total", starts, tl.TotalDuration())
	}
}

func TestLoadingOnPhaseAfterReady(t *testing.T) {
	s, _, _, _, h := newLoadingFixture()
	run(s, 6)
	called := false
	h.OnPhase(func(p LoadingPhase) { called = p == PhaseReady })
	if !called {
		t.Error("late listener not called with Ready")
	}
}

func TestLoadingSkip(t *testing.T) {
	s, loader, content, host, h := newLoadingFixture()
	h.Skip()
	if !h.Ready() {
		t.Fatal("Skip did not reach Ready")
	}
	if content.Opacity != 1 || loader.Opacity != 0 {
		t.Errorf("after Skip: content %v loader %v", content.Opacity, loader.Opacity)
	}
	if host.loaderMounted {
		t.Error("loader still mounted after Skip")
	}
	run(s, 6)
	if len(host.log) != 3 {
		t.Errorf("host log = %v", host.log)
	}
}

func TestLoadingStopFailsOpen(t *testing.T) {
	s, _, content, host, h := newLoadingFixture()
	var phases []LoadingPhase
	h.OnPhase(func(p LoadingPhase) { phases = append(phases, p) })
	h.Stop()
	h.Stop()
	run(s, 6)
	if len(phases) != 0 {
		t.Errorf("phases after Stop = %v", phases)
	}
	if content.Opacity != 1 || !host.contentVisible {
		t.Errorf("content not left visible: opacity %v flag %v", content.Opacity, host.contentVisible)
	}
}

func TestLoadingSkipAfterStop(t *testing.T) {
	_, _, _, host, h := newLoadingFixture()
	var phases []LoadingPhase
	h.OnPhase(func(p LoadingPhase) { phases = append(phases, p) })
	h.Stop()
	logged := len(host.log)
	h.Skip()
	if h.Phase() != PhaseLoading || len(phases) != 0 {
		t.Errorf("Skip after Stop changed phase: %v %v", h.Phase(), phases)
	}
	if len(host.log) != logged {
		t.Errorf("Skip after Stop called the host: %v", host.log[logged:])
	}
}

func TestLoadingConfigDefaults(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoadingConfig
		wantWait  float64
		wantTotal float64
	}{
		{"zero takes defaults", LoadingConfig{}, DefaultLoadingDuration, 0.8 + 1 - 0.3},
		{"instant wait and overlap", LoadingConfig{Duration: Instant, Overlap: Instant}, 0, 0.8 + 1},
		{"explicit values", LoadingConfig{Duration: 2, LoaderOut: 0.5, ContentIn: 0.5, Overlap: 0.5}, 2, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.withDefaults()
			if got.Duration != tt.wantWait {
				t.Errorf("Duration = %v, want %v", got.Duration, tt.wantWait)
			}
			if total := got.LoaderOut + got.ContentIn - got.Overlap; !approxEqual(total, tt.wantTotal, 1e-9) {
				t.Errorf("handoff length = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func TestLoadingInstantHandsOffOnFirstTick(t *testing.T) {
	s := NewScheduler()
	loader := NewElement("loader", Rect{Width: 800, Height: 600})
	content := NewElement("content", Rect{Width: 800, Height: 4000})
	host := &fakeHost{loaderMounted: true, loader: loader}
	h := NewLoadingHandoff(s, LoadingConfig{Loader: loader, Content: content, Host: host, Duration: Instant})

	s.Tick(frame)
	if h.Phase() != PhaseHandingOff {
		t.Fatalf("Phase = %v after one tick, want handing-off", h.Phase())
	}
	run(s, 2)
	if !h.Ready() {
		t.Error("handoff never reached Ready")
	}
}

func TestLoadingPhaseString(t *testing.T) {
	if PhaseHandingOff.String() != "handing-off" || PhaseReady.String() != "ready" {
		t.Error("unexpected phase names")
	}
}
