package reveal

import "testing"

func TestMarqueeOffsetSeamless(t *testing.T) {
	s := NewScheduler()
	track := NewElement("logos", Rect{Width: 2400, Height: 80})
	m := NewMarquee(s, track, 1200, 20)

	if m.OffsetAt(0) != 0 {
		t.Errorf("OffsetAt(0) = %v", m.OffsetAt(0))
	}
	if got := m.OffsetAt(10); !approxEqual(got, -600, 1e-9) {
		t.Errorf("OffsetAt(10) = %v, want -600", got)
	}
	// Just before the wrap the track has moved one full copy left; at the wrap
	// it is back at 0, which shows the same pixels.
	before := m.OffsetAt(20 - 1e-9)
	if !approxEqual(before, -1200, 1e-6) {
		t.Errorf("OffsetAt(20-) = %v, want ~-1200", before)
	}
	if got := m.OffsetAt(20); got != 0 {
		t.Errorf("OffsetAt(20) = %v, want 0", got)
	}
	if !approxEqual(before+1200, m.OffsetAt(20), 1e-6) {
		t.Error("wrap is not seamless")
	}

	// Every frame moves the track by the same amount, across wraps too.
	speed := 1200.0 / 20
	prev := m.OffsetAt(0)
	for i := 1; i <= 64*45; i++ {
		cur := m.OffsetAt(float64(i) * frame)
		step := prev - cur
		if step < 0 {
			step += 1200
		}
		if !approxEqual(step, speed*frame, 1e-6) {
			t.Fatalf("frame %d: step %v, want %v", i, step, speed*frame)
		}
		prev = cur
	}
}

func TestMarqueeDrivesTrack(t *testing.T) {
	s := NewScheduler()
	track := NewElement("logos", Rect{Width: 1000, Height: 80})
	m := NewMarquee(s, track, 500, 10)

	run(s, 2.5)
	if !approxEqual(track.X, -125, 0.01) {
		t.Errorf("X at 2.5s = %v, want -125", track.X)
	}
	run(s, 10)
	if !approxEqual(track.X, m.OffsetAt(12.5), 0.01) {
		t.Errorf("X at 12.5s = %v, want %v", track.X, m.OffsetAt(12.5))
	}

	st := m.State()
	if st.LoopDistance != 500 || st.TrackWidth != 1000 {
		t.Errorf("State = %+v", st)
	}
	if !approxEqual(st.Elapsed, 12.5, 1e-9) {
		t.Errorf("Elapsed = %v, want 12.5", st.Elapsed)
	}
	if st.TrackWidth < 2*st.LoopDistance {
		t.Error("track narrower than two copies")
	}

	m.Stop()
	x := track.X
	run(s, 1)
	if track.X != x {
		t.Errorf("stopped marquee moved: %v -> %v", x, track.X)
	}
}

func TestMarqueeStill(t *testing.T) {
	s := NewScheduler()
	track := NewElement("logos", Rect{})
	m := NewMarquee(s, track, 0, 10)
	if m.Tween() != nil {
		t.Error("zero loop distance should not animate")
	}
	if m.OffsetAt(5) != 0 {
		t.Errorf("OffsetAt = %v", m.OffsetAt(5))
	}
	m.Stop()
}
