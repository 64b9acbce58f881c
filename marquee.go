package reveal

import (
	"math"

	"github.com/tanema/gween/ease"
)

// MarqueeState describes an infinitely looping horizontal track. The track's
// content is duplicated end to end; LoopDistance is the width of one copy, so
// an offset of -LoopDistance looks identical to 0.
type MarqueeState struct {
	TrackWidth   float64
	LoopDistance float64
	Elapsed      float64
}

// Marquee scrolls a duplicated track left at constant speed forever.
type Marquee struct {
	track    Target
	loop     float64
	duration float64
	tween    *Tween
	sched    *Scheduler
}

// NewMarquee starts a linear tween of the track's X from 0 to -loopDistance
// over duration seconds, repeating forever. trackWidth should be at least
// 2*loopDistance so the wrap never shows an edge. A non-positive duration or
// loop distance leaves the track still.
func NewMarquee(s *Scheduler, track Target, loopDistance, duration float64) *Marquee {
	m := &Marquee{track: track, loop: loopDistance, duration: duration, sched: s}
	if loopDistance <= 0 || duration <= 0 {
		return m
	}
	m.tween = s.Run(&Tween{
		Target:   track,
		From:     Props{X: 0},
		To:       Props{X: -loopDistance},
		Duration: duration,
		Ease:     ease.Linear,
		Repeat:   RepeatForever,
	})
	return m
}

// State returns the track's loop geometry and how long it has been running.
func (m *Marquee) State() MarqueeState {
	st := MarqueeState{LoopDistance: m.loop}
	if w, ok := m.track.(Bounded); ok {
		st.TrackWidth = w.Bounds().Width
	}
	if m.tween != nil && m.tween.Player() != nil {
		st.Elapsed = m.tween.Player().Position()
	}
	return st
}

// OffsetAt returns the track's X offset after elapsed seconds. The offset
// moves continuously and wraps from -LoopDistance back to 0, which shows the
// same pixels.
func (m *Marquee) OffsetAt(elapsed float64) float64 {
	if m.loop <= 0 || m.duration <= 0 || elapsed <= 0 {
		return 0
	}
	f := math.Mod(elapsed, m.duration) / m.duration
	return -m.loop * f
}

// Tween returns the looping tween, or nil for a still track.
func (m *Marquee) Tween() *Tween {
	return m.tween
}

// Stop cancels the loop. The track keeps its current offset.
func (m *Marquee) Stop() {
	if m.tween != nil {
		m.tween.Cancel()
	}
}
