package reveal

import (
	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
)

// Entry is one item of a timeline: an animation and its position token (see
// resolveStart for the grammar).
type Entry struct {
	Anim     Animation
	Position string
}

type placed struct {
	anim  Animation
	start float64
}

// Timeline sequences animations at resolved start times and plays them as one
// unit. Total duration is the maximum of start + duration over all entries.
//
// Play runs forward from the current playhead and Reverse runs backward over
// the same path: every tween renders at its own local time, so a reversed
// "fade in, scale up" is exactly "fade out, scale down" through the same
// values. A Timeline is itself an Animation and can be nested; a nested
// timeline is driven by its parent and must not be played on its own.
type Timeline struct {
	entries  []placed
	duration float64
	player   *Player
	lastT    float64
	rendered bool

	onComplete func()
}

// BuildTimeline resolves entry positions left to right, each relative token
// measured from the previous entry's absolute end, and returns a timeline
// bound to s. An unparseable position fails the whole build.
func BuildTimeline(s *Scheduler, entries ...Entry) (*Timeline, error) {
	tl := &Timeline{entries: make([]placed, 0, len(entries))}
	var prevStart, prevEnd float64
	for i, e := range entries {
		start, err := resolveStart(e.Position, prevStart, prevEnd)
		if err != nil {
			return nil, errors.Wrapf(err, "timeline entry %d", i)
		}
		if e.Anim == nil {
			// A nil animation holds its slot as a zero-length marker.
			prevStart, prevEnd = start, start
			continue
		}
		end := start + e.Anim.TotalDuration()
		tl.entries = append(tl.entries, placed{anim: e.Anim, start: start})
		if end > tl.duration {
			tl.duration = end
		}
		prevStart, prevEnd = start, end
	}
	tl.player = newPlayer(s, tl)
	tl.player.onComplete = tl.fireComplete
	return tl, nil
}

// MustBuildTimeline is like BuildTimeline but panics on an invalid position.
// Intended for timelines assembled from literals.
func MustBuildTimeline(s *Scheduler, entries ...Entry) *Timeline {
	tl, err := BuildTimeline(s, entries...)
	if err != nil {
		panic(err)
	}
	return tl
}

// TotalDuration implements Animation.
func (tl *Timeline) TotalDuration() float64 {
	return tl.duration
}

// Starts returns the resolved start time of every non-nil entry, in order.
func (tl *Timeline) Starts() []float64 {
	out := make([]float64, len(tl.entries))
	for i, e := range tl.entries {
		out[i] = e.start
	}
	return out
}

// OnComplete sets the callback fired each time a forward run reaches the end.
// A reversed run reaching the start never fires it.
func (tl *Timeline) OnComplete(fn func()) {
	tl.onComplete = fn
}

// OnReverseComplete sets the callback fired when a reversed run reaches the
// start.
func (tl *Timeline) OnReverseComplete(fn func()) {
	tl.player.onReverseComplete = fn
}

func (tl *Timeline) fireComplete() {
	if tl.onComplete != nil {
		tl.onComplete()
	}
}

// Player returns the playback handle.
func (tl *Timeline) Player() *Player { return tl.player }

// Play runs forward from the current playhead.
func (tl *Timeline) Play() { tl.player.Play() }

// Reverse runs backward from the current playhead.
func (tl *Timeline) Reverse() { tl.player.Reverse() }

// Restart renders the start and plays forward.
func (tl *Timeline) Restart() { tl.player.Restart() }

// Pause stops the playhead in place.
func (tl *Timeline) Pause() { tl.player.Pause() }

// Seek moves the playhead to pos seconds and renders it.
func (tl *Timeline) Seek(pos float64) { tl.player.Seek(pos) }

// Progress returns the playhead as a fraction of the total duration.
func (tl *Timeline) Progress() float64 { return tl.player.Progress() }

// Status returns the playback status.
func (tl *Timeline) Status() Status { return tl.player.Status() }

// Kill cancels the timeline and every animation in it. Targets keep their
// last written values. Killing twice is a no-op.
func (tl *Timeline) Kill() { tl.kill() }

func (tl *Timeline) kill() {
	if tl.player != nil {
		tl.player.Kill()
	}
	for _, e := range tl.entries {
		e.anim.kill()
	}
	tl.onComplete = nil
}

func (tl *Timeline) eachTween(fn func(*Tween)) {
	for _, e := range tl.entries {
		e.anim.eachTween(fn)
	}
}

// render draws every entry at its local time. Moving backward, entries render
// last to first so the earliest writer of a shared property has the final say,
// mirroring the forward order.
func (tl *Timeline) render(t float64) {
	backward := tl.rendered && t < tl.lastT
	tl.lastT, tl.rendered = t, true
	if backward {
		for i := len(tl.entries) - 1; i >= 0; i-- {
			e := tl.entries[i]
			e.anim.render(t - e.start)
		}
		return
	}
	for _, e := range tl.entries {
		e.anim.render(t - e.start)
	}
}

// TimelineBuilder assembles timeline entries fluently. Sections describe their
// entrance as data through it and call Build once.
type TimelineBuilder struct {
	entries    []Entry
	onComplete func()
}

// NewTimeline starts an empty builder.
func NewTimeline() *TimelineBuilder {
	return &TimelineBuilder{}
}

// Add appends an animation at the given position token.
func (b *TimelineBuilder) Add(anim Animation, position string) *TimelineBuilder {
	b.entries = append(b.entries, Entry{Anim: anim, Position: position})
	return b
}

// To appends a tween from the target's current values.
func (b *TimelineBuilder) To(target Target, to Props, duration float64, fn ease.TweenFunc, position string) *TimelineBuilder {
	return b.Add(TweenTo(target, to, duration, fn), position)
}

// FromTo appends a tween with explicit start values.
func (b *TimelineBuilder) FromTo(target Target, from, to Props, duration float64, fn ease.TweenFunc, position string) *TimelineBuilder {
	return b.Add(TweenFromTo(target, from, to, duration, fn), position)
}

// Stagger appends a stagger group over targets.
func (b *TimelineBuilder) Stagger(targets []Target, spec StaggerSpec, position string) *TimelineBuilder {
	return b.Add(Stagger(targets, spec), position)
}

// OnComplete sets the built timeline's completion callback.
func (b *TimelineBuilder) OnComplete(fn func()) *TimelineBuilder {
	b.onComplete = fn
	return b
}

// Entries returns a copy of the accumulated entries.
func (b *TimelineBuilder) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Build resolves positions and binds the timeline to s.
func (b *TimelineBuilder) Build(s *Scheduler) (*Timeline, error) {
	tl, err := BuildTimeline(s, b.entries...)
	if err != nil {
		return nil, err
	}
	tl.OnComplete(b.onComplete)
	return tl, nil
}
