package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a Tween loop until cancelled.
const RepeatForever = -1

// Tween interpolates a set of properties on one target. Each animated property
// is driven by its own gween channel; the tween writes every channel to the
// target each time its local time changes.
//
// From is optional: properties missing from it start at the target's value at
// the moment the tween first renders. By adds relative deltas ("+=5") to the
// start value, or to To when both are given.
//
// A Tween is configured through its exported fields and must not be modified
// after it starts. Run it standalone with Scheduler.Run, or place it in a
// Timeline. A target may have several tweens running on different properties;
// two concurrent tweens on the same property of the same target produce
// undefined visual order and must be avoided by construction.
type Tween struct {
	Target   Target
	From     Props
	To       Props
	By       Props
	Duration float64 // seconds per cycle
	Ease     ease.TweenFunc
	Delay    float64 // seconds before the first cycle
	Repeat   int     // extra cycles; RepeatForever loops
	Yoyo     bool    // odd cycles run backward
	// OnComplete fires once when a standalone tween finishes.
	OnComplete func()

	channels []channel
	started  bool
	rendered bool
	last     float64
	inFlight bool
	killed   bool
	player   *Player
}

type channel struct {
	prop     Prop
	from, to float64
	tw       *gween.Tween
}

// at returns the channel value at linear fraction f of a cycle of length d.
// The ends are exact so a settled tween leaves exactly To behind.
func (c *channel) at(f, d float64) float64 {
	switch {
	case f <= 0:
		return c.from
	case f >= 1:
		return c.to
	}
	v, _ := c.tw.Set(float32(f * d))
	return float64(v)
}

// TweenTo creates a tween from the target's current values to the given props.
func TweenTo(target Target, to Props, duration float64, fn ease.TweenFunc) *Tween {
	return &Tween{Target: target, To: to, Duration: duration, Ease: fn}
}

// TweenFromTo creates a tween with explicit start and end values.
func TweenFromTo(target Target, from, to Props, duration float64, fn ease.TweenFunc) *Tween {
	return &Tween{Target: target, From: from, To: to, Duration: duration, Ease: fn}
}

// TotalDuration returns the length in seconds including delay and repeats.
// A tween that repeats forever has infinite duration.
func (tw *Tween) TotalDuration() float64 {
	d := math.Max(tw.Duration, 0)
	if tw.Repeat < 0 {
		if d == 0 {
			return tw.Delay
		}
		return math.Inf(1)
	}
	return tw.Delay + d*float64(tw.Repeat+1)
}

// Cancel stops the tween. Targets keep the last written values. Cancelling
// twice, or cancelling a tween that never started, is a no-op.
func (tw *Tween) Cancel() {
	tw.kill()
}

// Player returns the playback handle of a tween started with Scheduler.Run,
// or nil for tweens owned by a timeline.
func (tw *Tween) Player() *Player {
	return tw.player
}

// Done reports whether the tween has settled, either completed or cancelled.
func (tw *Tween) Done() bool {
	if tw.killed {
		return true
	}
	if tw.player != nil {
		return tw.player.Status() == StatusCompleted
	}
	return tw.rendered && tw.last >= 1
}

// Cancelled reports whether Cancel was called.
func (tw *Tween) Cancelled() bool {
	return tw.killed
}

func (tw *Tween) kill() {
	if tw.killed {
		return
	}
	tw.killed = true
	tw.inFlight = false
	if tw.player != nil {
		tw.player.Kill()
	}
}

func (tw *Tween) eachTween(fn func(*Tween)) {
	fn(tw)
}

func (tw *Tween) render(t float64) {
	if tw.killed {
		return
	}
	if missing(tw.Target) {
		tw.inFlight = false
		return
	}
	lt := t - tw.Delay
	if !tw.started {
		if lt < 0 {
			return
		}
		tw.start()
	}
	f := tw.fraction(lt)
	tw.inFlight = f > 0 && f < 1
	if tw.rendered && f == tw.last {
		return
	}
	tw.last, tw.rendered = f, true
	for i := range tw.channels {
		ch := &tw.channels[i]
		tw.Target.SetProp(ch.prop, ch.at(f, tw.Duration))
	}
}

// start captures start values and builds one gween channel per property.
func (tw *Tween) start() {
	tw.started = true
	fn := tw.Ease
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(math.Max(tw.Duration, 0))
	tw.channels = tw.channels[:0]
	for _, p := range AllProps {
		to, hasTo := tw.To[p]
		by, hasBy := tw.By[p]
		if !hasTo && !hasBy {
			continue
		}
		from, exposed := tw.Target.Prop(p)
		if !exposed {
			continue
		}
		if v, ok := tw.From[p]; ok {
			from = v
		}
		switch {
		case !hasTo:
			to = from + by
		case hasBy:
			to += by
		}
		tw.channels = append(tw.channels, channel{
			prop: p,
			from: from,
			to:   to,
			tw:   gween.New(float32(from), float32(to), d, fn),
		})
	}
}

// fraction maps local time (after delay) to linear progress within the
// current cycle, accounting for repeats and yoyo.
func (tw *Tween) fraction(lt float64) float64 {
	d := tw.Duration
	if d <= 0 {
		if lt >= 0 {
			return 1
		}
		return 0
	}
	if lt <= 0 {
		return 0
	}
	if tw.Repeat >= 0 && lt >= d*float64(tw.Repeat+1) {
		if tw.Yoyo && tw.Repeat%2 == 1 {
			return 0
		}
		return 1
	}
	n := math.Floor(lt / d)
	f := (lt - n*d) / d
	if tw.Yoyo && int64(n)%2 == 1 {
		f = 1 - f
	}
	return f
}
