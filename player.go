package reveal

import (
	"fmt"
	"math"
)

// Status represents the playback state of a Player.
//
// The status follows this state machine:
//
//	                Play()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While moving, status is StatusForward or StatusReverse. A player that has
// been killed reports StatusKilled and never moves again.
type Status int

const (
	// StatusDismissed means the playhead is stopped at the start.
	StatusDismissed Status = iota
	// StatusForward means the playhead is moving toward the end.
	StatusForward
	// StatusReverse means the playhead is moving toward the start.
	StatusReverse
	// StatusCompleted means the playhead is stopped at the end.
	StatusCompleted
	// StatusPaused means the playhead is stopped between the ends.
	StatusPaused
	// StatusKilled means the player was cancelled; its targets keep the last
	// written values.
	StatusKilled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	case StatusPaused:
		return "paused"
	case StatusKilled:
		return "killed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Player moves a playhead over an Animation on a Scheduler and renders the
// animation at the playhead every tick. Tweens and Timelines each own one.
// There is only ever one direction in flight: Play and Reverse redirect the
// same playhead, so switching direction never jumps.
type Player struct {
	sched  *Scheduler
	anim   Animation
	pos    float64
	dir    float64
	status Status

	active bool
	listed bool
	since  uint64

	onComplete        func()
	onReverseComplete func()
	statusListeners   map[int]func(Status)
	nextListenerID    int
}

func newPlayer(s *Scheduler, anim Animation) *Player {
	return &Player{
		sched:           s,
		anim:            anim,
		status:          StatusDismissed,
		statusListeners: make(map[int]func(Status)),
	}
}

// Play moves the playhead toward the end from wherever it is. No-op when
// already completed or killed.
func (p *Player) Play() {
	if p.status == StatusKilled {
		return
	}
	if p.atEnd() {
		p.sched.deactivate(p)
		p.dir = 0
		p.setStatus(StatusCompleted)
		return
	}
	p.dir = 1
	p.setStatus(StatusForward)
	p.sched.activate(p)
}

// Reverse moves the playhead toward the start from wherever it is. No-op when
// already dismissed or killed.
func (p *Player) Reverse() {
	if p.status == StatusKilled {
		return
	}
	if p.pos <= 0 {
		p.sched.deactivate(p)
		p.dir = 0
		p.setStatus(StatusDismissed)
		return
	}
	p.dir = -1
	p.setStatus(StatusReverse)
	p.sched.activate(p)
}

// Restart jumps back to the start, renders it, and plays forward.
func (p *Player) Restart() {
	if p.status == StatusKilled {
		return
	}
	p.Seek(0)
	p.Play()
}

// Pause stops the playhead where it is.
func (p *Player) Pause() {
	if p.status != StatusForward && p.status != StatusReverse {
		return
	}
	p.sched.deactivate(p)
	p.dir = 0
	p.setStatus(StatusPaused)
}

// Seek moves the playhead to pos seconds, clamped to the animation, and
// renders it immediately. Playback direction is kept.
func (p *Player) Seek(pos float64) {
	if p.status == StatusKilled {
		return
	}
	p.pos = clampPos(pos, p.anim.TotalDuration())
	p.anim.render(p.pos)
	if p.dir == 0 {
		switch {
		case p.pos <= 0:
			p.setStatus(StatusDismissed)
		case p.atEnd():
			p.setStatus(StatusCompleted)
		default:
			p.setStatus(StatusPaused)
		}
	}
}

// Kill stops the player permanently. Targets keep the values of the last
// rendered frame. Killing twice is a no-op.
func (p *Player) Kill() {
	if p.status == StatusKilled {
		return
	}
	p.sched.deactivate(p)
	p.dir = 0
	p.setStatus(StatusKilled)
	p.statusListeners = nil
	p.onComplete = nil
	p.onReverseComplete = nil
}

// Position returns the playhead in seconds.
func (p *Player) Position() float64 {
	return p.pos
}

// Progress returns the playhead as a fraction of the animation duration. An
// infinite animation reports progress within its first cycle as 0.
func (p *Player) Progress() float64 {
	d := p.anim.TotalDuration()
	if d <= 0 {
		if p.status == StatusCompleted {
			return 1
		}
		return 0
	}
	if math.IsInf(d, 1) {
		return 0
	}
	return p.pos / d
}

// Status returns the current playback status.
func (p *Player) Status() Status {
	return p.status
}

// IsActive reports whether the playhead is moving.
func (p *Player) IsActive() bool {
	return p.status == StatusForward || p.status == StatusReverse
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (p *Player) AddStatusListener(fn func(Status)) func() {
	if p.statusListeners == nil {
		return func() {}
	}
	id := p.nextListenerID
	p.nextListenerID++
	p.statusListeners[id] = fn
	return func() {
		delete(p.statusListeners, id)
	}
}

func (p *Player) setStatus(status Status) {
	if p.status == status {
		return
	}
	p.status = status
	if p.sched.debug {
		p.sched.debugLogStatus(p, status)
	}
	for _, id := range p.listenerIDs() {
		if fn, ok := p.statusListeners[id]; ok {
			fn(status)
		}
	}
}

// listenerIDs returns listener ids in registration order so notification order
// is deterministic.
func (p *Player) listenerIDs() []int {
	ids := make([]int, 0, len(p.statusListeners))
	for id := 0; id < p.nextListenerID; id++ {
		if _, ok := p.statusListeners[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (p *Player) atEnd() bool {
	d := p.anim.TotalDuration()
	switch {
	case math.IsInf(d, 1):
		return false
	case d <= 0:
		return p.status == StatusCompleted
	}
	return p.pos >= d
}

// advance moves the playhead by dt in the current direction and renders.
func (p *Player) advance(dt float64) {
	d := p.anim.TotalDuration()
	p.pos += dt * p.dir

	finishedForward := p.dir > 0 && !math.IsInf(d, 1) && p.pos >= d
	finishedReverse := p.dir < 0 && p.pos <= 0
	if finishedForward {
		p.pos = d
	}
	if finishedReverse {
		p.pos = 0
	}

	p.anim.render(p.pos)

	switch {
	case finishedForward:
		p.sched.deactivate(p)
		p.dir = 0
		p.setStatus(StatusCompleted)
		if p.onComplete != nil {
			p.onComplete()
		}
	case finishedReverse:
		p.sched.deactivate(p)
		p.dir = 0
		p.setStatus(StatusDismissed)
		if p.onReverseComplete != nil {
			p.onReverseComplete()
		}
	}
}

func clampPos(pos, d float64) float64 {
	if pos < 0 {
		return 0
	}
	if !math.IsInf(d, 1) && pos > d {
		return d
	}
	return pos
}
