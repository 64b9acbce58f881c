package reveal

// Scheduler is the frame-driven clock every animation runs on. The host calls
// Tick once per frame with the elapsed frame time; nothing advances between
// ticks.
//
// Within a tick, due timers fire first, then every player that was active
// before the tick began advances once, in the order it was started. Players
// started during a tick (from a callback or a timer) first advance on the next
// tick. Cancellation takes effect immediately: a player stopped mid-tick is
// skipped for the rest of that tick.
//
// There is no global scheduler. Each page owns one and drives it.
type Scheduler struct {
	now     float64
	frame   uint64
	players []*Player
	timers  []*Timer
	debug   bool
	warned  map[overlapKey]struct{}
}

// NewScheduler creates an idle scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated frame time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Frame returns the number of ticks processed so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Active returns the number of players currently advancing.
func (s *Scheduler) Active() int {
	n := 0
	for _, p := range s.players {
		if p.active {
			n++
		}
	}
	return n
}

// SetDebugMode enables or disables debug diagnostics. When enabled, player
// status changes and overlapping writers to the same target property are
// reported on stderr.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Tick advances time by dt seconds. Negative dt is treated as zero.
func (s *Scheduler) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.frame++
	s.now += dt
	s.fireTimers()

	for i := 0; i < len(s.players); i++ {
		p := s.players[i]
		if !p.active || p.since == s.frame {
			continue
		}
		p.advance(dt)
	}
	s.compact()

	if s.debug {
		s.debugCheckOverlap()
	}
}

// Run starts tw as a standalone animation and returns it as the handle.
// Cancel it with tw.Cancel.
func (s *Scheduler) Run(tw *Tween) *Tween {
	if tw == nil {
		return nil
	}
	p := newPlayer(s, tw)
	tw.player = p
	p.onComplete = tw.OnComplete
	p.Play()
	return tw
}

// To starts a standalone tween from the target's current values.
func (s *Scheduler) To(target Target, to Props, duration float64, easeName string) *Tween {
	return s.Run(&Tween{Target: target, To: to, Duration: duration, Ease: Ease(easeName)})
}

// activate schedules p to advance from the next tick on.
func (s *Scheduler) activate(p *Player) {
	if p.active {
		return
	}
	p.active = true
	p.since = s.frame
	if !p.listed {
		p.listed = true
		s.players = append(s.players, p)
	}
}

func (s *Scheduler) deactivate(p *Player) {
	p.active = false
}

// compact drops inactive players, preserving start order.
func (s *Scheduler) compact() {
	kept := s.players[:0]
	for _, p := range s.players {
		if p.active {
			kept = append(kept, p)
		} else {
			p.listed = false
		}
	}
	for i := len(kept); i < len(s.players); i++ {
		s.players[i] = nil
	}
	s.players = kept
}

// Timer is a one-shot callback scheduled on frame time.
type Timer struct {
	at      float64
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing. Stopping twice is a no-op.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped && !t.fired
}

// After schedules fn to run on the first tick at or past d seconds from now.
func (s *Scheduler) After(d float64, fn func()) *Timer {
	t := &Timer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *Scheduler) fireTimers() {
	if len(s.timers) == 0 {
		return
	}
	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.at <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
	}
}
