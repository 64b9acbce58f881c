package reveal

import "fmt"

// LoadingPhase is the page's position in the loader handoff. Phases only move
// forward.
type LoadingPhase uint8

const (
	PhaseLoading LoadingPhase = iota
	PhaseHandingOff
	PhaseReady
)

func (p LoadingPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseHandingOff:
		return "handing-off"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("LoadingPhase(%d)", int(p))
	}
}

// LoadingHost is the render layer's side of the handoff.
type LoadingHost interface {
	// SetContentVisible flips the host's "content visible" flag. Content is
	// mounted but hidden until it is set to true.
	SetContentVisible(visible bool)
	// UnmountLoader removes (or hides) the loader. Called only after Ready.
	UnmountLoader()
}

// DefaultLoadingDuration is the loader's minimum on-screen time in seconds.
const DefaultLoadingDuration = 3.5

// Instant asks for an explicit zero in a LoadingConfig duration field, whose
// zero value selects the default. Any negative value has the same effect.
const Instant = -1.0

// LoadingConfig configures a LoadingHandoff. Zero durations take the defaults
// of the page design: 3.5s on screen, 0.8s loader exit, 1s content entrance
// overlapping the exit by 0.3s. Use Instant for a real zero.
type LoadingConfig struct {
	Duration     float64
	LoaderOut    float64
	ContentIn    float64
	Overlap      float64
	Loader       Target
	Content      Target
	Host         LoadingHost
	LoaderEase   string
	ContentEase  string
	ContentStart Props // hidden pre-entrance state of the content
}

func (c LoadingConfig) withDefaults() LoadingConfig {
	c.Duration = durationOr(c.Duration, DefaultLoadingDuration)
	c.LoaderOut = durationOr(c.LoaderOut, 0.8)
	c.ContentIn = durationOr(c.ContentIn, 1)
	c.Overlap = durationOr(c.Overlap, 0.3)
	if c.LoaderEase == "" {
		c.LoaderEase = "power2.inOut"
	}
	if c.ContentEase == "" {
		c.ContentEase = "power2.out"
	}
	if c.ContentStart == nil {
		c.ContentStart = Props{Opacity: 0, Scale: 0.95}
	}
	return c
}

// durationOr maps zero to def and negative values to zero.
func durationOr(v, def float64) float64 {
	switch {
	case v == 0:
		return def
	case v < 0:
		return 0
	}
	return v
}

// LoadingHandoff sequences the full-screen loader's exit with the content's
// entrance. It runs once per page load:
//
//	Loading ──timer──► HandingOff ──timeline complete──► Ready
//
// While Loading, the content is mounted in its hidden state so scroll
// triggers can measure it. On Ready the host's content flag is set first, the
// phase changes, and only then is the loader unmounted, so no frame shows
// neither loader nor content.
type LoadingHandoff struct {
	sched *Scheduler
	cfg   LoadingConfig
	phase LoadingPhase
	timer *Timer
	tl    *Timeline

	listeners      map[int]func(LoadingPhase)
	nextListenerID int
	stopped        bool
}

// NewLoadingHandoff enters Loading: hides the content, tells the host the
// content is not visible yet, and starts the loader timer.
func NewLoadingHandoff(s *Scheduler, cfg LoadingConfig) *LoadingHandoff {
	h := &LoadingHandoff{
		sched:     s,
		cfg:       cfg.withDefaults(),
		phase:     PhaseLoading,
		listeners: make(map[int]func(LoadingPhase)),
	}
	Set(h.cfg.Content, h.cfg.ContentStart)
	if h.cfg.Host != nil {
		h.cfg.Host.SetContentVisible(false)
	}
	h.timer = s.After(h.cfg.Duration, h.handOff)
	return h
}

// Phase returns the current phase.
func (h *LoadingHandoff) Phase() LoadingPhase {
	return h.phase
}

// Ready reports whether the handoff has finished.
func (h *LoadingHandoff) Ready() bool {
	return h.phase == PhaseReady
}

// Timeline returns the handoff timeline once HandingOff has begun, or nil.
func (h *LoadingHandoff) Timeline() *Timeline {
	return h.tl
}

// OnPhase registers fn for phase changes. If the handoff is already Ready, fn
// is called immediately. Returns an unsubscribe function.
func (h *LoadingHandoff) OnPhase(fn func(LoadingPhase)) func() {
	if fn == nil {
		return func() {}
	}
	if h.phase == PhaseReady {
		fn(PhaseReady)
		return func() {}
	}
	id := h.nextListenerID
	h.nextListenerID++
	h.listeners[id] = fn
	return func() {
		delete(h.listeners, id)
	}
}

func (h *LoadingHandoff) setPhase(p LoadingPhase) {
	if p <= h.phase {
		return
	}
	h.phase = p
	for id := 0; id < h.nextListenerID; id++ {
		if fn, ok := h.listeners[id]; ok {
			fn(p)
		}
	}
}

func (h *LoadingHandoff) handOff() {
	if h.stopped || h.phase != PhaseLoading {
		return
	}
	h.setPhase(PhaseHandingOff)

	tl, err := NewTimeline().
		To(h.cfg.Loader, Props{Opacity: 0, Scale: 0.9}, h.cfg.LoaderOut, Ease(h.cfg.LoaderEase), "").
		To(h.cfg.Content, Props{Opacity: 1, Scale: 1}, h.cfg.ContentIn, Ease(h.cfg.ContentEase), fmt.Sprintf("-=%g", h.cfg.Overlap)).
		OnComplete(h.finish).
		Build(h.sched)
	if err != nil {
		// Cannot happen with the fixed tokens above; fail open regardless.
		h.Skip()
		return
	}
	h.tl = tl
	tl.Play()
}

// finish commits the content flag, moves to Ready, then unmounts the loader.
func (h *LoadingHandoff) finish() {
	if h.phase == PhaseReady {
		return
	}
	if h.cfg.Host != nil {
		h.cfg.Host.SetContentVisible(true)
	}
	h.setPhase(PhaseReady)
	if h.cfg.Host != nil {
		h.cfg.Host.UnmountLoader()
	}
	h.listeners = map[int]func(LoadingPhase){}
}

// Skip ends the handoff immediately with the content fully visible. Used as
// the fail-open path and for visitors who prefer reduced motion. Skip after
// Stop does nothing.
func (h *LoadingHandoff) Skip() {
	if h.stopped || h.phase == PhaseReady {
		return
	}
	h.timer.Stop()
	if h.tl != nil {
		h.tl.Kill()
	}
	Set(h.cfg.Loader, Props{Opacity: 0})
	FailOpen(h.cfg.Content)
	h.finish()
}

// Stop abandons the handoff, as on unmount. Pending work is cancelled and the
// content is left visible; no further phase changes occur.
func (h *LoadingHandoff) Stop() {
	if h.stopped {
		return
	}
	h.stopped = true
	h.timer.Stop()
	if h.tl != nil {
		h.tl.Kill()
	}
	if h.phase != PhaseReady {
		FailOpen(h.cfg.Content)
		if h.cfg.Host != nil {
			h.cfg.Host.SetContentVisible(true)
		}
	}
	h.listeners = map[int]func(LoadingPhase){}
}

// Remove is Stop, so a Scope can track the handoff as a listener.
func (h *LoadingHandoff) Remove() {
	h.Stop()
}
