package reveal

import "fmt"

// ToggleMode selects what a binding does when its trigger leaves the active
// region.
type ToggleMode uint8

const (
	// PlayReverseOnExit plays on entry and reverses on exit, re-arming for the
	// next entry.
	PlayReverseOnExit ToggleMode = iota
	// PlayOnce plays on the first entry and never reverses.
	PlayOnce
)

// String returns the configuration name of the mode.
func (m ToggleMode) String() string {
	switch m {
	case PlayOnce:
		return "play-once"
	case PlayReverseOnExit:
		return "play-reverse-on-exit"
	default:
		return fmt.Sprintf("ToggleMode(%d)", int(m))
	}
}

// ParseToggleMode resolves a configuration name.
func ParseToggleMode(name string) (ToggleMode, bool) {
	switch name {
	case "play-once":
		return PlayOnce, true
	case "play-reverse-on-exit":
		return PlayReverseOnExit, true
	}
	return PlayReverseOnExit, false
}

// TriggerState is a binding's position in its entrance cycle:
//
//	Idle → Entering → Visible → Exiting → Idle
//
// Entering and Exiting last while the timeline is moving; Visible and Idle are
// reached when it settles at its end or start.
type TriggerState uint8

const (
	StateIdle TriggerState = iota
	StateEntering
	StateVisible
	StateExiting
)

func (s TriggerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StateVisible:
		return "visible"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("TriggerState(%d)", int(s))
	}
}

// Bounded is implemented by trigger elements. Bounds is the untransformed
// document-space box.
type Bounded interface {
	Bounds() Rect
}

// Default thresholds: the trigger activates when its top edge passes 80% down
// the viewport and deactivates when its bottom edge passes 20% down.
const (
	DefaultStartThreshold = 0.8
	DefaultEndThreshold   = 0.2
)

// BindingSpec configures a scroll binding. Start and End are fractions of the
// viewport height.
type BindingSpec struct {
	Name     string
	Trigger  Bounded
	Start    float64
	End      float64
	Timeline *Timeline
	Mode     ToggleMode
	// OnToggle fires whenever the trigger enters or leaves the active region.
	OnToggle func(active bool, dir Direction)
}

// TriggerEvent describes a binding state change.
type TriggerEvent struct {
	Name      string
	State     TriggerState
	Direction Direction
}

// Binding ties a timeline to a trigger element's viewport crossings. At most
// one direction is in flight at a time: a new crossing redirects the timeline's
// playhead instead of stacking a second run.
type Binding struct {
	name     string
	trigger  Bounded
	start    float64
	end      float64
	timeline *Timeline
	mode     ToggleMode
	onToggle func(bool, Direction)

	state    TriggerState
	inside   bool
	played   bool
	lastDir  Direction
	unsub    func()
	observer *ScrollObserver
	killed   bool

	listeners      map[int]func(TriggerEvent)
	nextListenerID int
}

// State returns the binding's current state.
func (b *Binding) State() TriggerState {
	return b.state
}

// Name returns the binding name from its spec.
func (b *Binding) Name() string {
	return b.name
}

// Thresholds returns the start and end lines as fractions of the viewport
// height.
func (b *Binding) Thresholds() (start, end float64) {
	return b.start, b.end
}

// TriggerBounds returns the trigger element's document-space box.
func (b *Binding) TriggerBounds() Rect {
	if b.trigger == nil {
		return Rect{}
	}
	return b.trigger.Bounds()
}

// Inside reports whether the trigger was in the active region at the last
// update.
func (b *Binding) Inside() bool {
	return b.inside
}

// Timeline returns the bound timeline, or nil.
func (b *Binding) Timeline() *Timeline {
	return b.timeline
}

// OnStateChange registers fn for state transitions. Returns an unsubscribe
// function.
func (b *Binding) OnStateChange(fn func(TriggerEvent)) func() {
	if b.killed || fn == nil {
		return func() {}
	}
	id := b.nextListenerID
	b.nextListenerID++
	b.listeners[id] = fn
	return func() {
		delete(b.listeners, id)
	}
}

// Kill detaches the binding from its observer and timeline. The timeline
// itself is not cancelled. Killing twice is a no-op.
func (b *Binding) Kill() {
	if b.killed {
		return
	}
	b.killed = true
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
	if b.observer != nil {
		b.observer.remove(b)
		b.observer = nil
	}
	b.listeners = nil
}

func (b *Binding) setState(s TriggerState) {
	if b.state == s {
		return
	}
	b.state = s
	ev := TriggerEvent{Name: b.name, State: s, Direction: b.lastDir}
	for id := 0; id < b.nextListenerID; id++ {
		if fn, ok := b.listeners[id]; ok {
			fn(ev)
		}
	}
}

// onTimelineStatus settles Entering and Exiting when the playhead stops.
func (b *Binding) onTimelineStatus(st Status) {
	if b.killed {
		return
	}
	switch {
	case st == StatusCompleted && b.state == StateEntering:
		b.setState(StateVisible)
	case st == StatusDismissed && b.state == StateExiting:
		b.setState(StateIdle)
	}
}

// update evaluates the trigger against the viewport.
func (b *Binding) update(view Rect, dir Direction) {
	if b.killed || b.trigger == nil {
		return
	}
	if m, ok := b.trigger.(disposable); ok && m.Disposed() {
		return
	}
	box := b.trigger.Bounds()
	startLine := view.Y + b.start*view.Height
	endLine := view.Y + b.end*view.Height
	inside := box.Y <= startLine && box.Bottom() >= endLine

	if inside == b.inside {
		return
	}
	b.inside = inside
	b.lastDir = dir
	if b.onToggle != nil {
		b.onToggle(inside, dir)
	}
	if b.timeline == nil {
		return
	}
	if inside {
		b.enter()
	} else {
		b.exit()
	}
}

func (b *Binding) enter() {
	switch b.state {
	case StateIdle, StateExiting:
		if b.mode == PlayOnce && b.played {
			return
		}
		b.played = true
		b.setState(StateEntering)
		b.timeline.Play()
		if b.timeline.Status() == StatusCompleted {
			b.setState(StateVisible)
		}
	}
}

func (b *Binding) exit() {
	if b.mode != PlayReverseOnExit {
		return
	}
	switch b.state {
	case StateEntering, StateVisible:
		b.setState(StateExiting)
		b.timeline.Reverse()
		if b.timeline.Status() == StatusDismissed {
			b.setState(StateIdle)
		}
	}
}

// ScrollObserver evaluates scroll bindings against the viewport. The host
// calls Update whenever the viewport moves, or once per frame.
type ScrollObserver struct {
	bindings []*Binding
	lastTop  float64
	observed bool
}

// NewScrollObserver creates an observer with no bindings.
func NewScrollObserver() *ScrollObserver {
	return &ScrollObserver{}
}

// Bind registers a binding. Zero thresholds in spec are kept as zero; use
// DefaultStartThreshold and DefaultEndThreshold (or Config) for the usual
// 80%/20% lines. A spec without a timeline yields an inert binding that still
// tracks visibility and fires OnToggle.
func (o *ScrollObserver) Bind(spec BindingSpec) *Binding {
	b := &Binding{
		name:      spec.Name,
		trigger:   spec.Trigger,
		start:     spec.Start,
		end:       spec.End,
		timeline:  spec.Timeline,
		mode:      spec.Mode,
		onToggle:  spec.OnToggle,
		observer:  o,
		listeners: make(map[int]func(TriggerEvent)),
	}
	if b.timeline != nil {
		b.unsub = b.timeline.Player().AddStatusListener(b.onTimelineStatus)
	}
	o.bindings = append(o.bindings, b)
	return b
}

// Len returns the number of live bindings.
func (o *ScrollObserver) Len() int {
	return len(o.bindings)
}

// Bindings returns the live bindings in registration order. The returned
// slice MUST NOT be mutated.
func (o *ScrollObserver) Bindings() []*Binding {
	return o.bindings
}

// Update evaluates every binding against view, a document-space rectangle
// whose Y is the scroll offset and Height the viewport height.
func (o *ScrollObserver) Update(view Rect) {
	dir := DirectionNone
	if o.observed {
		switch {
		case view.Y > o.lastTop:
			dir = DirectionForward
		case view.Y < o.lastTop:
			dir = DirectionBackward
		}
	}
	o.lastTop = view.Y
	o.observed = true

	// Bindings may be killed from callbacks; iterate over a snapshot.
	snapshot := make([]*Binding, len(o.bindings))
	copy(snapshot, o.bindings)
	for _, b := range snapshot {
		b.update(view, dir)
	}
}

func (o *ScrollObserver) remove(b *Binding) {
	for i, x := range o.bindings {
		if x == b {
			copy(o.bindings[i:], o.bindings[i+1:])
			o.bindings[len(o.bindings)-1] = nil
			o.bindings = o.bindings[:len(o.bindings)-1]
			return
		}
	}
}
