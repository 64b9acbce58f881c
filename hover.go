package reveal

import "github.com/tanema/gween/ease"

// HoverSpec is one row of the hover binding table: which target moves, the
// props it moves to on pointer enter and back to on pointer leave.
//
// Hover tweens run alongside entrance timelines. Keep their properties apart:
// either animate properties the entrance never touches, or point Target at an
// inner wrapper while the entrance animates the outer element. Source, when
// set, is the element whose pointer events drive the binding; it defaults to
// Target when Target is an *Element.
type HoverSpec struct {
	Target   Target
	Source   *Element
	Enter    Props
	Leave    Props
	Duration float64
	Ease     ease.TweenFunc
}

// HoverController runs hover micro-interactions from a binding table. The
// latest pointer intent always wins: a new enter or leave cancels whatever
// hover tween is still running on the target and starts from the current
// values, so nothing queues.
type HoverController struct {
	sched    *Scheduler
	bindings []*HoverBinding
}

// NewHoverController creates a controller running tweens on s.
func NewHoverController(s *Scheduler) *HoverController {
	return &HoverController{sched: s}
}

// HoverBinding is a live row of the binding table.
type HoverBinding struct {
	spec    HoverSpec
	ctrl    *HoverController
	active  *Tween
	hovered bool
	handles []CallbackHandle
	removed bool
}

// Bind adds a binding. If the spec has a source element (explicit, or the
// target itself), pointer enter/leave listeners are registered on it.
func (c *HoverController) Bind(spec HoverSpec) *HoverBinding {
	b := &HoverBinding{spec: spec, ctrl: c}
	src := spec.Source
	if src == nil {
		if el, ok := spec.Target.(*Element); ok {
			src = el
		}
	}
	if src != nil {
		src.Interactable = true
		b.handles = append(b.handles,
			src.On(EventPointerEnter, func(PointerContext) { b.Enter() }),
			src.On(EventPointerLeave, func(PointerContext) { b.Leave() }),
		)
	}
	c.bindings = append(c.bindings, b)
	return b
}

// BindAll binds the same enter/leave props to every target, as for a grid of
// cards.
func (c *HoverController) BindAll(targets []Target, enter, leave Props, duration float64, fn ease.TweenFunc) []*HoverBinding {
	out := make([]*HoverBinding, 0, len(targets))
	for _, t := range targets {
		out = append(out, c.Bind(HoverSpec{
			Target:   t,
			Enter:    enter,
			Leave:    leave,
			Duration: duration,
			Ease:     fn,
		}))
	}
	return out
}

// PointerEnter dispatches an enter event to every binding on target. For hosts
// that deliver pointer events themselves rather than through Element.
func (c *HoverController) PointerEnter(target Target) {
	for _, b := range c.snapshot() {
		if b.spec.Target == target {
			b.Enter()
		}
	}
}

// PointerLeave dispatches a leave event to every binding on target.
func (c *HoverController) PointerLeave(target Target) {
	for _, b := range c.snapshot() {
		if b.spec.Target == target {
			b.Leave()
		}
	}
}

// Len returns the number of live bindings.
func (c *HoverController) Len() int {
	return len(c.bindings)
}

func (c *HoverController) snapshot() []*HoverBinding {
	out := make([]*HoverBinding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// Hovered reports whether the last event was an enter.
func (b *HoverBinding) Hovered() bool {
	return b.hovered
}

// Active returns the running hover tween, or nil.
func (b *HoverBinding) Active() *Tween {
	if b.active != nil && b.active.Done() {
		return nil
	}
	return b.active
}

// Enter starts the tween toward the enter props.
func (b *HoverBinding) Enter() {
	b.hovered = true
	b.retarget(b.spec.Enter)
}

// Leave starts the tween toward the leave props.
func (b *HoverBinding) Leave() {
	b.hovered = false
	b.retarget(b.spec.Leave)
}

func (b *HoverBinding) retarget(to Props) {
	if b.removed || missing(b.spec.Target) {
		return
	}
	if b.active != nil {
		b.active.Cancel()
		b.active = nil
	}
	b.active = b.ctrl.sched.Run(&Tween{
		Target:   b.spec.Target,
		To:       to,
		Duration: b.spec.Duration,
		Ease:     b.spec.Ease,
	})
}

// Remove cancels any running hover tween and unregisters the binding and its
// pointer listeners. Satisfies Remover. Removing twice is a no-op.
func (b *HoverBinding) Remove() {
	if b.removed {
		return
	}
	b.removed = true
	if b.active != nil {
		b.active.Cancel()
		b.active = nil
	}
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
	bs := b.ctrl.bindings
	for i, x := range bs {
		if x == b {
			copy(bs[i:], bs[i+1:])
			bs[len(bs)-1] = nil
			b.ctrl.bindings = bs[:len(bs)-1]
			break
		}
	}
}
