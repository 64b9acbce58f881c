package reveal

// Remover is a raw listener registration that can be removed, such as a
// CallbackHandle.
type Remover interface {
	Remove()
}

// RemoverFunc adapts an unsubscribe function to Remover.
type RemoverFunc func()

// Remove calls f.
func (f RemoverFunc) Remove() { f() }

type baseline struct {
	target Target
	props  Props
}

// Scope groups every animation, binding and listener a component creates so
// they can be torn down together when it unmounts. Each component owns its
// own Scope; there is no global registry.
//
// Revert cancels all tracked animations, removes bindings and listeners, and
// restores every tracked target to the property values recorded when the
// scope first saw it. A component that mounts, animates and unmounts leaves
// no residue for the next mount of the same target.
type Scope struct {
	anims     []Animation
	bindings  []*Binding
	listeners []Remover
	baselines []baseline
	seen      map[Target]struct{}
	reverted  bool
}

// NewScope creates a scope and records the current values of targets as their
// baselines.
func NewScope(targets ...Target) *Scope {
	s := &Scope{seen: make(map[Target]struct{})}
	s.AddTargets(targets...)
	return s
}

// AddTargets records baselines for targets the scope has not seen yet.
// Targets already seen keep their first baseline.
func (s *Scope) AddTargets(targets ...Target) {
	if s.reverted {
		return
	}
	for _, t := range targets {
		if missing(t) {
			continue
		}
		if _, ok := s.seen[t]; ok {
			continue
		}
		s.seen[t] = struct{}{}
		s.baselines = append(s.baselines, baseline{target: t, props: Capture(t)})
	}
}

// Track adds animations to the scope and records baselines for their targets.
// Track animations before they first render so the baselines are the
// pre-animation values. Tracking into a reverted scope kills the animation
// immediately.
func (s *Scope) Track(anims ...Animation) {
	for _, a := range anims {
		if a == nil {
			continue
		}
		if s.reverted {
			a.kill()
			continue
		}
		a.eachTween(func(tw *Tween) {
			s.AddTargets(tw.Target)
		})
		s.anims = append(s.anims, a)
	}
}

// TrackBinding adds a scroll binding to the scope.
func (s *Scope) TrackBinding(b *Binding) {
	if b == nil {
		return
	}
	if s.reverted {
		b.Kill()
		return
	}
	if b.timeline != nil {
		b.timeline.eachTween(func(tw *Tween) {
			s.AddTargets(tw.Target)
		})
	}
	s.bindings = append(s.bindings, b)
}

// TrackListener adds a raw listener registration to the scope.
func (s *Scope) TrackListener(r Remover) {
	if r == nil {
		return
	}
	if s.reverted {
		r.Remove()
		return
	}
	s.listeners = append(s.listeners, r)
}

// Reverted reports whether Revert has run.
func (s *Scope) Reverted() bool {
	return s.reverted
}

// Revert tears the scope down, in order: cancel every animation (no further
// frame writes), remove bindings and listeners, then restore baselines.
// Calling Revert again is a no-op.
func (s *Scope) Revert() {
	if s.reverted {
		return
	}
	s.reverted = true

	for _, a := range s.anims {
		a.kill()
	}
	for _, b := range s.bindings {
		b.Kill()
	}
	for _, r := range s.listeners {
		r.Remove()
	}
	for _, bl := range s.baselines {
		Set(bl.target, bl.props)
	}

	s.anims = nil
	s.bindings = nil
	s.listeners = nil
	s.baselines = nil
	s.seen = nil
}
