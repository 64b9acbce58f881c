package reveal

import "github.com/tanema/gween/ease"

// Animation is anything a Timeline can schedule: a *Tween, a *Group or a
// nested *Timeline. Animations are rendered at a local time by whoever owns
// them; they never advance on their own.
type Animation interface {
	// TotalDuration is the length in seconds, including delays and repeats.
	TotalDuration() float64

	render(t float64)
	eachTween(fn func(*Tween))
	kill()
}

// Group runs several animations in parallel from the same start time. Its
// duration is the longest member's. An empty group is a zero-duration no-op.
type Group struct {
	members []Animation
}

// NewGroup creates a group over the given animations. Nil members are dropped.
func NewGroup(members ...Animation) *Group {
	g := &Group{members: make([]Animation, 0, len(members))}
	for _, m := range members {
		if m != nil {
			g.members = append(g.members, m)
		}
	}
	return g
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// TotalDuration implements Animation.
func (g *Group) TotalDuration() float64 {
	var d float64
	for _, m := range g.members {
		if md := m.TotalDuration(); md > d {
			d = md
		}
	}
	return d
}

func (g *Group) render(t float64) {
	for _, m := range g.members {
		m.render(t)
	}
}

func (g *Group) eachTween(fn func(*Tween)) {
	for _, m := range g.members {
		m.eachTween(fn)
	}
}

func (g *Group) kill() {
	for _, m := range g.members {
		m.kill()
	}
}

// StaggerSpec describes one animation shared by a collection of targets, with
// each instance shifted by Each seconds.
type StaggerSpec struct {
	From     Props // optional shared start values
	To       Props
	By       Props
	Duration float64
	Ease     ease.TweenFunc
	Each     float64 // per-instance delay in seconds
	Reverse  bool    // last target starts first
}

// Expand produces one tween per target. Instance i gets delay i × Each, or
// (n-1-i) × Each when Reverse is set. An empty target list yields an empty,
// non-nil slice.
func Expand(targets []Target, spec StaggerSpec) []*Tween {
	n := len(targets)
	out := make([]*Tween, 0, n)
	for i, t := range targets {
		slot := i
		if spec.Reverse {
			slot = n - 1 - i
		}
		out = append(out, &Tween{
			Target:   t,
			From:     spec.From.Clone(),
			To:       spec.To.Clone(),
			By:       spec.By.Clone(),
			Duration: spec.Duration,
			Ease:     spec.Ease,
			Delay:    float64(slot) * spec.Each,
		})
	}
	return out
}

// Stagger expands spec over targets and wraps the tweens in a Group ready to
// be placed in a Timeline.
func Stagger(targets []Target, spec StaggerSpec) *Group {
	tweens := Expand(targets, spec)
	members := make([]Animation, len(tweens))
	for i, tw := range tweens {
		members[i] = tw
	}
	return NewGroup(members...)
}
