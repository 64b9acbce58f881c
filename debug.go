package reveal

import (
	"fmt"
	"os"
)

type overlapKey struct {
	target Target
	prop   Prop
}

// debugCheckOverlap warns on stderr when two players are mid-flight on the
// same property of the same target in this tick. Each pair is reported once.
// Only called when the scheduler is in debug mode.
func (s *Scheduler) debugCheckOverlap() {
	owners := make(map[overlapKey]*Player)
	for _, p := range s.players {
		if !p.active {
			continue
		}
		p.anim.eachTween(func(tw *Tween) {
			if !tw.inFlight {
				return
			}
			for _, ch := range tw.channels {
				k := overlapKey{target: tw.Target, prop: ch.prop}
				owner, ok := owners[k]
				if !ok {
					owners[k] = p
					continue
				}
				if owner == p {
					continue
				}
				if s.warned == nil {
					s.warned = make(map[overlapKey]struct{})
				}
				if _, seen := s.warned[k]; seen {
					continue
				}
				s.warned[k] = struct{}{}
				_, _ = fmt.Fprintf(os.Stderr,
					"[reveal] warning: concurrent tweens write %s on %s (frame %d)\n",
					ch.prop, targetName(tw.Target), s.frame)
			}
		})
	}
}

// debugLogStatus prints a player status change. Only called in debug mode.
func (s *Scheduler) debugLogStatus(p *Player, status Status) {
	_, _ = fmt.Fprintf(os.Stderr, "[reveal] frame %d: %T %s at %.3fs\n",
		s.frame, p.anim, status, p.pos)
}

func targetName(t Target) string {
	if el, ok := t.(*Element); ok {
		if el.Name != "" {
			return fmt.Sprintf("element %q", el.Name)
		}
		return fmt.Sprintf("element %d", el.ID)
	}
	return fmt.Sprintf("%T", t)
}
