package ebitenhost

import "github.com/tanema/gween/ease"

type syntheticKind uint8

const (
	injectMove syntheticKind = iota
	injectLeave
	injectScroll
	injectScrollTo
	injectSkip
	injectClick
)

// syntheticEvent is one injected input event. Pointer coordinates are screen
// space, exactly like real cursor input.
type syntheticEvent struct {
	kind     syntheticKind
	x, y     float64
	dy       float64
	duration float64
}

// InjectMove queues a pointer move to the given screen coordinates.
func (p *Page) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (p *Page) InjectLeave() {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectScroll queues a scroll of dy pixels spread evenly over frames frames
// (minimum 1), like a burst of wheel notches.
func (p *Page) InjectScroll(dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := dy / float64(frames)
	for i := 0; i < frames; i++ {
		p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScroll, dy: step})
	}
}

// InjectScrollTo queues a smooth scroll to document offset y.
func (p *Page) InjectScrollTo(y, duration float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScrollTo, y: y, duration: duration})
}

// InjectClick queues a move to the given screen coordinates followed by a
// left click there.
func (p *Page) InjectClick(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectClick, x: x, y: y})
}

// InjectSkip queues the skip-loading key.
func (p *Page) InjectSkip() {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectSkip})
}

// processInjected pops one event from the queue and applies it. Returns true
// if an event was consumed; real input is skipped for that frame. Scroll and
// pointer events are gated on content visibility like real input.
func (p *Page) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		p.movePointer(evt.x, evt.y)
	case injectLeave:
		p.leavePointer()
	case injectClick:
		p.click(evt.x, evt.y)
	case injectScroll:
		if p.contentVisible {
			p.View.ScrollBy(evt.dy)
		}
	case injectScrollTo:
		if p.contentVisible {
			p.View.ScrollTo(evt.y, float32(evt.duration), ease.InOutCubic)
		}
	case injectSkip:
		if p.onSkip != nil {
			p.onSkip()
		}
	}
	return true
}
