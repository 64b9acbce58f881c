package reveal

// EventType identifies a kind of pointer event delivered to an Element.
type EventType uint8

const (
	EventPointerEnter EventType = iota // fires when the pointer enters an element's bounds
	EventPointerLeave                  // fires when the pointer leaves an element's bounds
	EventPointerClick                  // fires when the element is clicked
)

// PointerContext carries pointer event data. X and Y are document-space
// coordinates.
type PointerContext struct {
	Element *Element
	X, Y    float64
}

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	enter  []pointerHandler
	leave  []pointerHandler
	click  []pointerHandler
	nextID uint32
}

// CallbackHandle allows removing a registered pointer callback. It satisfies
// Remover so a Scope can track it.
type CallbackHandle struct {
	id    uint32
	el    *Element
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is a
// no-op.
func (h CallbackHandle) Remove() {
	if h.el == nil {
		return
	}
	reg := &h.el.handlers
	switch h.event {
	case EventPointerEnter:
		reg.enter = removePointerHandler(reg.enter, h.id)
	case EventPointerLeave:
		reg.leave = removePointerHandler(reg.leave, h.id)
	case EventPointerClick:
		reg.click = removePointerHandler(reg.click, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers fn for the given pointer event on e.
func (e *Element) On(event EventType, fn func(PointerContext)) CallbackHandle {
	if e.disposed || fn == nil {
		return CallbackHandle{}
	}
	e.handlers.nextID++
	id := e.handlers.nextID
	h := pointerHandler{id: id, fn: fn}
	switch event {
	case EventPointerEnter:
		e.handlers.enter = append(e.handlers.enter, h)
	case EventPointerLeave:
		e.handlers.leave = append(e.handlers.leave, h)
	case EventPointerClick:
		e.handlers.click = append(e.handlers.click, h)
	default:
		return CallbackHandle{}
	}
	return CallbackHandle{id: id, el: e, event: event}
}

func (e *Element) fire(event EventType, x, y float64) {
	if e.disposed {
		return
	}
	ctx := PointerContext{Element: e, X: x, Y: y}
	var hs []pointerHandler
	var direct func(PointerContext)
	switch event {
	case EventPointerEnter:
		hs, direct = e.handlers.enter, e.OnPointerEnter
	case EventPointerLeave:
		hs, direct = e.handlers.leave, e.OnPointerLeave
	case EventPointerClick:
		hs = e.handlers.click
	}
	// Handlers may remove themselves; iterate over a snapshot.
	snapshot := make([]pointerHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(ctx)
	}
	if direct != nil {
		direct(ctx)
	}
}

// HitTest returns the topmost interactable, rendered element under the
// document-space point (x, y), or nil. Later siblings and higher ZIndex win.
// Hit areas are the drawn quads: accumulated translation, scale and rotation
// all apply.
func HitTest(root *Element, x, y float64) *Element {
	if root == nil || root.disposed || !root.Visible {
		return nil
	}
	var best *Element
	bestZ := 0
	hitTestWalk(root, x, y, &best, &bestZ)
	return best
}

func hitTestWalk(n *Element, x, y float64, best **Element, bestZ *int) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Interactable && n.Rendered() {
		if quadContains(n.Corners(), x, y) && (*best == nil || n.ZIndex >= *bestZ) {
			*best = n
			*bestZ = n.ZIndex
		}
	}
	for _, c := range n.children {
		hitTestWalk(c, x, y, best, bestZ)
	}
}

// PointerTracker turns raw pointer positions into enter/leave events on the
// element tree rooted at Root.
type PointerTracker struct {
	Root  *Element
	hover *Element
}

// Hovered returns the element currently under the pointer, or nil.
func (t *PointerTracker) Hovered() *Element {
	return t.hover
}

// Move updates the pointer position and fires leave on the previously hovered
// element and enter on the new one when they differ.
func (t *PointerTracker) Move(x, y float64) {
	target := HitTest(t.Root, x, y)
	if t.hover != nil && t.hover.disposed {
		t.hover = nil
	}
	if target == t.hover {
		return
	}
	prev := t.hover
	t.hover = target
	if prev != nil {
		prev.fire(EventPointerLeave, x, y)
	}
	if target != nil {
		target.fire(EventPointerEnter, x, y)
	}
}

// Click fires a click on the topmost interactable element under (x, y) and
// returns it, or nil when nothing was hit.
func (t *PointerTracker) Click(x, y float64) *Element {
	target := HitTest(t.Root, x, y)
	if target != nil {
		target.fire(EventPointerClick, x, y)
	}
	return target
}

// Leave fires leave on the hovered element, as when the pointer exits the
// window.
func (t *PointerTracker) Leave() {
	if t.hover == nil {
		return
	}
	prev := t.hover
	t.hover = nil
	prev.fire(EventPointerLeave, 0, 0)
}
