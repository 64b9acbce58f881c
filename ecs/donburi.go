package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimatableData holds the animatable properties of an entity and the
// document-space box scroll triggers measure against.
type AnimatableData struct {
	Opacity   float64
	X, Y      float64
	Scale     float64
	Rotation  float64
	RotationY float64
	Width     float64
	Bounds    reveal.Rect
}

// Animatable is the component type backing entity targets.
var Animatable = donburi.NewComponentType[AnimatableData]()

// TriggerEventType is the Donburi event type for scroll binding state changes.
// Subscribe to it in your ECS systems to react to sections entering and
// leaving the viewport.
var TriggerEventType = events.NewEventType[reveal.TriggerEvent]()

// NewAnimatable creates an entity with an Animatable component in its fully
// visible, un-transformed state.
func NewAnimatable(world donburi.World, bounds reveal.Rect) donburi.Entity {
	e := world.Create(Animatable)
	Animatable.SetValue(world.Entry(e), AnimatableData{
		Opacity: 1,
		Scale:   1,
		Width:   bounds.Width,
		Bounds:  bounds,
	})
	return e
}

// EntityTarget exposes an entity's Animatable component as a reveal.Target
// and a trigger bound. An entity that has been removed from the world is a
// missing target: tweens skip it and Set is a no-op.
type EntityTarget struct {
	world  donburi.World
	entity donburi.Entity
}

// Target returns the reveal.Target for entity.
func Target(world donburi.World, entity donburi.Entity) *EntityTarget {
	return &EntityTarget{world: world, entity: entity}
}

// Entity returns the wrapped entity.
func (t *EntityTarget) Entity() donburi.Entity {
	return t.entity
}

func (t *EntityTarget) data() *AnimatableData {
	if !t.world.Valid(t.entity) {
		return nil
	}
	entry := t.world.Entry(t.entity)
	if !entry.HasComponent(Animatable) {
		return nil
	}
	return Animatable.Get(entry)
}

// Disposed reports whether the entity is gone or lacks the component.
func (t *EntityTarget) Disposed() bool {
	return t.data() == nil
}

// Prop implements reveal.Target.
func (t *EntityTarget) Prop(p reveal.Prop) (float64, bool) {
	d := t.data()
	if d == nil {
		return 0, false
	}
	switch p {
	case reveal.Opacity:
		return d.Opacity, true
	case reveal.X:
		return d.X, true
	case reveal.Y:
		return d.Y, true
	case reveal.Scale:
		return d.Scale, true
	case reveal.Rotation:
		return d.Rotation, true
	case reveal.RotationY:
		return d.RotationY, true
	case reveal.Width:
		return d.Width, true
	}
	return 0, false
}

// SetProp implements reveal.Target. Opacity is clamped to [0, 1].
func (t *EntityTarget) SetProp(p reveal.Prop, v float64) {
	d := t.data()
	if d == nil {
		return
	}
	switch p {
	case reveal.Opacity:
		d.Opacity = min(max(v, 0), 1)
	case reveal.X:
		d.X = v
	case reveal.Y:
		d.Y = v
	case reveal.Scale:
		d.Scale = v
	case reveal.Rotation:
		d.Rotation = v
	case reveal.RotationY:
		d.RotationY = v
	case reveal.Width:
		d.Width = v
	}
}

// Bounds implements reveal.Bounded.
func (t *EntityTarget) Bounds() reveal.Rect {
	d := t.data()
	if d == nil {
		return reveal.Rect{}
	}
	return d.Bounds
}

// PublishTriggers forwards every state change of b to TriggerEventType in
// world. Events are queued until ProcessEvents. Returns an unsubscribe
// function, which a Scope can track through reveal.RemoverFunc.
func PublishTriggers(world donburi.World, b *reveal.Binding) func() {
	return b.OnStateChange(func(e reveal.TriggerEvent) {
		TriggerEventType.Publish(world, e)
	})
}
