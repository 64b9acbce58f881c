// Package ecs provides ECS adapters for reveal.
//
// [Target] exposes an entity's [Animatable] component as a reveal.Target, so
// tweens, timelines and scroll bindings can drive entities directly.
// [PublishTriggers] bridges a scroll binding's state changes into a [Donburi]
// world as typed events. Subscribe to [TriggerEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	card := ecs.NewAnimatable(world, reveal.Rect{Y: 900, Width: 360, Height: 400})
//	target := ecs.Target(world, card)
//	tl := reveal.MustBuildTimeline(sched, reveal.Entry{Anim: reveal.TweenTo(target, reveal.Shown(), 0.8, nil)})
//	b := observer.Bind(reveal.BindingSpec{Name: "card", Trigger: target, Start: 0.8, End: 0.2, Timeline: tl})
//	ecs.PublishTriggers(world, b)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
