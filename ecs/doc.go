// Package ecs provides ECS adapters for animated.
//
// The adapters bridge the animation graph into a [Donburi] world as typed
// events. [NewProps] creates a props node whose flushes publish a
// [PropsUpdated] event for an entity, and [OnEnd] returns an end callback
// publishing [AnimationEnded]. Subscribe to [PropsUpdatedType] and
// [AnimationEndedType] in your ECS systems to receive them.
//
// Usage:
//
//	ecs.NewProps(world, entity, map[string]any{"x": x, "alpha": alpha})
//	animated.Timing(x, cfg).Start(ecs.OnEnd(world, entity))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
