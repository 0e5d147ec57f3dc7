package ecs

import (
	"github.com/phanxgames/animated"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PropsUpdated is published each time a props node created by NewProps is
// flushed. Values holds the resolved props.
type PropsUpdated struct {
	Entity donburi.Entity
	Values map[string]any
}

// AnimationEnded is published by callbacks returned from OnEnd.
type AnimationEnded struct {
	Entity   donburi.Entity
	Finished bool
}

// PropsUpdatedType is the Donburi event type for props flushes.
var PropsUpdatedType = events.NewEventType[PropsUpdated]()

// AnimationEndedType is the Donburi event type for animation ends.
var AnimationEndedType = events.NewEventType[AnimationEnded]()

// NewProps creates an attached props node whose update callback publishes a
// PropsUpdated event for entity. Events are queued until ProcessEvents.
func NewProps(world donburi.World, entity donburi.Entity, props map[string]any) *animated.Props {
	var p *animated.Props
	p = animated.NewProps(props, func() {
		PropsUpdatedType.Publish(world, PropsUpdated{
			Entity: entity,
			Values: p.Value().(map[string]any),
		})
	})
	return p
}

// OnEnd returns an end callback that publishes an AnimationEnded event for
// entity.
func OnEnd(world donburi.World, entity donburi.Entity) animated.EndCallback {
	return func(r animated.EndResult) {
		AnimationEndedType.Publish(world, AnimationEnded{Entity: entity, Finished: r.Finished})
	}
}
