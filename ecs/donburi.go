// Package ecs provides ECS adapters for faros.
package ecs

import (
	"github.com/phanxgames/faros"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for faros gesture and game events.
// Subscribe to this in your ECS systems to receive taps, swipes, pinches,
// keys, scene changes and marker reveals.
var EventType = events.NewEventType[faros.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to EventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) faros.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event faros.Event) {
	EventType.Publish(s.world, event)
}
