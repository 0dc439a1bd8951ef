package ecs

import (
	"github.com/phanxgames/stamp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for stamp widget events.
// Subscribe to this in your ECS systems to receive drag, resize and edit
// events.
var WidgetEventType = events.NewEventType[stamp.WidgetEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Widget events are published to WidgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) stamp.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event stamp.WidgetEvent) {
	WidgetEventType.Publish(s.world, event)
}
