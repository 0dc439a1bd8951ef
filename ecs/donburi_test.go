package ecs

import (
	"testing"

	"github.com/phanxgames/stamp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []stamp.WidgetEvent
	WidgetEventType.Subscribe(world, func(w donburi.World, e stamp.WidgetEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(stamp.WidgetEvent{
		Type:   stamp.EventMove,
		Widget: "time",
		State:  stamp.StateDragActive,
		Geometry: stamp.Geometry{
			Position: stamp.Vec2{X: 100, Y: 200},
		},
	})
	sink.EmitEvent(stamp.WidgetEvent{
		Type:    stamp.EventContentEdit,
		Widget:  "date",
		Content: "12:00",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	WidgetEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != stamp.EventMove || e0.Widget != "time" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Geometry.Position.X != 100 || e0.Geometry.Position.Y != 200 {
		t.Errorf("event 0 position: %+v", e0.Geometry.Position)
	}
	e1 := received[1]
	if e1.Type != stamp.EventContentEdit || e1.Content != "12:00" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink stamp.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	WidgetEventType.Subscribe(world, func(w donburi.World, e stamp.WidgetEvent) {
		count1++
	})
	WidgetEventType.Subscribe(world, func(w donburi.World, e stamp.WidgetEvent) {
		count2++
	})

	sink.EmitEvent(stamp.WidgetEvent{Type: stamp.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_HostDrag(t *testing.T) {
	world := donburi.NewWorld()
	host := stamp.NewHost()
	host.SetEventSink(NewDonburiSink(world))
	w := host.AddWidget(stamp.WidgetConfig{
		Name:     "label",
		Position: stamp.Vec2{X: 10, Y: 10},
	})

	var types []stamp.EventType
	WidgetEventType.Subscribe(world, func(_ donburi.World, e stamp.WidgetEvent) {
		types = append(types, e.Type)
	})

	host.HandlePointer(stamp.PointerEvent{Phase: stamp.PhaseDown, X: 20, Y: 20})
	host.HandlePointer(stamp.PointerEvent{Phase: stamp.PhaseMove, X: 40, Y: 20})
	host.HandlePointer(stamp.PointerEvent{Phase: stamp.PhaseUp, X: 40, Y: 20})
	events.ProcessAllEvents(world)

	want := []stamp.EventType{
		stamp.EventSessionStart, stamp.EventDragStart, stamp.EventMove, stamp.EventDragEnd,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if got := w.Position(); got.X != 30 || got.Y != 10 {
		t.Errorf("position = %+v, want (30, 10)", got)
	}
}
