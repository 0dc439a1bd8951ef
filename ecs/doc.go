// Package ecs provides ECS adapters for stamp's widget events.
//
// The primary adapter is [NewDonburiSink], which bridges widget events
// (session start, drag, resize, click, content and font changes) into a
// [Donburi] world as typed events. Subscribe to [WidgetEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	host.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
