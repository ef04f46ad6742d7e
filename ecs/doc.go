// Package ecs provides ECS adapters for the faros event stream.
//
// The primary adapter is [NewDonburiSink], which bridges faros gestures
// (taps, swipes, pinches, keys) and game events (scene changes, marker
// reveals) into a [Donburi] world as typed events. Subscribe to [EventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
