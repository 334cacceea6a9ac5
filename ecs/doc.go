// Package ecs provides ECS adapters for segslider's index notifications.
//
// The primary adapter is [NewDonburiDelegate], which publishes every index
// change of a slider into a [Donburi] world as a typed event. Subscribe to
// [IndexChangedEventType] in your ECS systems to receive them.
//
// Usage:
//
//	slider.SetDelegate(ecs.NewDonburiDelegate(world, entity))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
