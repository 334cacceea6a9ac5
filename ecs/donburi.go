package ecs

import (
	"github.com/phanxgames/segslider"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// IndexChanged is published once per actual index change of a slider.
type IndexChanged struct {
	Slider *segslider.Slider
	Entity donburi.Entity // entity the slider belongs to, donburi.Null if none
	Index  int
}

// IndexChangedEventType is the Donburi event type for slider index changes.
var IndexChangedEventType = events.NewEventType[IndexChanged]()

type donburiDelegate struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiDelegate creates a slider Delegate backed by a Donburi world.
// Index changes are published to IndexChangedEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiDelegate(world donburi.World, entity donburi.Entity) segslider.Delegate {
	return &donburiDelegate{world: world, entity: entity}
}

func (d *donburiDelegate) IndexChanged(s *segslider.Slider, index int) {
	IndexChangedEventType.Publish(d.world, IndexChanged{Slider: s, Entity: d.entity, Index: index})
}
