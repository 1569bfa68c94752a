package archetypes

import (
	"github.com/automoto/cavewing/components"
	"github.com/automoto/cavewing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
	LayerDebug
)

var (
	Map = newArchetype(
		tags.Map,
		components.Map,
	)
	HUD = newArchetype(
		tags.HUD,
		components.HUD,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
