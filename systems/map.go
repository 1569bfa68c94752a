package systems

import (
	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/assets"
	"github.com/automoto/cavewing/components"
	"github.com/automoto/cavewing/shared/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMap adds the map entity. layout may be nil.
func CreateMap(e *ecs.ECS, m *world.Map, layout *assets.Layout) *donburi.Entry {
	entry := archetypes.Map.Spawn(e)
	components.Map.SetValue(entry, components.MapData{
		Map:     m,
		Layout:  layout,
		Surface: NewEbitenSurface(),
	})
	return entry
}

// GetMap returns the map component, or nil before CreateMap.
func GetMap(e *ecs.ECS) *components.MapData {
	entry, ok := components.Map.First(e.World)
	if !ok {
		return nil
	}
	return components.Map.Get(entry)
}

// UpdateMap runs one map frame: block timers, the craft, then the collision check.
func UpdateMap(e *ecs.ECS) {
	data := GetMap(e)
	if data == nil || data.Map == nil || data.Crashed {
		return
	}
	data.Map.Tick()
	data.Frames++
	data.Crashed = data.Map.Crashed()
}

// DrawMap clears the viewport and draws the terrain, the craft and the overlap visual.
func DrawMap(e *ecs.ECS, screen *ebiten.Image) {
	data := GetMap(e)
	if data == nil || data.Map == nil {
		return
	}
	surface, ok := data.Surface.(*EbitenSurface)
	if !ok {
		return
	}
	surface.Target(screen)
	data.Map.Draw(surface)
}

// ReleaseMap frees the map's cached GPU images.
func ReleaseMap(e *ecs.ECS) {
	data := GetMap(e)
	if data == nil {
		return
	}
	if surface, ok := data.Surface.(*EbitenSurface); ok {
		surface.Release()
	}
	if data.Map != nil {
		data.Map.ReleaseInput()
	}
}
