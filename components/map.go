package components

import (
	"github.com/automoto/cavewing/assets"
	"github.com/automoto/cavewing/shared/world"
	"github.com/yohamta/donburi"
)

type MapData struct {
	Map     *world.Map
	Layout  *assets.Layout // nil for a fully random map
	Surface world.Surface
	Crashed bool
	Frames  int
}

var Map = donburi.NewComponentType[MapData]()
