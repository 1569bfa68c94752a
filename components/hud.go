package components

import (
	"image/color"

	"github.com/automoto/cavewing/shared/hud"
	"github.com/yohamta/donburi"
)

type HUDBar struct {
	*hud.Bar
	Color color.RGBA
}

// HUDData holds the bars drawn in the top-left corner, top to bottom.
type HUDData struct {
	Bars []HUDBar
}

var HUD = donburi.NewComponentType[HUDData]()
