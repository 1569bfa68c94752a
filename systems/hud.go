package systems

import (
	"fmt"

	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/components"
	cfg "github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/fonts"
	"github.com/automoto/cavewing/shared/flight"
	"github.com/automoto/cavewing/shared/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudLabelWidth = 44
	hudBarGap     = 5
)

// CreateHUD adds the health and fuel bars for p. The fuel bar disappears once the
// tank is empty.
func CreateHUD(e *ecs.ECS, p *flight.Player) {
	health := hud.NewBar("HP", p.Health, p.MaxHealth, cfg.HUD.SmoothFrames)
	fuel := hud.NewBar("FUEL", p.Fuel, p.MaxFuel, cfg.HUD.SmoothFrames)
	fuel.RemoveWhenEmpty = true

	entry := archetypes.HUD.Spawn(e)
	components.HUD.SetValue(entry, components.HUDData{
		Bars: []components.HUDBar{
			{Bar: health, Color: cfg.RGBA(cfg.HUD.HealthColor)},
			{Bar: fuel, Color: cfg.RGBA(cfg.HUD.FuelColor)},
		},
	})
}

// UpdateHUD samples every bar once per frame.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	for _, b := range components.HUD.Get(entry).Bars {
		b.Update()
	}
}

// DrawHUD renders the bars in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	data := components.HUD.Get(entry)
	face := fonts.Small.Get()

	y := cfg.HUD.Margin
	for _, b := range data.Bars {
		if b.Removed() {
			continue
		}
		x := cfg.HUD.Margin

		text.Draw(screen, b.Label, face, int(x), int(y+cfg.HUD.BarHeight)-2, cfg.RGBA(cfg.HUD.TextColor))
		x += hudLabelWidth

		// Background (dark gray)
		vector.FillRect(screen,
			float32(x), float32(y),
			float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
			cfg.RGBA(cfg.HUD.BgColor), false)

		vector.FillRect(screen,
			float32(x), float32(y),
			float32(cfg.HUD.BarWidth*b.Shown()), float32(cfg.HUD.BarHeight),
			b.Color, false)

		value := fmt.Sprintf("%.0f", b.Value())
		text.Draw(screen, value, face, int(x+cfg.HUD.BarWidth)+hudBarGap, int(y+cfg.HUD.BarHeight)-2, cfg.RGBA(cfg.HUD.TextColor))

		y += cfg.HUD.BarHeight + hudBarGap
	}
}
