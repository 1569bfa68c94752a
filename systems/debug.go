package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/fonts"
	"github.com/automoto/cavewing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 16

var (
	debugBlockColor   = color.RGBA{100, 100, 100, 255} // Grey
	debugPlayerColor  = color.RGBA{0, 0, 255, 255}     // Blue
	debugOverlapColor = config.Yellow
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	data := GetMap(ecs)
	if data == nil || data.Map == nil {
		return
	}
	space := data.Map.Space()

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvBlock) {
			c = debugBlockColor
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = debugPlayerColor
		}
		r := space.Rect(obj)
		strokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c)
	}

	if r, ok := data.Map.Overlay(); ok {
		strokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), debugOverlapColor)
	}

	p := data.Map.Player()
	if p == nil {
		return
	}
	pos, vel, acc := p.Position(), p.Velocity(), p.Acceleration()
	lines := []string{
		fmt.Sprintf("phase %s  frame %d  fps %.0f", p.Phase().Kind, data.Frames, ebiten.ActualTPS()),
		fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f", pos.X, pos.Y, vel.X, vel.Y),
		fmt.Sprintf("acc %.3f  grav %.4f  angle %.0f", acc.Length(), p.GravEffect(), p.Angle()),
		fmt.Sprintf("dir %d,%d  impact %.2f", p.DirectionX(), p.DirectionY(), p.LastImpact()),
	}
	face := fonts.Regular.Get()
	y := screen.Bounds().Dy() - debugLineHeight*len(lines)
	vector.FillRect(screen, 4, float32(y-debugLineHeight), 380, float32(debugLineHeight*len(lines)+6), config.BlackOverlay, false)
	for _, line := range lines {
		text.Draw(screen, line, face, 10, y, config.White)
		y += debugLineHeight
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.RGBA) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
