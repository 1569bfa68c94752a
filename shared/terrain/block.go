// Package terrain builds the static blocks a map is made of: edge outlines, obstacles and
// the jagged outlines around obstacles.
package terrain

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
	"github.com/automoto/cavewing/shared/mask"
)

// ErrEmptyPalette is returned when a block is built without any colour to pick from.
var ErrEmptyPalette = errors.New("terrain: empty palette")

// Block is an axis-aligned terrain tile. It never moves; only its active image changes
// while highlighted.
type Block struct {
	rect  image.Rectangle
	color color.RGBA
	mass  float64

	main     *image.RGBA
	mainMask *mask.Mask
	alt      *image.RGBA
	altMask  *mask.Mask

	altRemaining int
	altDuration  int
}

// NewBlock renders a block filling r with a colour picked from palette.
func NewBlock(r image.Rectangle, palette []color.RGBA, cfg config.BlockConfig, ctx *gamectx.Context) (*Block, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	fill := gamectx.Pick(ctx.Rand, palette)
	fill.A = cfg.Alpha

	b := &Block{
		rect:  r.Canon(),
		color: fill,
		mass:  cfg.Mass,
	}
	border := config.RGBA(cfg.BorderColor)

	b.main = renderTile(b.rect.Dx(), b.rect.Dy(), fill, border, cfg.BorderWidth)
	b.mainMask = mask.FromImage(b.main, 0)

	if cfg.Alt != nil {
		b.alt = renderTile(b.rect.Dx(), b.rect.Dy(), config.RGBA(cfg.Alt.Color), border, cfg.BorderWidth)
		b.altMask = mask.FromImage(b.alt, 0)
		b.altDuration = max(gamemath.FramesMS(cfg.Alt.DurationMS, ctx.FPS), 1)
	}
	return b, nil
}

// renderTile fills a w*h image and paints a border of the given width inside its edge.
// Translucent colours keep their alpha so the mask sees the key.
func renderTile(w, h int, fill, border color.RGBA, borderWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(premultiply(fill)), image.Point{}, draw.Src)
	if borderWidth <= 0 {
		return img
	}
	src := image.NewUniform(premultiply(border))
	bw := min(borderWidth, w, h)
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, w, bw),
		image.Rect(0, h-bw, w, h),
		image.Rect(0, 0, bw, h),
		image.Rect(w-bw, 0, w, h),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
	return img
}

// premultiply converts straight alpha to the premultiplied form image.RGBA stores.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func (b *Block) Rect() image.Rectangle {
	return b.rect
}

// Color is the fill colour picked at construction, with the alpha key applied.
func (b *Block) Color() color.RGBA {
	return b.color
}

func (b *Block) Mass() float64 {
	return b.mass
}

// Image returns the active image: the highlight while it is running, the main image otherwise.
func (b *Block) Image() *image.RGBA {
	if b.altRemaining > 0 {
		return b.alt
	}
	return b.main
}

// Mask returns the mask matching Image.
func (b *Block) Mask() *mask.Mask {
	if b.altRemaining > 0 {
		return b.altMask
	}
	return b.mainMask
}

// Highlighted reports whether the highlight image is active.
func (b *Block) Highlighted() bool {
	return b.altRemaining > 0
}

// AltFramesLeft returns the number of ticks until the highlight ends.
func (b *Block) AltFramesLeft() int {
	return b.altRemaining
}

// AltDuration returns the highlight length in frames, or 0 for blocks without one.
func (b *Block) AltDuration() int {
	return b.altDuration
}

// Highlight switches to the highlight image for its configured duration. Blocks without
// a highlight ignore it.
func (b *Block) Highlight() {
	if b.alt == nil {
		return
	}
	b.altRemaining = b.altDuration
}

// Tick advances the highlight countdown by one frame.
func (b *Block) Tick() {
	if b.altRemaining > 0 {
		b.altRemaining--
	}
}
