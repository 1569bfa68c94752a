package world

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the raster target the map draws into.
type Surface interface {
	Bounds() image.Rectangle
	// Fill paints r, clipped to the surface, with c.
	Fill(c color.RGBA, r image.Rectangle)
	// Blit draws an image whose pixels never change after the first blit.
	Blit(src *image.RGBA, at image.Point)
	// BlitVolatile draws an image that is rewritten between frames.
	BlitVolatile(src *image.RGBA, at image.Point)
}

// ImageSurface draws into an in-memory RGBA image.
type ImageSurface struct {
	*image.RGBA
}

func NewImageSurface(r image.Rectangle) *ImageSurface {
	return &ImageSurface{RGBA: image.NewRGBA(r)}
}

func (s *ImageSurface) Fill(c color.RGBA, r image.Rectangle) {
	draw.Draw(s.RGBA, r.Intersect(s.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *ImageSurface) Blit(src *image.RGBA, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(s.RGBA, r, src, src.Bounds().Min, draw.Over)
}

func (s *ImageSurface) BlitVolatile(src *image.RGBA, at image.Point) {
	s.Blit(src, at)
}
