package terrain

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
)

// Facing selects which side of an edge outline blocks sit on.
type Facing int

const (
	FacingInside  Facing = -1
	FacingCentred Facing = 0
	FacingOutside Facing = 1
)

func (f Facing) Valid() bool {
	return f >= FacingInside && f <= FacingOutside
}

// edge describes one clockwise pass around a rectangle.
type edge struct {
	horizontal bool // travel along x
	forward    bool // travel towards increasing coordinates
	line       int  // perpendicular coordinate of the edge
	inward     int  // +1 if the rectangle lies towards increasing perpendicular coordinates
	from, to   int  // travel span, from < to
}

func edges(r image.Rectangle) [4]edge {
	return [4]edge{
		{horizontal: true, forward: true, line: r.Min.Y, inward: 1, from: r.Min.X, to: r.Max.X},
		{horizontal: false, forward: true, line: r.Max.X, inward: -1, from: r.Min.Y, to: r.Max.Y},
		{horizontal: true, forward: false, line: r.Max.Y, inward: -1, from: r.Min.X, to: r.Max.X},
		{horizontal: false, forward: false, line: r.Min.X, inward: 1, from: r.Min.Y, to: r.Max.Y},
	}
}

// perpendicularStart returns the low perpendicular coordinate of a block of extent ext
// aligned to e.
func (e edge) perpendicularStart(ext int, facing Facing) int {
	switch {
	case facing == FacingCentred:
		return e.line - ext/2
	case (facing == FacingInside) == (e.inward > 0):
		return e.line
	default:
		return e.line - ext
	}
}

// overhang is how far a block of perpendicular extent ext sticks out past the edge line.
func overhang(ext int, facing Facing) int {
	switch facing {
	case FacingOutside:
		return ext
	case FacingCentred:
		return ext / 2
	}
	return 0
}

// OutlineRects lays blocks around r clockwise: top, right, bottom, left. Each pass covers
// its edge corner to corner; sizes are drawn from cfg and the last block of a pass is
// clipped to the remaining span. When blocks overhang the edge, each pass is extended by
// the overhang of its neighbour so the corners are filled.
func OutlineRects(r image.Rectangle, cfg config.BlockConfig, facing Facing, rng *gamectx.Random) []image.Rectangle {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	var out []image.Rectangle
	var prevExt, firstExt int

	for i, e := range edges(r) {
		from, to := e.from, e.to
		lead := overhang(prevExt, facing)
		if e.forward {
			from -= lead
		} else {
			to += lead
		}
		if i == 3 {
			// close the loop into the top pass's first block
			from -= overhang(firstExt, facing)
		}

		cursor := from
		if !e.forward {
			cursor = to
		}
		for remaining := to - from; remaining > 0; {
			w := rng.IntBetween(cfg.MinWidth, cfg.MaxWidth)
			h := rng.IntBetween(cfg.MinHeight, cfg.MaxHeight)

			along, ext := w, h
			if !e.horizontal {
				along, ext = h, w
			}
			along = min(along, remaining)

			start := cursor
			if !e.forward {
				start = cursor - along
			}
			perp := e.perpendicularStart(ext, facing)

			var block image.Rectangle
			if e.horizontal {
				block = image.Rect(start, perp, start+along, perp+ext)
			} else {
				block = image.Rect(perp, start, perp+ext, start+along)
			}
			out = append(out, block)
			if i == 0 && len(out) == 1 {
				firstExt = ext
			}
			prevExt = ext

			step := along + cfg.Padding
			remaining -= step
			if e.forward {
				cursor += step
			} else {
				cursor -= step
			}
		}
	}
	return out
}

// Outline builds blocks around r. The palette supplies each block's colour.
func Outline(r image.Rectangle, cfg config.BlockConfig, palette []color.RGBA, facing Facing, ctx *gamectx.Context) ([]*Block, error) {
	rects := OutlineRects(r, cfg, facing, ctx.Rand)
	blocks := make([]*Block, 0, len(rects))
	for _, rect := range rects {
		b, err := NewBlock(rect, palette, cfg, ctx)
		if err != nil {
			return nil, fmt.Errorf("outline %v: %w", r, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
