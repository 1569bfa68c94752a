package terrain

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
)

// ErrPlacementExhausted is wrapped by PlacementError.
var ErrPlacementExhausted = errors.New("obstacle placement exhausted retry cap")

// PlacementError reports how far obstacle placement got before giving up.
type PlacementError struct {
	Section  string
	Placed   int
	Target   int
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: placed %d of %d obstacles, gave up after %d rejected attempts",
		e.Section, e.Placed, e.Target, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}

// Placement parameterises random obstacle placement.
type Placement struct {
	Bounds    image.Rectangle
	Clearance image.Point // kept free on every side of an obstacle
	Margin    image.Point // distance kept from Bounds, room for outlines
	Count     int
	RetryCap  int
}

// Clearance is the space kept free around each obstacle: the craft size plus padding.
func Clearance(player config.PlayerConfig, m config.MapConfig) image.Point {
	return image.Pt(player.Width+m.PaddingX, player.Height+m.PaddingY)
}

// ClearanceRect grows r by c on every side.
func ClearanceRect(r image.Rectangle, c image.Point) image.Rectangle {
	return gamemath.Inflate(r, 2*c.X, 2*c.Y)
}

// PlaceObstacles draws p.Count obstacle rectangles inside p.Bounds. A trial is rejected
// when its clearance rectangle touches blocked (the edge outline) or any obstacle already
// accepted, starting with accepted. Only the newly placed rectangles are returned.
func PlaceObstacles(p Placement, cfg config.BlockConfig, blocked, accepted []image.Rectangle, rng *gamectx.Random) ([]image.Rectangle, error) {
	var placed []image.Rectangle
	taken := append([]image.Rectangle(nil), accepted...)
	attempts := 0

	for len(placed) < p.Count {
		trial, ok := drawObstacle(p, cfg, rng)
		if ok && !collides(ClearanceRect(trial, p.Clearance), blocked, taken) {
			placed = append(placed, trial)
			taken = append(taken, trial)
			continue
		}

		attempts++
		if attempts > p.RetryCap {
			return placed, &PlacementError{
				Section:  "map.obstacle",
				Placed:   len(placed),
				Target:   p.Count,
				Attempts: attempts,
			}
		}
	}
	return placed, nil
}

// drawObstacle picks a random size and a top-left that keeps the rectangle and its
// margin inside the bounds. ok is false when the size cannot fit.
func drawObstacle(p Placement, cfg config.BlockConfig, rng *gamectx.Random) (image.Rectangle, bool) {
	w := rng.IntBetween(cfg.MinWidth, cfg.MaxWidth)
	h := rng.IntBetween(cfg.MinHeight, cfg.MaxHeight)

	minX, maxX := p.Bounds.Min.X+p.Margin.X, p.Bounds.Max.X-p.Margin.X-w
	minY, maxY := p.Bounds.Min.Y+p.Margin.Y, p.Bounds.Max.Y-p.Margin.Y-h
	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return gamemath.RectAt(rng.IntBetween(minX, maxX), rng.IntBetween(minY, maxY), w, h), true
}

func collides(r image.Rectangle, groups ...[]image.Rectangle) bool {
	for _, g := range groups {
		for _, o := range g {
			if r.Overlaps(o) {
				return true
			}
		}
	}
	return false
}
