package terrain

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
)

// Terrain is the output of a generation run. Groups hold arena IDs in creation order.
type Terrain struct {
	Blocks *Arena

	EdgeOutline     []BlockID
	Obstacles       []BlockID
	ObstacleOutline []BlockID
	All             []BlockID
}

// Generator builds the terrain of one map.
type Generator struct {
	cfg    config.MapConfig
	player config.PlayerConfig
	ctx    *gamectx.Context
}

func NewGenerator(cfg config.MapConfig, player config.PlayerConfig, ctx *gamectx.Context) *Generator {
	return &Generator{cfg: cfg, player: player, ctx: ctx}
}

// Generate outlines bounds, accepts presets as obstacles, places the remaining random
// obstacles and outlines each obstacle. Group order is fixed: placement only looks at the
// edge outline and the obstacles themselves, never at obstacle outlines.
func (g *Generator) Generate(bounds image.Rectangle, presets []image.Rectangle) (*Terrain, error) {
	t := &Terrain{Blocks: NewArena()}
	log := g.ctx.Logger

	edgePalette, err := g.palette("map.edge_outline", g.cfg.EdgeOutline.Palette)
	if err != nil {
		return nil, err
	}
	obstaclePalette, err := g.palette("map.obstacle", g.cfg.Obstacle.Palette)
	if err != nil {
		return nil, err
	}

	edge, err := Outline(bounds, g.cfg.EdgeOutline, edgePalette, Facing(g.cfg.EdgeFacing), g.ctx)
	if err != nil {
		return nil, fmt.Errorf("edge outline: %w", err)
	}
	edgeRects := make([]image.Rectangle, len(edge))
	for i, b := range edge {
		edgeRects[i] = b.Rect()
		t.EdgeOutline = append(t.EdgeOutline, t.Blocks.Add(b))
	}

	margin := image.Pt(g.cfg.ObstacleOutline.MaxWidth, g.cfg.ObstacleOutline.MaxHeight)
	clearance := Clearance(g.player, g.cfg)
	for i, r := range presets {
		if !gamemath.Contains(gamemath.Inflate(bounds, -2*margin.X, -2*margin.Y), r) {
			return nil, &config.Error{
				Section: "layout",
				Field:   "obstacles",
				Reason:  fmt.Sprintf("preset obstacle %v does not fit inside %v with outline room", r, bounds),
			}
		}
		// Presets obey the same spacing as random obstacles.
		room := ClearanceRect(r, clearance)
		for _, prev := range presets[:i] {
			if room.Overlaps(prev) {
				return nil, &config.Error{
					Section: "layout",
					Field:   "obstacles",
					Reason:  fmt.Sprintf("preset obstacle %v is closer than %v to %v", r, clearance, prev),
				}
			}
		}
	}

	placed, err := PlaceObstacles(Placement{
		Bounds:    bounds,
		Clearance: clearance,
		Margin:    margin,
		Count:     g.cfg.ObstacleCount,
		RetryCap:  g.cfg.RetryCap,
	}, g.cfg.Obstacle, edgeRects, presets, g.ctx.Rand)
	if err != nil {
		return nil, err
	}

	for _, r := range append(append([]image.Rectangle(nil), presets...), placed...) {
		b, err := NewBlock(r, obstaclePalette, g.cfg.Obstacle, g.ctx)
		if err != nil {
			return nil, fmt.Errorf("obstacle %v: %w", r, err)
		}
		t.Obstacles = append(t.Obstacles, t.Blocks.Add(b))
	}

	for _, id := range t.Obstacles {
		parent := t.Blocks.Get(id)
		palette := []color.RGBA{parent.Color()}
		if g.cfg.ObstacleOutline.Palette != "" {
			if palette, err = g.palette("map.obstacle_outline", g.cfg.ObstacleOutline.Palette); err != nil {
				return nil, err
			}
		}
		outline, err := Outline(parent.Rect(), g.cfg.ObstacleOutline, palette, FacingOutside, g.ctx)
		if err != nil {
			return nil, fmt.Errorf("obstacle outline: %w", err)
		}
		for _, b := range outline {
			t.ObstacleOutline = append(t.ObstacleOutline, t.Blocks.Add(b))
		}
	}

	t.All = make([]BlockID, 0, t.Blocks.Len())
	t.All = append(t.All, t.EdgeOutline...)
	t.All = append(t.All, t.Obstacles...)
	t.All = append(t.All, t.ObstacleOutline...)

	log.Info("terrain generated",
		"edge", len(t.EdgeOutline),
		"presets", len(presets),
		"obstacles", len(t.Obstacles),
		"outline", len(t.ObstacleOutline),
	)
	return t, nil
}

func (g *Generator) palette(section, name string) ([]color.RGBA, error) {
	p := g.ctx.Palettes[name]
	if len(p) == 0 {
		return nil, &config.Error{Section: section, Field: "palette", Reason: fmt.Sprintf("palette %q is missing or empty", name)}
	}
	return p, nil
}
