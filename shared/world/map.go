// Package world is the map runtime: it owns the terrain, the craft and the broadphase
// space, runs one fixed frame per Tick and draws onto a Surface.
package world

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/flight"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
	"github.com/automoto/cavewing/shared/mask"
	"github.com/automoto/cavewing/shared/terrain"
)

const spawnStep = 4

type Map struct {
	bounds    image.Rectangle
	cfg       config.MapConfig
	playerCfg config.PlayerConfig
	ctx       *gamectx.Context

	gen      *terrain.Generator
	terrain  *terrain.Terrain
	space    *Space
	player   *flight.Player
	controls flight.Controls

	overlap     *mask.Mask
	overlay     *image.RGBA
	overlayAt   image.Point
	overlayRect image.Rectangle
	showOverlay bool
}

// New prepares an empty map over bounds. Call GenerateTerrain and SpawnPlayer before
// the first Tick.
func New(bounds image.Rectangle, cfg config.MapConfig, player config.PlayerConfig, ctx *gamectx.Context) (*Map, error) {
	if bounds.Empty() {
		return nil, &config.Error{Section: "map", Field: "bounds", Reason: "bounds are empty"}
	}
	if ctx.FPS <= 0 {
		return nil, &config.Error{Section: "game", Field: "fps", Reason: "fps must be positive"}
	}

	// Room around the bounds for outlines facing outward and a craft leaving the area.
	pad := int(math.Ceil(math.Hypot(float64(player.Width), float64(player.Height)))) + cellSize
	pad += max(cfg.EdgeOutline.MaxWidth, cfg.EdgeOutline.MaxHeight)

	return &Map{
		bounds:    bounds,
		cfg:       cfg,
		playerCfg: player,
		ctx:       ctx,
		gen:       terrain.NewGenerator(cfg, player, ctx),
		terrain:   &terrain.Terrain{Blocks: terrain.NewArena()},
		space:     NewSpace(gamemath.Inflate(bounds, 2*pad, 2*pad)),
		overlap:   mask.New(0, 0),
	}, nil
}

// GenerateTerrain replaces the terrain. presets are accepted as obstacles before the
// random ones.
func (m *Map) GenerateTerrain(presets []image.Rectangle) error {
	t, err := m.gen.Generate(m.bounds, presets)
	if err != nil {
		return err
	}
	m.setTerrain(t)
	return nil
}

func (m *Map) setTerrain(t *terrain.Terrain) {
	m.terrain = t
	m.space.Clear()
	for _, id := range t.All {
		m.space.AddBlock(id, t.Blocks.Get(id).Rect())
	}
	m.showOverlay = false
}

// SpawnPlayer places a fresh craft at pt, clamped so its unrotated body is inside the
// bounds.
func (m *Map) SpawnPlayer(pt image.Point) *flight.Player {
	pt = gamemath.ClampPoint(pt, m.bounds, m.playerCfg.Width, m.playerCfg.Height)
	if m.player != nil {
		m.controls.Release(m.player)
	}
	m.controls = flight.Controls{}
	m.player = flight.NewPlayer(m.playerCfg, gamemath.Vec(float64(pt.X), float64(pt.Y)), m.ctx)
	m.space.MovePlayer(m.player.Rect())
	m.showOverlay = false
	return m.player
}

// SpawnPoint is the point nearest the bounds centre where the craft, at any angle,
// touches no block. It scans square rings outward and falls back to the centre.
func (m *Map) SpawnPoint() image.Point {
	centre := image.Pt(
		m.bounds.Min.X+m.bounds.Dx()/2,
		m.bounds.Min.Y+m.bounds.Dy()/2,
	)
	side := int(math.Ceil(math.Hypot(float64(m.playerCfg.Width), float64(m.playerCfg.Height)))) + spawnStep

	free := func(p image.Point) bool {
		r := gamemath.CenteredRect(p, side, side)
		if !gamemath.Contains(m.bounds, r) {
			return false
		}
		for _, id := range m.terrain.All {
			if r.Overlaps(m.terrain.Blocks.Get(id).Rect()) {
				return false
			}
		}
		return true
	}

	if free(centre) {
		return centre
	}
	limit := max(m.bounds.Dx(), m.bounds.Dy()) / 2
	for ring := spawnStep; ring <= limit; ring += spawnStep {
		for d := -ring; d <= ring; d += spawnStep {
			for _, p := range [...]image.Point{
				centre.Add(image.Pt(d, -ring)),
				centre.Add(image.Pt(d, ring)),
				centre.Add(image.Pt(-ring, d)),
				centre.Add(image.Pt(ring, d)),
			} {
				if free(p) {
					return p
				}
			}
		}
	}
	return centre
}

// HandleInput forwards a key edge to the craft.
func (m *Map) HandleInput(ev flight.KeyEvent) {
	if m.player == nil {
		return
	}
	m.controls.Apply(m.player, ev)
}

// ReleaseInput lifts every held key.
func (m *Map) ReleaseInput() {
	if m.player == nil {
		return
	}
	m.controls.Release(m.player)
}

// Tick runs one frame: block highlight timers, the craft, then the collision check.
func (m *Map) Tick() []terrain.BlockID {
	m.terrain.Blocks.Tick()
	if m.player == nil {
		return nil
	}
	m.player.Update()
	m.space.MovePlayer(m.player.Rect())
	return m.CheckCollisions()
}

// CheckCollisions tests the craft against the blocks. While the craft cools down it only
// rebuilds the overlap visual. Otherwise every block whose mask overlaps the craft mask
// is reported to the craft and highlighted; the hit ids are returned.
func (m *Map) CheckCollisions() []terrain.BlockID {
	m.showOverlay = false
	p := m.player
	if p == nil {
		return nil
	}
	pr := p.Rect()
	pm := p.Mask()

	var touching []*terrain.Block
	var ids []terrain.BlockID
	for _, id := range m.space.Candidates() {
		b := m.terrain.Blocks.Get(id)
		if b == nil || !pr.Overlaps(b.Rect()) {
			continue
		}
		touching = append(touching, b)
		ids = append(ids, id)
	}
	if len(touching) == 0 {
		return nil
	}

	if p.CollisionCooldownFramesLeft() > 0 {
		m.overlap.Reset(pm.Size())
		for _, b := range touching {
			pm.OrOverlapInto(m.overlap, b.Mask(), b.Rect().Min.Sub(pr.Min))
		}
		r, ok := m.overlap.LargestComponentRect()
		if !ok {
			m.ctx.Logger.Debug("overlap has no component", "player", pr, "blocks", len(touching))
			return nil
		}
		m.renderOverlay(pr.Min, r.Add(pr.Min))
		return nil
	}

	var hits []terrain.BlockID
	for i, b := range touching {
		if pm.Overlap(b.Mask(), b.Rect().Min.Sub(pr.Min)) {
			hits = append(hits, ids[i])
		}
	}
	if len(hits) == 0 {
		return nil
	}
	p.OnCollision(hits)
	for _, id := range hits {
		m.terrain.Blocks.Get(id).Highlight()
	}
	m.ctx.Logger.Debug("collision", "blocks", len(hits), "impact", p.LastImpact(), "health", p.Health())
	return hits
}

// renderOverlay paints the overlap mask into one buffer the size of the craft's rotation
// square, which bounds every mask the craft can produce, so the buffer is reused.
func (m *Map) renderOverlay(at image.Point, rect image.Rectangle) {
	size := m.player.Image().Bounds().Size()
	if m.overlay == nil || m.overlay.Bounds().Size() != size {
		m.overlay = image.NewRGBA(image.Rectangle{Max: size})
	} else {
		clear(m.overlay.Pix)
	}
	m.overlap.Draw(m.overlay, image.Point{}, config.RGBA(m.cfg.OverlapColor))
	m.overlayAt = at
	m.overlayRect = rect
	m.showOverlay = true
}

// Draw clears the bounds, then draws the blocks, the craft and the overlap visual.
func (m *Map) Draw(s Surface) {
	s.Fill(config.RGBA(m.cfg.FillColor), m.bounds)
	for _, id := range m.terrain.All {
		b := m.terrain.Blocks.Get(id)
		s.Blit(b.Image(), b.Rect().Min)
	}
	if m.player != nil {
		s.BlitVolatile(m.player.Image(), m.player.ImageOrigin())
	}
	if m.showOverlay {
		s.BlitVolatile(m.overlay, m.overlayAt)
		strokeRect(s, m.overlayRect, config.RGBA(m.cfg.OverlapColor))
	}
}

func strokeRect(s Surface, r image.Rectangle, c color.RGBA) {
	s.Fill(c, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1))
	s.Fill(c, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y))
	s.Fill(c, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y))
	s.Fill(c, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y))
}

// Crashed reports whether the craft has run out of health.
func (m *Map) Crashed() bool {
	return m.player != nil && m.player.Health() <= 0
}

func (m *Map) Player() *flight.Player    { return m.player }
func (m *Map) Terrain() *terrain.Terrain { return m.terrain }
func (m *Map) Bounds() image.Rectangle   { return m.bounds }
func (m *Map) Space() *Space             { return m.space }

// Overlay is the rectangle of the last overlap visual; ok is false when none is shown.
func (m *Map) Overlay() (image.Rectangle, bool) {
	return m.overlayRect, m.showOverlay
}
