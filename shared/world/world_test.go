package world

import (
	"errors"
	"go/format"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/flight"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/terrain"
	"github.com/automoto/cavewing/tags"
)

var (
	blockColor = color.RGBA{R: 120, G: 100, B: 80, A: 255}
	altColor   = [4]uint8{250, 250, 250, 255}
)

func newTestContext(t *testing.T) *gamectx.Context {
	t.Helper()
	ctx, err := gamectx.New(125, 7, gamectx.PalettesFrom(config.Defaults().Palettes), nil)
	require.NoError(t, err)
	return ctx
}

func newTestMap(t *testing.T, bounds image.Rectangle) *Map {
	t.Helper()
	def := config.Defaults()
	m, err := New(bounds, def.Map, def.Player, newTestContext(t))
	require.NoError(t, err)
	return m
}

// pixelBlocks builds 1x1 highlightable blocks at the given world points.
func pixelBlocks(t *testing.T, m *Map, pts []image.Point) *terrain.Terrain {
	t.Helper()
	cfg := config.BlockConfig{
		MinWidth: 1, MaxWidth: 1, MinHeight: 1, MaxHeight: 1,
		Alpha: 255,
		Alt:   &config.AltConfig{Color: altColor, DurationMS: 200},
	}
	tr := &terrain.Terrain{Blocks: terrain.NewArena()}
	for _, p := range pts {
		b, err := terrain.NewBlock(image.Rect(p.X, p.Y, p.X+1, p.Y+1), []color.RGBA{blockColor}, cfg, m.ctx)
		require.NoError(t, err)
		id := tr.Blocks.Add(b)
		tr.Obstacles = append(tr.Obstacles, id)
		tr.All = append(tr.All, id)
	}
	return tr
}

// craftPixels splits the craft's rectangle into world points covered and not covered
// by its mask.
func craftPixels(p *flight.Player) (on, off []image.Point) {
	r := p.Rect()
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			pt := r.Min.Add(image.Pt(x, y))
			if p.Mask().Get(x, y) {
				on = append(on, pt)
			} else {
				off = append(off, pt)
			}
		}
	}
	return on, off
}

func TestNewRejectsEmptyBounds(t *testing.T) {
	def := config.Defaults()
	_, err := New(image.Rectangle{}, def.Map, def.Player, newTestContext(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestMaskCollisionIgnoresTouchingNeighbours(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))

	on, off := craftPixels(p)
	require.NotEmpty(t, on)
	require.GreaterOrEqual(t, len(off), 4)

	pts := append([]image.Point{on[len(on)/2]}, off[0], off[len(off)-1], off[len(off)/2], off[1])
	m.setTerrain(pixelBlocks(t, m, pts))
	require.Len(t, m.space.Candidates(), len(pts))

	hits := m.CheckCollisions()
	require.Equal(t, []terrain.BlockID{0}, hits)

	assert.True(t, m.terrain.Blocks.Get(0).Highlighted())
	for id := 1; id < len(pts); id++ {
		assert.False(t, m.terrain.Blocks.Get(terrain.BlockID(id)).Highlighted(), "neighbour %d", id)
	}
	assert.True(t, p.CoolingDown())
	assert.Positive(t, p.CollisionCooldownFramesLeft())
}

func TestOverlayBufferIsReused(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))

	m.overlap.Reset(3, 3)
	m.overlap.Set(1, 1, true)
	m.renderOverlay(image.Pt(10, 10), image.Rect(11, 11, 12, 12))
	first := m.overlay
	require.NotNil(t, first)
	assert.Equal(t, p.Image().Bounds().Size(), first.Bounds().Size())
	assert.Equal(t, uint8(255), first.RGBAAt(1, 1).A)

	m.overlap.Reset(5, 2)
	m.overlap.Set(4, 0, true)
	m.renderOverlay(image.Pt(20, 20), image.Rect(24, 20, 25, 21))
	assert.Same(t, first, m.overlay)
	assert.Zero(t, m.overlay.RGBAAt(1, 1).A, "previous overlap must be cleared")
	assert.Equal(t, uint8(255), m.overlay.RGBAAt(4, 0).A)
}

func TestCooldownOnlyDrawsOverlap(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))
	on, _ := craftPixels(p)
	m.setTerrain(pixelBlocks(t, m, on[:1]))

	require.Len(t, m.CheckCollisions(), 1)
	health := p.Health()
	cooldown := p.CollisionCooldownFramesLeft()

	assert.Nil(t, m.CheckCollisions())
	assert.Equal(t, health, p.Health())
	assert.Equal(t, cooldown, p.CollisionCooldownFramesLeft())

	r, ok := m.Overlay()
	require.True(t, ok)
	assert.Equal(t, image.Rect(on[0].X, on[0].Y, on[0].X+1, on[0].Y+1), r)
}

func TestCooldownWithoutOverlapShowsNothing(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))
	p.OnCollision([]terrain.BlockID{0})

	_, off := craftPixels(p)
	m.setTerrain(pixelBlocks(t, m, off[:1]))

	assert.Nil(t, m.CheckCollisions())
	_, ok := m.Overlay()
	assert.False(t, ok)
}

func TestNoCollisionAwayFromBlocks(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))
	m.setTerrain(pixelBlocks(t, m, []image.Point{{5, 5}, {190, 190}}))

	assert.Empty(t, m.space.Candidates())
	assert.Nil(t, m.CheckCollisions())
	assert.Equal(t, p.MaxHealth(), p.Health())
}

func TestGeneratedMapSpawnIsFree(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 960, 640))
	require.NoError(t, m.GenerateTerrain(nil))
	require.NotEmpty(t, m.Terrain().All)

	spawn := m.SpawnPoint()
	p := m.SpawnPlayer(spawn)
	for _, id := range m.Terrain().All {
		assert.False(t, p.Rect().Overlaps(m.Terrain().Blocks.Get(id).Rect()), "block %d", id)
	}
	assert.Nil(t, m.CheckCollisions())

	blocks := 0
	for _, obj := range m.Space().Objects() {
		if obj.HasTags(tags.ResolvBlock) {
			blocks++
		}
	}
	assert.Equal(t, len(m.Terrain().All), blocks)
}

func TestRegenerateReplacesSpaceObjects(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 960, 640))
	require.NoError(t, m.GenerateTerrain(nil))
	require.NoError(t, m.GenerateTerrain(nil))

	blocks := 0
	for _, obj := range m.Space().Objects() {
		if obj.HasTags(tags.ResolvBlock) {
			blocks++
		}
	}
	assert.Equal(t, len(m.Terrain().All), blocks)
}

func TestGenerateTerrainPropagatesErrors(t *testing.T) {
	def := config.Defaults()
	def.Map.ObstacleCount = 500
	def.Map.RetryCap = 10
	m, err := New(image.Rect(0, 0, 960, 640), def.Map, def.Player, newTestContext(t))
	require.NoError(t, err)

	err = m.GenerateTerrain(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, terrain.ErrPlacementExhausted))
}

func TestSpawnPlayerClampsIntoBounds(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(-50, 500))

	pos := p.Position()
	assert.GreaterOrEqual(t, pos.X, 0.0)
	assert.LessOrEqual(t, pos.Y, 200.0)
	assert.Equal(t, m.playerCfg.Width/2, int(pos.X))
}

func TestHandleInputSteersCraft(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	p := m.SpawnPlayer(image.Pt(100, 100))

	m.HandleInput(flight.KeyEvent{Control: flight.ControlRight, Down: true})
	m.HandleInput(flight.KeyEvent{Control: flight.ControlRight, Down: true})
	assert.Equal(t, 1, p.DirectionX())

	m.HandleInput(flight.KeyEvent{Control: flight.ControlThrust, Down: true})
	assert.True(t, p.Thrusting())

	m.ReleaseInput()
	assert.Equal(t, 0, p.DirectionX())
	assert.False(t, p.Thrusting())
}

func TestTickMovesCraftAndTimers(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 400, 400))
	p := m.SpawnPlayer(image.Pt(200, 200))
	m.setTerrain(pixelBlocks(t, m, []image.Point{{10, 10}}))
	b := m.terrain.Blocks.Get(0)
	b.Highlight()

	before := p.Position()
	for i := 0; i < 10; i++ {
		assert.Nil(t, m.Tick())
	}
	assert.NotEqual(t, before, p.Position())
	assert.Equal(t, b.AltDuration()-10, b.AltFramesLeft())
}

func TestDrawPaintsFillBlocksAndCraft(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	m.SpawnPlayer(image.Pt(100, 100))
	m.setTerrain(pixelBlocks(t, m, []image.Point{{10, 10}}))

	s := NewImageSurface(m.Bounds())
	m.Draw(s)

	assert.Equal(t, config.RGBA(m.cfg.FillColor), s.RGBAAt(190, 5))
	assert.Equal(t, blockColor, s.RGBAAt(10, 10))

	on, _ := craftPixels(m.Player())
	assert.NotEqual(t, config.RGBA(m.cfg.FillColor), s.RGBAAt(on[0].X, on[0].Y))
}

func TestCrashed(t *testing.T) {
	m := newTestMap(t, image.Rect(0, 0, 200, 200))
	assert.False(t, m.Crashed())
	p := m.SpawnPlayer(image.Pt(100, 100))
	assert.False(t, m.Crashed())
	p.TakeDamage(p.MaxHealth())
	assert.True(t, m.Crashed())
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", name)
	}
}
