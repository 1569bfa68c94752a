package terrain

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
)

var testColor = color.RGBA{R: 90, G: 80, B: 70, A: 255}

func newTestContext(t *testing.T, seed uint64) *gamectx.Context {
	t.Helper()
	ctx, err := gamectx.New(125, seed, gamectx.Palettes{
		"rock": {testColor},
		"moss": {{R: 40, G: 90, B: 40, A: 255}, {R: 50, G: 100, B: 50, A: 255}},
	}, nil)
	require.NoError(t, err)
	return ctx
}

func fixedBlock(w, h, padding int) config.BlockConfig {
	return config.BlockConfig{
		MinWidth: w, MaxWidth: w,
		MinHeight: h, MaxHeight: h,
		Padding: padding,
		Alpha:   255,
	}
}

func TestOutlineFixedSizeInside(t *testing.T) {
	ctx := newTestContext(t, 1)
	bounds := image.Rect(0, 0, 400, 300)

	rects := OutlineRects(bounds, fixedBlock(10, 6, 0), FacingInside, ctx.Rand)
	require.Len(t, rects, 40+50+40+50)

	for i, r := range rects[:40] {
		assert.Equal(t, 0, r.Min.Y, "top block %d", i)
		assert.Equal(t, 10, r.Dx())
		assert.Equal(t, 6, r.Dy())
	}
	for i, r := range rects[40:90] {
		assert.Equal(t, 400, r.Max.X, "right block %d", i)
		assert.Equal(t, 10, r.Dx())
		assert.Equal(t, 6, r.Dy())
	}
	for _, r := range rects[90:130] {
		assert.Equal(t, 300, r.Max.Y)
	}
	for _, r := range rects[130:] {
		assert.Equal(t, 0, r.Min.X)
	}
	for _, r := range rects {
		assert.True(t, gamemath.Contains(bounds, r), "%v outside bounds", r)
	}
}

func TestOutlineClipsLastBlock(t *testing.T) {
	ctx := newTestContext(t, 1)
	rects := OutlineRects(image.Rect(0, 0, 25, 12), fixedBlock(10, 6, 0), FacingInside, ctx.Rand)

	// top 10,10,5; right 6,6; bottom 10,10,5; left 6,6
	require.Len(t, rects, 10)
	assert.Equal(t, image.Rect(20, 0, 25, 6), rects[2])
	assert.Equal(t, image.Rect(15, 6, 25, 12), rects[4])
	// bottom travels right to left, so the clipped block is at the left corner
	assert.Equal(t, image.Rect(0, 6, 5, 12), rects[7])
}

func TestOutlinePadding(t *testing.T) {
	ctx := newTestContext(t, 1)
	rects := OutlineRects(image.Rect(0, 0, 400, 300), fixedBlock(10, 10, 5), FacingInside, ctx.Rand)

	var top []image.Rectangle
	for _, r := range rects {
		if r.Min.Y == 0 && r.Dy() == 10 && r.Min.X < 400 && r.Max.X <= 400 {
			top = append(top, r)
		}
	}
	require.NotEmpty(t, top)
	assert.Equal(t, 0, top[0].Min.X)
	assert.Equal(t, 15, top[1].Min.X)
	assert.Equal(t, 30, top[2].Min.X)
}

func TestOutlineFacing(t *testing.T) {
	ctx := newTestContext(t, 1)
	bounds := image.Rect(100, 100, 200, 200)

	centred := OutlineRects(bounds, fixedBlock(10, 6, 0), FacingCentred, ctx.Rand)
	assert.Equal(t, 97, centred[0].Min.Y)

	outside := OutlineRects(bounds, fixedBlock(10, 6, 0), FacingOutside, ctx.Rand)
	assert.Equal(t, 94, outside[0].Min.Y)
	assert.Equal(t, 100, outside[0].Max.Y)
	for _, r := range outside {
		assert.False(t, r.Overlaps(bounds), "%v overlaps the outlined rect", r)
	}
}

// covered reports whether p lies in any of rects.
func covered(p image.Point, rects []image.Rectangle) bool {
	for _, r := range rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

func TestOutlineCoversPerimeter(t *testing.T) {
	cfg := config.BlockConfig{MinWidth: 3, MaxWidth: 17, MinHeight: 4, MaxHeight: 11}
	bounds := image.Rect(10, 20, 237, 181)

	for seed := uint64(0); seed < 20; seed++ {
		ctx := newTestContext(t, seed)
		inside := OutlineRects(bounds, cfg, FacingInside, ctx.Rand)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			require.True(t, covered(image.Pt(x, bounds.Min.Y), inside), "seed %d top x=%d", seed, x)
			require.True(t, covered(image.Pt(x, bounds.Max.Y-1), inside), "seed %d bottom x=%d", seed, x)
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			require.True(t, covered(image.Pt(bounds.Min.X, y), inside), "seed %d left y=%d", seed, y)
			require.True(t, covered(image.Pt(bounds.Max.X-1, y), inside), "seed %d right y=%d", seed, y)
		}
		for _, r := range inside {
			require.True(t, gamemath.Contains(bounds, r))
		}

		outside := OutlineRects(bounds, cfg, FacingOutside, ctx.Rand)
		for x := bounds.Min.X - 1; x <= bounds.Max.X; x++ {
			require.True(t, covered(image.Pt(x, bounds.Min.Y-1), outside), "seed %d top x=%d", seed, x)
			require.True(t, covered(image.Pt(x, bounds.Max.Y), outside), "seed %d bottom x=%d", seed, x)
		}
		for y := bounds.Min.Y - 1; y <= bounds.Max.Y; y++ {
			require.True(t, covered(image.Pt(bounds.Min.X-1, y), outside), "seed %d left y=%d", seed, y)
			require.True(t, covered(image.Pt(bounds.Max.X, y), outside), "seed %d right y=%d", seed, y)
		}
	}
}

func TestPlaceObstaclesExhausted(t *testing.T) {
	ctx := newTestContext(t, 3)
	p := Placement{
		Bounds:    image.Rect(0, 0, 200, 200),
		Clearance: image.Pt(40+10, 40+10),
		Count:     2,
		RetryCap:  100,
	}

	placed, err := PlaceObstacles(p, fixedBlock(180, 180, 0), nil, nil, ctx.Rand)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacementExhausted))
	assert.Len(t, placed, 1)

	var perr *PlacementError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Placed)
	assert.Equal(t, 2, perr.Target)
	assert.GreaterOrEqual(t, perr.Attempts, 100)
	assert.Contains(t, err.Error(), "placed 1 of 2")
}

func TestPlaceObstaclesRespectsBlocked(t *testing.T) {
	ctx := newTestContext(t, 5)
	bounds := image.Rect(0, 0, 300, 300)
	blocked := []image.Rectangle{image.Rect(0, 0, 300, 150)}
	p := Placement{Bounds: bounds, Clearance: image.Pt(10, 10), Count: 3, RetryCap: 1000}

	placed, err := PlaceObstacles(p, fixedBlock(20, 20, 0), blocked, nil, ctx.Rand)
	require.NoError(t, err)
	require.Len(t, placed, 3)
	for _, r := range placed {
		assert.GreaterOrEqual(t, r.Min.Y, 160)
	}
}

func TestPlaceObstaclesSizeTooLarge(t *testing.T) {
	ctx := newTestContext(t, 5)
	p := Placement{Bounds: image.Rect(0, 0, 50, 50), Margin: image.Pt(10, 10), Count: 1, RetryCap: 5}
	_, err := PlaceObstacles(p, fixedBlock(40, 40, 0), nil, nil, ctx.Rand)
	assert.ErrorIs(t, err, ErrPlacementExhausted)
}

func generatorConfig() (config.MapConfig, config.PlayerConfig) {
	d := config.Defaults()
	m := d.Map
	m.ObstacleCount = 5
	return m, d.Player
}

func rectsOf(tr *Terrain, ids []BlockID) []image.Rectangle {
	out := make([]image.Rectangle, len(ids))
	for i, id := range ids {
		out[i] = tr.Blocks.Get(id).Rect()
	}
	return out
}

func TestGenerateInvariants(t *testing.T) {
	m, player := generatorConfig()
	bounds := image.Rect(0, 0, m.Width, m.Height)
	clearance := Clearance(player, m)

	for seed := uint64(1); seed <= 5; seed++ {
		ctx := newTestContext(t, seed)
		tr, err := NewGenerator(m, player, ctx).Generate(bounds, nil)
		require.NoError(t, err, "seed %d", seed)

		assert.Len(t, tr.Obstacles, m.ObstacleCount)
		assert.Len(t, tr.All, len(tr.EdgeOutline)+len(tr.Obstacles)+len(tr.ObstacleOutline))
		assert.Equal(t, tr.Blocks.Len(), len(tr.All))

		for _, r := range rectsOf(tr, tr.All) {
			assert.True(t, gamemath.Contains(bounds, r), "seed %d: %v outside bounds", seed, r)
		}

		obstacles := rectsOf(tr, tr.Obstacles)
		for i, a := range obstacles {
			for j, b := range obstacles {
				if i == j {
					continue
				}
				assert.False(t, ClearanceRect(a, clearance).Overlaps(b), "seed %d: %v too close to %v", seed, a, b)
			}
			for _, e := range rectsOf(tr, tr.EdgeOutline) {
				assert.False(t, ClearanceRect(a, clearance).Overlaps(e))
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	m, player := generatorConfig()
	bounds := image.Rect(0, 0, m.Width, m.Height)

	a, err := NewGenerator(m, player, newTestContext(t, 99)).Generate(bounds, nil)
	require.NoError(t, err)
	b, err := NewGenerator(m, player, newTestContext(t, 99)).Generate(bounds, nil)
	require.NoError(t, err)

	assert.Equal(t, rectsOf(a, a.All), rectsOf(b, b.All))
}

func TestGenerateOutlineInheritsParentColour(t *testing.T) {
	m, player := generatorConfig()
	m.ObstacleCount = 1
	ctx := newTestContext(t, 4)

	tr, err := NewGenerator(m, player, ctx).Generate(image.Rect(0, 0, m.Width, m.Height), nil)
	require.NoError(t, err)
	require.Len(t, tr.Obstacles, 1)
	require.NotEmpty(t, tr.ObstacleOutline)

	parent := tr.Blocks.Get(tr.Obstacles[0]).Color()
	for _, id := range tr.ObstacleOutline {
		got := tr.Blocks.Get(id).Color()
		assert.Equal(t, parent.R, got.R)
		assert.Equal(t, parent.G, got.G)
		assert.Equal(t, parent.B, got.B)
	}
}

func TestGeneratePresetsComeFirst(t *testing.T) {
	m, player := generatorConfig()
	m.ObstacleCount = 2
	preset := image.Rect(400, 250, 500, 350)

	tr, err := NewGenerator(m, player, newTestContext(t, 8)).Generate(image.Rect(0, 0, m.Width, m.Height), []image.Rectangle{preset})
	require.NoError(t, err)
	require.Len(t, tr.Obstacles, 3)
	assert.Equal(t, preset, tr.Blocks.Get(tr.Obstacles[0]).Rect())
}

func TestGenerateRejectsPresetOutsideBounds(t *testing.T) {
	m, player := generatorConfig()
	_, err := NewGenerator(m, player, newTestContext(t, 8)).Generate(
		image.Rect(0, 0, m.Width, m.Height), []image.Rectangle{image.Rect(-50, 0, 50, 100)})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestGenerateRejectsCrowdedPresets(t *testing.T) {
	m, player := generatorConfig()
	m.ObstacleCount = 0
	bounds := image.Rect(0, 0, m.Width, m.Height)
	c := Clearance(player, m)

	cases := map[string][]image.Rectangle{
		"overlapping": {image.Rect(300, 200, 400, 300), image.Rect(350, 250, 450, 350)},
		"inside clearance": {
			image.Rect(300, 200, 400, 300),
			image.Rect(400+c.X-1, 200, 480+c.X, 300),
		},
	}
	for name, presets := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewGenerator(m, player, newTestContext(t, 8)).Generate(bounds, presets)
			require.ErrorIs(t, err, config.ErrInvalid)
			var cfgErr *config.Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "layout", cfgErr.Section)
		})
	}
}

func TestGenerateAcceptsSpacedPresets(t *testing.T) {
	m, player := generatorConfig()
	m.ObstacleCount = 0
	c := Clearance(player, m)
	presets := []image.Rectangle{
		image.Rect(300, 200, 400, 300),
		image.Rect(400+c.X, 200, 480+c.X, 300),
	}

	tr, err := NewGenerator(m, player, newTestContext(t, 8)).Generate(image.Rect(0, 0, m.Width, m.Height), presets)
	require.NoError(t, err)
	assert.Equal(t, presets, rectsOf(tr, tr.Obstacles))
}

func TestGenerateUnknownPalette(t *testing.T) {
	m, player := generatorConfig()
	m.Obstacle.Palette = "lava"
	_, err := NewGenerator(m, player, newTestContext(t, 8)).Generate(image.Rect(0, 0, m.Width, m.Height), nil)
	require.Error(t, err)

	var cfgErr *config.Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "map.obstacle", cfgErr.Section)
}

func TestBlockHighlightRoundTrip(t *testing.T) {
	ctx := newTestContext(t, 1)
	cfg := fixedBlock(8, 8, 0)
	cfg.Alt = &config.AltConfig{Color: [4]uint8{255, 255, 255, 255}, DurationMS: 200}

	b, err := NewBlock(image.Rect(0, 0, 8, 8), []color.RGBA{testColor}, cfg, ctx)
	require.NoError(t, err)
	require.Equal(t, 25, b.AltDuration())

	main := b.Image()
	b.Highlight()
	assert.True(t, b.Highlighted())
	assert.NotSame(t, main, b.Image())

	for i := 0; i < b.AltDuration(); i++ {
		b.Tick()
	}
	assert.False(t, b.Highlighted())
	assert.Equal(t, 0, b.AltFramesLeft())
	assert.Same(t, main, b.Image())

	b.Tick()
	assert.Equal(t, 0, b.AltFramesLeft())
}

func TestBlockWithoutAlt(t *testing.T) {
	ctx := newTestContext(t, 1)
	b, err := NewBlock(image.Rect(5, 5, 13, 13), []color.RGBA{testColor}, fixedBlock(8, 8, 0), ctx)
	require.NoError(t, err)

	main := b.Image()
	b.Highlight()
	assert.False(t, b.Highlighted())
	assert.Same(t, main, b.Image())
}

func TestBlockImageAndMask(t *testing.T) {
	ctx := newTestContext(t, 1)
	cfg := fixedBlock(6, 4, 0)
	cfg.BorderColor = [4]uint8{1, 2, 3, 255}
	cfg.BorderWidth = 1

	b, err := NewBlock(image.Rect(0, 0, 6, 4), []color.RGBA{testColor}, cfg, ctx)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, b.Image().RGBAAt(0, 0))
	assert.Equal(t, testColor, b.Image().RGBAAt(2, 2))
	assert.Equal(t, 24, b.Mask().Count())

	cfg.Alpha = 0
	cfg.BorderWidth = 0
	hidden, err := NewBlock(image.Rect(0, 0, 6, 4), []color.RGBA{testColor}, cfg, ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, hidden.Mask().Count())

	_, err = NewBlock(image.Rect(0, 0, 6, 4), nil, cfg, ctx)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestArena(t *testing.T) {
	ctx := newTestContext(t, 1)
	a := NewArena()
	cfg := fixedBlock(4, 4, 0)
	cfg.Alt = &config.AltConfig{DurationMS: 8}

	b, err := NewBlock(image.Rect(0, 0, 4, 4), []color.RGBA{testColor}, cfg, ctx)
	require.NoError(t, err)
	id := a.Add(b)
	assert.Equal(t, BlockID(0), id)
	assert.Same(t, b, a.Get(id))
	assert.Nil(t, a.Get(5))
	assert.Nil(t, a.Get(-1))

	b.Highlight()
	a.Tick()
	assert.False(t, b.Highlighted())
}
