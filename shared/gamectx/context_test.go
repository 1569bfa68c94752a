package gamectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroFPS(t *testing.T) {
	_, err := New(0, 1, nil, nil)
	require.Error(t, err)

	ctx, err := New(125, 1, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, ctx.Logger)
	assert.Equal(t, 125, ctx.FPS)
}

func TestRandomDeterminism(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	r := NewRandom(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.IntBetween(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 10, r.IntBetween(10, 10))
}

func TestPick(t *testing.T) {
	r := NewRandom(1)
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(r, items))
	}
}

func TestPalettesFrom(t *testing.T) {
	p := PalettesFrom(map[string][][4]uint8{
		"rock": {{1, 2, 3, 255}, {4, 5, 6, 128}},
	})
	require.Len(t, p["rock"], 2)
	assert.Equal(t, uint8(128), p["rock"][1].A)
	assert.Equal(t, uint8(4), p["rock"][1].R)
}
