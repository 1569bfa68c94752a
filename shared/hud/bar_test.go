package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type gauge struct {
	v, max float64
}

func (g *gauge) value() float64 { return g.v }
func (g *gauge) limit() float64 { return g.max }

func TestBarEasesToObservedValue(t *testing.T) {
	g := &gauge{v: 100, max: 100}
	b := NewBar("health", g.value, g.limit, 10)
	assert.Equal(t, 1.0, b.Shown())

	g.v = 50
	b.Update()
	assert.Equal(t, 0.5, b.Ratio())
	assert.Less(t, b.Shown(), 1.0)
	assert.Greater(t, b.Shown(), 0.5)

	prev := b.Shown()
	for i := 0; i < 9; i++ {
		b.Update()
		assert.LessOrEqual(t, b.Shown(), prev)
		prev = b.Shown()
	}
	assert.InDelta(t, 0.5, b.Shown(), 1e-6)
}

func TestBarWithoutSmoothing(t *testing.T) {
	g := &gauge{v: 10, max: 40}
	b := NewBar("fuel", g.value, g.limit, 0)
	assert.Equal(t, 0.25, b.Shown())

	g.v = 20
	b.Update()
	assert.Equal(t, 0.5, b.Shown())
}

func TestBarRemoveWhenEmpty(t *testing.T) {
	g := &gauge{v: 5, max: 10}
	b := NewBar("fuel", g.value, g.limit, 5)
	b.RemoveWhenEmpty = true

	b.Update()
	assert.False(t, b.Removed())

	g.v = 0
	b.Update()
	assert.True(t, b.Removed())

	g.v = 10
	b.Update()
	assert.True(t, b.Removed())
}

func TestBarKeepsEmptyWithoutRemove(t *testing.T) {
	g := &gauge{v: 0, max: 10}
	b := NewBar("health", g.value, g.limit, 0)
	b.Update()
	assert.False(t, b.Removed())
	assert.Zero(t, b.Shown())
}

func TestBarNeverWritesObservedValue(t *testing.T) {
	g := &gauge{v: 7, max: 10}
	b := NewBar("health", g.value, g.limit, 3)
	for i := 0; i < 5; i++ {
		b.Update()
	}
	assert.Equal(t, 7.0, g.v)
	assert.Equal(t, 7.0, b.Value())
}
