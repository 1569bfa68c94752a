// Package gamectx carries the per-session values every gameplay component needs:
// frame rate, random source, palettes and logger.
package gamectx

import (
	"errors"
	"image/color"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Palettes maps a palette identifier to a non-empty list of colours.
type Palettes map[string][]color.RGBA

// PalettesFrom converts config palette tables into colour lists.
func PalettesFrom(raw map[string][][4]uint8) Palettes {
	out := make(Palettes, len(raw))
	for name, colors := range raw {
		list := make([]color.RGBA, len(colors))
		for i, c := range colors {
			list[i] = color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
		}
		out[name] = list
	}
	return out
}

// Context is passed at construction time instead of a back-reference to the app.
type Context struct {
	FPS      int
	Rand     *Random
	Palettes Palettes
	Logger   *log.Logger
}

// New builds a Context with a deterministic random source seeded from seed.
func New(fps int, seed uint64, palettes Palettes, logger *log.Logger) (*Context, error) {
	if fps <= 0 {
		return nil, errors.New("gamectx: fps must be positive")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		FPS:      fps,
		Rand:     NewRandom(seed),
		Palettes: palettes,
		Logger:   logger,
	}, nil
}

// Random wraps a PCG source with the inclusive-range helpers the generator uses.
type Random struct {
	r *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntBetween returns a uniform integer in [a, b]. Arguments may be given in either order.
func (r *Random) IntBetween(a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + r.r.IntN(b-a+1)
}

// FloatBetween returns a uniform float in [a, b).
func (r *Random) FloatBetween(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + r.r.Float64()*(b-a)
}

// Pick returns a uniformly chosen element of a non-empty slice.
func Pick[T any](r *Random, items []T) T {
	return items[r.r.IntN(len(items))]
}
