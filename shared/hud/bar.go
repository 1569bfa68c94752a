// Package hud holds the HUD bars. Bars only read player state through getters.
package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/cavewing/shared/gamemath"
)

// Getter reads an observed value each frame.
type Getter func() float64

// Bar tracks one observed value as a fill ratio in [0, 1]. The displayed ratio eases
// towards the observed one over a fixed number of frames.
type Bar struct {
	Label           string
	RemoveWhenEmpty bool

	value   Getter
	limit   Getter
	frames  int
	tween   *gween.Tween
	target  float64
	shown   float64
	removed bool
}

// NewBar observes value against limit. frames is the smoothing length; 0 shows changes
// immediately.
func NewBar(label string, value, limit Getter, frames int) *Bar {
	b := &Bar{Label: label, value: value, limit: limit, frames: frames}
	b.target = b.ratio()
	b.shown = b.target
	return b
}

func (b *Bar) ratio() float64 {
	m := b.limit()
	if m <= 0 {
		return 0
	}
	return gamemath.Clamp(b.value()/m, 0, 1)
}

// Update samples the observed value once.
func (b *Bar) Update() {
	if b.removed {
		return
	}
	if b.RemoveWhenEmpty && b.value() <= 0 {
		b.removed = true
		return
	}

	r := b.ratio()
	if r != b.target {
		b.target = r
		if b.frames <= 0 {
			b.shown = r
			b.tween = nil
		} else {
			b.tween = gween.New(float32(b.shown), float32(r), float32(b.frames), ease.OutQuad)
		}
	}

	if b.tween != nil {
		v, done := b.tween.Update(1)
		b.shown = float64(v)
		if done {
			b.shown = b.target
			b.tween = nil
		}
	}
}

// Ratio is the observed fill ratio.
func (b *Bar) Ratio() float64 {
	return b.target
}

// Shown is the eased fill ratio to draw.
func (b *Bar) Shown() float64 {
	return b.shown
}

// Value is the current observed value.
func (b *Bar) Value() float64 {
	return b.value()
}

// Removed reports whether a RemoveWhenEmpty bar has emptied. It stays removed.
func (b *Bar) Removed() bool {
	return b.removed
}
