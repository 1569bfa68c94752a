package gamemath

import "math"

// Vector2 is a 2D vector of float64 components. Screen coordinates: +Y points down.
type Vector2 struct {
	X, Y float64
}

// Epsilon is the seed added to an acceleration so its angle is always defined.
var Epsilon = Vector2{X: 1e-4, Y: 1e-4}

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v, or the zero vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// WithLength rescales v to the given length. A zero vector stays zero.
func (v Vector2) WithLength(length float64) Vector2 {
	return v.Normalize().Scale(length)
}

// ClampLength limits the magnitude of v to [min, max], keeping its direction.
func (v Vector2) ClampLength(min, max float64) Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	switch {
	case l < min:
		return v.Scale(min / l)
	case l > max:
		return v.Scale(max / l)
	}
	return v
}

// ClampComponents clamps each component of v to [-limit, limit].
func (v Vector2) ClampComponents(limit float64) Vector2 {
	return Vector2{X: ClampSpeed(v.X, limit), Y: ClampSpeed(v.Y, limit)}
}

// AngleTo returns the angle in degrees from v to o, in (-360, 360).
func (v Vector2) AngleTo(o Vector2) float64 {
	return (math.Atan2(o.Y, o.X) - math.Atan2(v.Y, v.X)) * 180 / math.Pi
}

// Lerp interpolates linearly between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
