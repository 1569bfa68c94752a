package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Frames converts a duration in seconds to a whole number of frames at fps.
func Frames(seconds float64, fps int) int {
	return int(seconds*float64(fps) + 0.5)
}

// FramesMS converts a duration in milliseconds to a whole number of frames at fps.
func FramesMS(ms int, fps int) int {
	return int(float64(ms)*float64(fps)/1000 + 0.5)
}
