package gamemath

// Clamp limits v to [lo, hi]. If hi < lo the range collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from toward to by factor t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// StepPerTick converts a per-second velocity to a per-tick displacement.
func StepPerTick(velocity float64, tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return velocity / float64(tps)
}

// SpriteScale sizes a frame so it is heightFraction of the viewport, times multiplier.
func SpriteScale(viewportHeight, heightFraction float64, frameHeight int, multiplier float64) float64 {
	if frameHeight <= 0 {
		return multiplier
	}
	return viewportHeight * heightFraction / float64(frameHeight) * multiplier
}
