package gamemath

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Approach moves current toward target by factor of the remaining distance.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
