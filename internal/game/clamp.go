package game

func clamp(number, lo, hi int) int {
	if number < lo {
		return lo
	}
	if number > hi {
		return hi
	}
	return number
}

func clampFloat(number, lo, hi float64) float64 {
	if number < lo {
		return lo
	}
	if number > hi {
		return hi
	}
	return number
}
