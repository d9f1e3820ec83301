package scoring

// Normalize maps a raw performance value onto the bounded 0–100 scale
// anchored by the poor (0) and elite (100) benchmarks, via linear
// interpolation. For lower-is-better events poor is numerically greater
// than elite (e.g. poor=1800s, elite=900s) and the formula mirrors.
//
// A degenerate benchmark (elite == poor) saturates to 100 rather than
// dividing by zero. Values at or beyond either benchmark clamp to the
// scale's bounds.
func Normalize(value, poor, elite float64, higherIsBetter bool) float64 {
	if elite == poor {
		return 100
	}

	var score float64
	if higherIsBetter {
		score = (value - poor) / (elite - poor) * 100
	} else {
		score = (poor - value) / (poor - elite) * 100
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
