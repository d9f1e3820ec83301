package scoring_test

import (
	"math"
	"testing"

	"alcyxob/scalar-app/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_BoundaryExactness(t *testing.T) {
	// Poor anchors 0, elite anchors 100, in both directions.
	assert.Equal(t, 0.0, scoring.Normalize(173, 173, 552, true))
	assert.Equal(t, 100.0, scoring.Normalize(552, 173, 552, true))

	assert.Equal(t, 0.0, scoring.Normalize(1800, 1800, 900, false))
	assert.Equal(t, 100.0, scoring.Normalize(900, 1800, 900, false))
}

func TestNormalize_WorkedExamples(t *testing.T) {
	// 400 lb deadlift against male_18_29 benchmarks (poor 173, elite 552).
	score := scoring.Normalize(400, 173, 552, true)
	assert.InDelta(t, 59.9, score, 0.05)
	assert.Equal(t, 60, int(math.Round(score)))

	// Midpoint time, poor=1800s, elite=900s.
	assert.Equal(t, 50.0, scoring.Normalize(1350, 1800, 900, false))
}

func TestNormalize_DegenerateBenchmark(t *testing.T) {
	for _, higherIsBetter := range []bool{true, false} {
		assert.Equal(t, 100.0, scoring.Normalize(0, 42, 42, higherIsBetter))
		assert.Equal(t, 100.0, scoring.Normalize(42, 42, 42, higherIsBetter))
		assert.Equal(t, 100.0, scoring.Normalize(-10, 0, 0, higherIsBetter))
	}
}

func TestNormalize_Clamping(t *testing.T) {
	tests := []struct {
		name           string
		value          float64
		poor, elite    float64
		higherIsBetter bool
		want           float64
	}{
		{"far below poor, higher", -1000, 173, 552, true, 0},
		{"just below poor, higher", 172.9, 173, 552, true, 0},
		{"far above elite, higher", 10000, 173, 552, true, 100},
		{"slower than poor, lower", 5000, 1800, 900, false, 0},
		{"faster than elite, lower", 10, 1800, 900, false, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.Normalize(tt.value, tt.poor, tt.elite, tt.higherIsBetter))
		})
	}
}

func TestNormalize_Bounds(t *testing.T) {
	// Output stays inside [0,100] no matter how far value strays.
	for _, value := range []float64{-1e9, -1, 0, 100, 362.5, 552, 553, 1e9} {
		score := scoring.Normalize(value, 173, 552, true)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 100.0)

		score = scoring.Normalize(value, 1800, 900, false)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 100.0)
	}
}

func TestNormalize_MonotonicHigherIsBetter(t *testing.T) {
	prev := -1.0
	for value := 100.0; value <= 650; value += 10 {
		score := scoring.Normalize(value, 173, 552, true)
		require.GreaterOrEqual(t, score, prev, "score must be non-decreasing in value")
		prev = score
	}
}

func TestNormalize_MonotonicLowerIsBetter(t *testing.T) {
	prev := 101.0
	for value := 600.0; value <= 2100; value += 50 {
		score := scoring.Normalize(value, 1800, 900, false)
		require.LessOrEqual(t, score, prev, "score must be non-increasing in value")
		prev = score
	}
}

func TestHigherIsBetter(t *testing.T) {
	assert.False(t, scoring.HigherIsBetter("time"))

	// Every non-time unit type is higher-is-better.
	for _, unitType := range []string{"weight", "repetitions", "calories", "distance"} {
		assert.True(t, scoring.HigherIsBetter(unitType), unitType)
	}
}
