package index

import (
	"math"
)

// Normalization shapes used by the calculators. Every function here is pure:
// the same inputs always produce the same score, and invalid inputs produce
// an explicit error rather than a silently wrong default.

// epsilon below which a denominator is treated as zero.
const epsilon = 1e-9

// Logistic clamp bounds: logistic scores never report full certainty at the
// extremes.
const (
	LogisticClampLo = 5.0
	LogisticClampHi = 95.0
)

// MinPercentilePoints is the minimum historical series length for a
// percentile-rank score; shorter series fail rather than degrade silently.
const MinPercentilePoints = 30

// LinearScale clips v to [lo, hi] and rescales it linearly so that lo maps
// to scoreAtLo and hi maps to scoreAtHi. Inverted mappings (scoreAtLo >
// scoreAtHi) are used where a higher raw value means more fear.
func LinearScale(v, lo, hi, scoreAtLo, scoreAtHi float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, missingf("linear scale input is NaN")
	}
	if math.Abs(hi-lo) < epsilon {
		return 0, undefinedf("linear scale domain [%.4f, %.4f] is degenerate", lo, hi)
	}

	clipped := math.Max(lo, math.Min(hi, v))
	t := (clipped - lo) / (hi - lo)
	score := scoreAtLo + t*(scoreAtHi-scoreAtLo)

	return clampScore(score), nil
}

// PercentileRank scores the current value by its rank within a trailing
// historical series: the fraction of historical values strictly below
// current, inverted so that a historically extreme-high reading (e.g. a
// volatility spike) yields a low score.
func PercentileRank(current float64, history []float64, minPoints int) (float64, error) {
	if math.IsNaN(current) {
		return 0, missingf("percentile input is NaN")
	}
	if minPoints <= 0 {
		minPoints = MinPercentilePoints
	}
	if len(history) < minPoints {
		return 0, undefinedf("historical series too short for percentile rank: %d points, need %d", len(history), minPoints)
	}

	below := 0
	for _, h := range history {
		if math.IsNaN(h) {
			return 0, missingf("historical series contains NaN")
		}
		if h < current {
			below++
		}
	}

	percentile := float64(below) / float64(len(history))
	return clampScore((1 - percentile) * 100), nil
}

// LogisticScale maps a difference between two comparable returns onto a
// bounded score via the logistic function, then clamps to a conservative
// sub-range to avoid reporting unrealistic certainty at the extremes. A zero
// difference maps to 50.
func LogisticScale(diff, scale float64) (float64, error) {
	if math.IsNaN(diff) {
		return 0, missingf("logistic scale input is NaN")
	}
	if scale < epsilon {
		return 0, undefinedf("logistic scale constant %.6f must be positive", scale)
	}

	sigmoid := 1 / (1 + math.Exp(-diff/scale))
	score := sigmoid * 100

	return math.Max(LogisticClampLo, math.Min(LogisticClampHi, score)), nil
}

// clampScore bounds a score to [0, 100].
func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
