package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Category
	}{
		{0, CategoryExtremeFear},
		{24.999, CategoryExtremeFear},
		{25, CategoryFear}, // exactly 25 is Fear, not Extreme Fear
		{44.999, CategoryFear},
		{45, CategoryNeutral}, // 45 and 55 both belong to Neutral
		{50, CategoryNeutral},
		{55, CategoryNeutral},
		{55.001, CategoryGreed},
		{75, CategoryGreed}, // exactly 75 is Greed, not Extreme Greed
		{75.001, CategoryExtremeGreed},
		{100, CategoryExtremeGreed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.score), "score %.3f", tt.score)
	}
}

func TestInterpretMonotonic(t *testing.T) {
	prev := -1
	for score := 0.0; score <= 100; score += 0.25 {
		ord := Interpret(score).Ordinal()
		assert.GreaterOrEqual(t, ord, prev, "score %.2f", score)
		prev = ord
	}
}

func TestInterpretTotal(t *testing.T) {
	// Out-of-range scores still map to a category.
	assert.Equal(t, CategoryExtremeFear, Interpret(-10))
	assert.Equal(t, CategoryExtremeGreed, Interpret(150))
}

func TestCategoryOrdinal(t *testing.T) {
	assert.Equal(t, 0, CategoryExtremeFear.Ordinal())
	assert.Equal(t, 1, CategoryFear.Ordinal())
	assert.Equal(t, 2, CategoryNeutral.Ordinal())
	assert.Equal(t, 3, CategoryGreed.Ordinal())
	assert.Equal(t, 4, CategoryExtremeGreed.Ordinal())
	assert.Equal(t, -1, Category("bogus").Ordinal())
}
