package index

// Category is an ordinal sentiment category derived from a final index
// score. It is always derived, never stored independently.
type Category string

const (
	CategoryExtremeFear  Category = "Extreme Fear"
	CategoryFear         Category = "Fear"
	CategoryNeutral      Category = "Neutral"
	CategoryGreed        Category = "Greed"
	CategoryExtremeGreed Category = "Extreme Greed"
)

// Category thresholds. The boundary convention is fixed: Extreme Fear is
// <25, Fear is [25,45), Neutral is [45,55], Greed is (55,75], Extreme Greed
// is >75.
const (
	extremeFearUpper = 25.0
	fearUpper        = 45.0
	neutralUpper     = 55.0
	greedUpper       = 75.0
)

// Interpret maps a final score to its sentiment category. Total over the
// real line and monotonic: a higher score never maps to a less greedy
// category.
func Interpret(score float64) Category {
	switch {
	case score < extremeFearUpper:
		return CategoryExtremeFear
	case score < fearUpper:
		return CategoryFear
	case score <= neutralUpper:
		return CategoryNeutral
	case score <= greedUpper:
		return CategoryGreed
	default:
		return CategoryExtremeGreed
	}
}

// Ordinal returns the category's position on the fear-to-greed axis,
// 0 (Extreme Fear) through 4 (Extreme Greed).
func (c Category) Ordinal() int {
	switch c {
	case CategoryExtremeFear:
		return 0
	case CategoryFear:
		return 1
	case CategoryNeutral:
		return 2
	case CategoryGreed:
		return 3
	case CategoryExtremeGreed:
		return 4
	default:
		return -1
	}
}
