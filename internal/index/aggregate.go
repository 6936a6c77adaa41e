package index

import (
	"github.com/marketmood/feargreed/pkg/formulas"
)

// Aggregate combines indicator scores into a final index via unweighted
// arithmetic mean. Supplying zero scores is a programming or data error, not
// a valid neutral result, and returns ErrNoIndicators.
func Aggregate(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrNoIndicators
	}
	return formulas.Mean(scores), nil
}
