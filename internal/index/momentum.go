package index

import (
	"math"

	"github.com/marketmood/feargreed/internal/marketdata"
)

// calculateMomentum scores directional price-trend strength of the region's
// primary index. Momentum is delivered on a roughly [-20, 20] percent scale;
// the base score is 50 + MomentumScale*momentum. An oversold RSI (<30)
// nudges the score up (oversold is treated as a mean-reversion relief
// signal); an overbought RSI (>70) nudges it down.
func calculateMomentum(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	inst, ok := snap.IndexData(cfg.MomentumIndex)
	if !ok {
		return 0, missingf("index data for %s", cfg.MomentumIndex)
	}

	momentum, err := fieldValue(inst.Momentum, "momentum", cfg.MomentumIndex)
	if err != nil {
		return 0, err
	}
	rsi, err := fieldValue(inst.RSI, "rsi", cfg.MomentumIndex)
	if err != nil {
		return 0, err
	}

	score := 50 + momentum*cfg.MomentumScale

	switch {
	case rsi < 30: // oversold
		score = math.Min(100, score+cfg.RSINudge)
	case rsi > 70: // overbought
		score = math.Max(0, score-cfg.RSINudge)
	}

	return clampScore(score), nil
}
