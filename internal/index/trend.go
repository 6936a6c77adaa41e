package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
)

// calculateTrend scores the percentage deviation of the primary index from
// its configured moving average: a deviation of -10% maps to 0 and +10% to
// 100. The MA window is per-region configuration (50-day by default), not a
// hardcoded literal.
func calculateTrend(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	inst, ok := snap.IndexData(cfg.TrendIndex)
	if !ok {
		return 0, missingf("index data for %s", cfg.TrendIndex)
	}

	price, err := fieldValue(inst.CurrentPrice, "current_price", cfg.TrendIndex)
	if err != nil {
		return 0, err
	}

	var maField *float64
	var maName string
	if cfg.MAWindow >= 200 {
		maField, maName = inst.MA200, "ma_200"
	} else {
		maField, maName = inst.MA50, "ma_50"
	}

	ma, err := fieldValue(maField, maName, cfg.TrendIndex)
	if err != nil {
		return 0, err
	}
	if ma < epsilon {
		return 0, undefinedf("%s for %s is zero or negative, cannot compute deviation", maName, cfg.TrendIndex)
	}

	deviation := (price/ma - 1) * 100
	return LinearScale(deviation, -10, 10, 0, 100)
}
