package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
)

// Blend weights when a trailing historical series is available: 60% absolute
// level, 40% inverted percentile rank.
const (
	volatilityAbsWeight = 0.6
	volatilityPctWeight = 0.4
)

// calculateVolatility scores the region's volatility proxy: a quoted
// volatility index level (e.g. ^VIX) where one exists, otherwise the derived
// realized volatility. Higher volatility means more fear, so the mapping is
// inverted-linear over the region's typical range. When a trailing
// historical series is delivered, the absolute score is blended with a
// percentile rank against it; a series shorter than the percentile minimum
// is an error, not a silent downgrade.
func calculateVolatility(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	vol := snap.Volatility
	if vol == nil {
		return 0, missingf("volatility section for region %s", cfg.Region)
	}

	var current float64
	var err error
	if cfg.VolatilityIndex != "" {
		inst, ok := vol.Instruments[cfg.VolatilityIndex]
		if !ok {
			return 0, missingf("volatility index %s for region %s", cfg.VolatilityIndex, cfg.Region)
		}
		current, err = fieldValue(inst.CurrentPrice, "current_price", cfg.VolatilityIndex)
	} else {
		current, err = fieldValue(vol.CurrentVolatility, "current_volatility", string(cfg.Region))
	}
	if err != nil {
		return 0, err
	}

	lo, hi := cfg.VolatilityRange[0], cfg.VolatilityRange[1]
	absScore, err := LinearScale(current, lo, hi, 100, 0)
	if err != nil {
		return 0, err
	}

	if len(vol.Historical) == 0 {
		return absScore, nil
	}

	pctScore, err := PercentileRank(current, vol.Historical, MinPercentilePoints)
	if err != nil {
		return 0, err
	}

	return clampScore(volatilityAbsWeight*absScore + volatilityPctWeight*pctScore), nil
}
