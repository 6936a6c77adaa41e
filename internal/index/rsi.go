package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/marketmood/feargreed/pkg/formulas"
)

// calculateRSI averages the RSI readings of the region's primary indices and
// its ticker basket, then remaps the averaged RSI onto the fear/greed scale.
// RSI shares the 0-100 numeric range but not the semantic scale: its own
// neutral band around 50 must land in the sentiment neutral band.
func calculateRSI(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	values := make([]float64, 0, len(cfg.RSIIndices)+len(cfg.RSIBasket))

	for _, symbol := range cfg.RSIIndices {
		inst, ok := snap.IndexData(symbol)
		if !ok {
			return 0, missingf("index data for %s in RSI calculation", symbol)
		}
		rsi, err := fieldValue(inst.RSI, "rsi", symbol)
		if err != nil {
			return 0, err
		}
		values = append(values, rsi)
	}

	for _, symbol := range cfg.RSIBasket {
		inst, ok := snap.TickerData(symbol)
		if !ok {
			return 0, missingf("ticker data for %s in RSI calculation", symbol)
		}
		rsi, err := fieldValue(inst.RSI, "rsi", symbol)
		if err != nil {
			return 0, err
		}
		values = append(values, rsi)
	}

	if len(values) == 0 {
		return 0, missingf("no RSI sources configured for region %s", cfg.Region)
	}

	return remapRSI(formulas.Mean(values)), nil
}

// remapRSI maps an averaged RSI onto the sentiment scale piecewise: the
// oversold threshold (30) lands at 25, the RSI neutral point (50) at the
// 45-55 neutral band, and the overbought threshold (70) at 75.
func remapRSI(rsi float64) float64 {
	var score float64
	switch {
	case rsi <= 30:
		score = rsi * (25.0 / 30.0)
	case rsi <= 50:
		score = 25 + (rsi - 30)
	case rsi <= 70:
		score = 55 + (rsi - 50)
	default:
		score = 75 + (rsi-70)*(25.0/30.0)
	}
	return clampScore(score)
}
