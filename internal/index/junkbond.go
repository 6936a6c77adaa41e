package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
)

// Extension applied to a region's typical spread band before scoring, so
// slightly tighter or wider spreads than the band still score smoothly.
const (
	spreadExtendLo = 2.0
	spreadExtendHi = 3.0
)

// calculateJunkBond scores risk appetite from high-yield debt. Two snapshot
// forms are supported: a pre-computed credit spread (mapped inversely over
// the region's typical spread band) or the return differential between a
// high-yield proxy and an investment-grade proxy (tighter spread or HY
// outperformance means more greed).
func calculateJunkBond(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	if snap.BondSpreads != nil && snap.BondSpreads.CreditSpread != nil {
		return junkBondFromSpread(snap.BondSpreads, cfg)
	}
	return junkBondFromReturns(snap, cfg)
}

func junkBondFromSpread(spreads *marketdata.BondSpreads, cfg RegionConfig) (float64, error) {
	if spreads.Market != "" && spreads.Market != string(cfg.Region) {
		return 0, missingf("bond spreads market mismatch: expected %s, got %s", cfg.Region, spreads.Market)
	}

	spread, err := fieldValue(spreads.CreditSpread, "credit_spread", string(cfg.Region))
	if err != nil {
		return 0, err
	}

	lo := cfg.SpreadRange[0] - spreadExtendLo
	hi := cfg.SpreadRange[1] + spreadExtendHi
	if hi-lo < epsilon {
		return 0, undefinedf("invalid spread range for region %s", cfg.Region)
	}

	// Wider spread means more fear.
	return LinearScale(spread, lo, hi, 100, 0)
}

func junkBondFromReturns(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	if cfg.HighYieldBond == "" || cfg.InvestmentGradeBond == "" {
		return 0, missingf("bond spreads data for region %s", cfg.Region)
	}

	hy, ok := snap.Bonds[cfg.HighYieldBond]
	if !ok {
		return 0, missingf("bond data for %s", cfg.HighYieldBond)
	}
	ig, ok := snap.Bonds[cfg.InvestmentGradeBond]
	if !ok {
		return 0, missingf("bond data for %s", cfg.InvestmentGradeBond)
	}

	hyReturn, err := fieldValue(hy.PriceChangePct, "price_change_pct", cfg.HighYieldBond)
	if err != nil {
		return 0, err
	}
	igReturn, err := fieldValue(ig.PriceChangePct, "price_change_pct", cfg.InvestmentGradeBond)
	if err != nil {
		return 0, err
	}

	// HY outperformance means risk appetite.
	difference := hyReturn - igReturn
	score := 50 + (difference/junkBondDiffScale)*50
	return clampScore(score), nil
}
