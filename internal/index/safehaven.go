package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/rs/zerolog/log"
)

// calculateSafeHaven scores relative flow into defensive assets. Each
// configured asset contributes a logistic-scaled greed score derived from its
// momentum: rising momentum in a safe-haven asset (gold, government bonds,
// the reserve currency) signals fear, so those contributions are inverted;
// rising momentum in the risk-on index signals greed. Contributions combine
// with fixed per-asset weights.
//
// A missing asset (or missing momentum) degrades that sub-component to
// neutral with a logged warning; the indicator only fails when every
// sub-component is missing.
func calculateSafeHaven(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	sh := cfg.SafeHaven
	available := 0

	goldScore := 50.0
	if sh.Gold != "" {
		if score, ok := assetGreedScore(snap, sh.Gold, true); ok {
			goldScore = score
			available++
		} else {
			log.Warn().Str("region", string(cfg.Region)).Str("asset", sh.Gold).
				Msg("Missing gold momentum for safe haven, using neutral")
		}
	}

	bondScore := 50.0
	bondScores := make([]float64, 0, len(sh.Bonds))
	for _, symbol := range sh.Bonds {
		if score, ok := assetGreedScore(snap, symbol, true); ok {
			bondScores = append(bondScores, score)
		} else {
			log.Warn().Str("region", string(cfg.Region)).Str("asset", symbol).
				Msg("Missing bond momentum for safe haven, using neutral")
		}
	}
	if len(bondScores) > 0 {
		sum := 0.0
		for _, s := range bondScores {
			sum += s
		}
		bondScore = sum / float64(len(bondScores))
		available++
	}

	currencyScore := 50.0
	if sh.Currency != "" {
		if score, ok := assetGreedScore(snap, sh.Currency, true); ok {
			currencyScore = score
			available++
		} else {
			log.Warn().Str("region", string(cfg.Region)).Str("asset", sh.Currency).
				Msg("Missing currency momentum for safe haven, using neutral")
		}
	}

	indexScore := 50.0
	if sh.RiskIndex != "" {
		if score, ok := riskIndexGreedScore(snap, sh.RiskIndex); ok {
			indexScore = score
			available++
		} else {
			log.Warn().Str("region", string(cfg.Region)).Str("asset", sh.RiskIndex).
				Msg("Missing risk index momentum for safe haven, using neutral")
		}
	}

	if available == 0 {
		return 0, missingf("no safe haven assets available for region %s", cfg.Region)
	}

	score := goldScore*sh.GoldWeight +
		bondScore*sh.BondWeight +
		currencyScore*sh.CurrencyWeight +
		indexScore*sh.IndexWeight

	return clampScore(score), nil
}

// assetGreedScore converts one safe-haven asset's momentum into a greed
// score. Inverted assets (gold, bond price proxies, USD-vs-local currency)
// score low when their momentum is rising.
func assetGreedScore(snap *marketdata.Snapshot, symbol string, invert bool) (float64, bool) {
	inst, ok := snap.SafeHavenData(symbol)
	if !ok {
		return 0, false
	}
	momentum, err := fieldValue(inst.Momentum, "momentum", symbol)
	if err != nil {
		return 0, false
	}

	score, err := LogisticScale(momentum, safeHavenScale)
	if err != nil {
		return 0, false
	}
	if invert {
		score = 100 - score
	}
	return score, true
}

// riskIndexGreedScore looks the risk-on index up in the index categories
// first, falling back to the safe-haven category, and scores its momentum
// without inversion.
func riskIndexGreedScore(snap *marketdata.Snapshot, symbol string) (float64, bool) {
	inst, ok := snap.IndexData(symbol)
	if !ok {
		inst, ok = snap.SafeHavenData(symbol)
	}
	if !ok {
		return 0, false
	}
	momentum, err := fieldValue(inst.Momentum, "momentum", symbol)
	if err != nil {
		return 0, false
	}

	score, err := LogisticScale(momentum, safeHavenScale)
	if err != nil {
		return 0, false
	}
	return score, true
}
