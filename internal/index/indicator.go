package index

import (
	"fmt"

	"github.com/marketmood/feargreed/internal/marketdata"
)

// Kind identifies one of the six indicator kinds. The set is closed: regions
// vary through RegionConfig, never through new kinds.
type Kind string

const (
	KindMomentum   Kind = "Market Momentum"
	KindVolatility Kind = "Volatility"
	KindRSI        Kind = "RSI"
	KindSafeHaven  Kind = "Safe Haven Demand"
	KindTrend      Kind = "Market Trend"
	KindJunkBond   Kind = "Junk Bond Demand"
)

// AllKinds lists the indicator kinds in calculation order.
var AllKinds = []Kind{
	KindMomentum,
	KindVolatility,
	KindRSI,
	KindSafeHaven,
	KindTrend,
	KindJunkBond,
}

// Calculate computes the indicator score for one region snapshot. The result
// is always in [0, 100]; a missing required field or a mathematically
// undefined computation returns an error instead of a fabricated score.
func (k Kind) Calculate(snap *marketdata.Snapshot, cfg RegionConfig) (float64, error) {
	if snap == nil {
		return 0, missingf("nil snapshot for region %s", cfg.Region)
	}

	switch k {
	case KindMomentum:
		return calculateMomentum(snap, cfg)
	case KindVolatility:
		return calculateVolatility(snap, cfg)
	case KindRSI:
		return calculateRSI(snap, cfg)
	case KindSafeHaven:
		return calculateSafeHaven(snap, cfg)
	case KindTrend:
		return calculateTrend(snap, cfg)
	case KindJunkBond:
		return calculateJunkBond(snap, cfg)
	default:
		return 0, fmt.Errorf("unknown indicator kind %q", string(k))
	}
}
