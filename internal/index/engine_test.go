package index

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketmood/feargreed/internal/marketdata"
)

// fullUSSnapshot returns a snapshot on which all six indicators succeed with
// known scores: momentum 75, volatility 50, RSI 45, safe haven 50, trend 100,
// junk bond 75.
func fullUSSnapshot(t *testing.T) *marketdata.Snapshot {
	t.Helper()
	cfg := usConfig(t)

	snap := &marketdata.Snapshot{
		Indices: map[string]marketdata.Instrument{
			"^GSPC": {
				Momentum:     fptr(10),
				RSI:          fptr(50),
				CurrentPrice: fptr(110),
				MA50:         fptr(100),
			},
		},
		SectorETFs: map[string]marketdata.Instrument{},
		SafeHaven: map[string]marketdata.Instrument{
			"GC=F": {Momentum: fptr(0)},
			"IEF":  {Momentum: fptr(0)},
			"TLT":  {Momentum: fptr(0)},
		},
		Bonds: map[string]marketdata.Instrument{
			"HYG": {PriceChangePct: fptr(1.0)},
			"LQD": {PriceChangePct: fptr(0.0)},
		},
		Volatility: &marketdata.VolatilitySection{
			Instruments: map[string]marketdata.Instrument{
				"^VIX": {CurrentPrice: fptr(25)},
			},
		},
	}
	for _, symbol := range cfg.RSIBasket {
		snap.SectorETFs[symbol] = marketdata.Instrument{RSI: fptr(50)}
	}
	return snap
}

func TestEngineCalculateRegion(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	snap := fullUSSnapshot(t)

	result, err := engine.CalculateRegion(marketdata.RegionUS, snap)
	require.NoError(t, err)

	assert.Equal(t, marketdata.RegionUS, result.Region)
	assert.False(t, result.Partial)
	assert.Empty(t, result.Failures)
	assert.Len(t, result.Components, 6)

	assert.InDelta(t, 75, result.Components[string(KindMomentum)], 1e-9)
	assert.InDelta(t, 50, result.Components[string(KindVolatility)], 1e-9)
	assert.InDelta(t, 45, result.Components[string(KindRSI)], 1e-9)
	assert.InDelta(t, 50, result.Components[string(KindSafeHaven)], 1e-9)
	assert.InDelta(t, 100, result.Components[string(KindTrend)], 1e-9)
	assert.InDelta(t, 75, result.Components[string(KindJunkBond)], 1e-9)

	assert.InDelta(t, (75+50+45+50+100+75)/6.0, result.Score, 1e-9)
	assert.Equal(t, CategoryGreed, result.Interpretation)
}

func TestEngineCalculateRegionPartial(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	snap := fullUSSnapshot(t)
	snap.Bonds = nil // junk bond indicator fails, the rest survive

	result, err := engine.CalculateRegion(marketdata.RegionUS, snap)
	require.NoError(t, err)

	assert.True(t, result.Partial)
	assert.Len(t, result.Components, 5)
	assert.Contains(t, result.Failures, string(KindJunkBond))
	assert.NotContains(t, result.Components, string(KindJunkBond))

	// The failed indicator is excluded from the mean, not folded in as 50.
	assert.InDelta(t, (75.0+50+45+50+100)/5.0, result.Score, 1e-9)
}

func TestEngineCalculateRegionTotalFailure(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	_, err := engine.CalculateRegion(marketdata.RegionUS, &marketdata.Snapshot{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoIndicators)
}

func TestEngineCalculateRegionUnknownRegion(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	_, err := engine.CalculateRegion(marketdata.Region("mars"), &marketdata.Snapshot{})
	assert.Error(t, err)
}

func TestEngineCalculateAll(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	snapshots := map[marketdata.Region]*marketdata.Snapshot{
		marketdata.RegionUS: fullUSSnapshot(t),
		marketdata.RegionEU: {}, // fails completely
	}

	results, regionErrs, err := engine.CalculateAll(snapshots)
	require.NoError(t, err)

	assert.Len(t, results, 1)
	assert.Contains(t, results, marketdata.RegionUS)
	assert.Contains(t, regionErrs, marketdata.RegionEU)
	assert.ErrorIs(t, regionErrs[marketdata.RegionEU], ErrNoIndicators)
}

func TestEngineCalculateAllEveryRegionFails(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	snapshots := map[marketdata.Region]*marketdata.Snapshot{
		marketdata.RegionUS: {},
		marketdata.RegionEU: {},
	}

	_, regionErrs, err := engine.CalculateAll(snapshots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoIndicators)
	assert.Len(t, regionErrs, 2)
}

func TestEngineDeterministic(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	snap := fullUSSnapshot(t)

	first, err := engine.CalculateRegion(marketdata.RegionUS, snap)
	require.NoError(t, err)
	second, err := engine.CalculateRegion(marketdata.RegionUS, snap)
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Components, second.Components)
}
