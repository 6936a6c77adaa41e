package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// risingSeries produces n strictly increasing closing prices.
func risingSeries(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}
	return closes
}

func TestEnrichFillsDerivedFields(t *testing.T) {
	snap := &Snapshot{
		Indices: map[string]Instrument{
			"^GSPC": {History: risingSeries(250)},
		},
	}

	Enrich(snap)

	inst := snap.Indices["^GSPC"]
	require.NotNil(t, inst.CurrentPrice)
	assert.InDelta(t, 100+249*0.5, *inst.CurrentPrice, 1e-9)

	require.NotNil(t, inst.RSI)
	// A monotonically rising series has no losses, so RSI saturates high.
	assert.Greater(t, *inst.RSI, 90.0)

	require.NotNil(t, inst.MA50)
	require.NotNil(t, inst.MA200)
	assert.Greater(t, *inst.MA50, *inst.MA200, "short MA leads long MA in an uptrend")

	require.NotNil(t, inst.Momentum)
	assert.Greater(t, *inst.Momentum, 0.0)

	require.NotNil(t, inst.PriceChangePct)
	assert.Greater(t, *inst.PriceChangePct, 0.0)
}

func TestEnrichPreservesProvidedFields(t *testing.T) {
	provided := 42.0
	snap := &Snapshot{
		Indices: map[string]Instrument{
			"^GSPC": {RSI: &provided, History: risingSeries(250)},
		},
	}

	Enrich(snap)

	inst := snap.Indices["^GSPC"]
	require.NotNil(t, inst.RSI)
	assert.InDelta(t, provided, *inst.RSI, 1e-9, "delivered RSI must not be recomputed")
}

func TestEnrichShortHistory(t *testing.T) {
	snap := &Snapshot{
		Indices: map[string]Instrument{
			"^GSPC": {History: []float64{100, 101, 102}},
		},
	}

	Enrich(snap)

	inst := snap.Indices["^GSPC"]
	require.NotNil(t, inst.CurrentPrice)
	assert.Nil(t, inst.RSI, "14-period RSI needs more than 3 closes")
	assert.Nil(t, inst.MA50)
	require.NotNil(t, inst.Momentum)
	assert.InDelta(t, 2.0, *inst.Momentum, 1e-9)
}

func TestEnrichNilSafe(t *testing.T) {
	Enrich(nil)

	snap := &Snapshot{}
	Enrich(snap)
	assert.Nil(t, snap.Volatility)
}

func TestEnrichVolatilityFromProxyHistory(t *testing.T) {
	// Oscillating prices so realized volatility is non-zero.
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100
		if i%2 == 0 {
			closes[i] = 102
		}
	}

	snap := &Snapshot{
		Volatility: &VolatilitySection{
			Instruments: map[string]Instrument{
				"510300.SS": {History: closes},
			},
		},
	}

	Enrich(snap)

	require.NotNil(t, snap.Volatility.CurrentVolatility)
	assert.Greater(t, *snap.Volatility.CurrentVolatility, 0.0)
	assert.NotEmpty(t, snap.Volatility.Historical)
}

func TestEnrichVolatilityKeepsDeliveredFields(t *testing.T) {
	delivered := 23.0
	snap := &Snapshot{
		Volatility: &VolatilitySection{
			CurrentVolatility: &delivered,
			Instruments: map[string]Instrument{
				"510300.SS": {History: risingSeries(120)},
			},
		},
	}

	Enrich(snap)

	require.NotNil(t, snap.Volatility.CurrentVolatility)
	assert.InDelta(t, delivered, *snap.Volatility.CurrentVolatility, 1e-9)
}
