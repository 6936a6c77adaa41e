package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	for _, region := range AllRegions {
		got, err := ParseRegion(string(region))
		require.NoError(t, err)
		assert.Equal(t, region, got)
	}

	_, err := ParseRegion("uk")
	assert.Error(t, err)
	_, err = ParseRegion("")
	assert.Error(t, err)
}

func TestVolatilitySectionUnmarshalInstrumentShape(t *testing.T) {
	// US shape: a named volatility index with a current price.
	raw := `{"^VIX": {"current_price": 18.5, "ma_50": 16.2}}`

	var v VolatilitySection
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	inst, ok := v.Instruments["^VIX"]
	require.True(t, ok)
	require.NotNil(t, inst.CurrentPrice)
	assert.InDelta(t, 18.5, *inst.CurrentPrice, 1e-9)
	assert.Nil(t, v.CurrentVolatility)
	assert.Empty(t, v.Historical)
}

func TestVolatilitySectionUnmarshalScalarShape(t *testing.T) {
	// EU/CN shape: direct realized-volatility fields.
	raw := `{"current_volatility": 22.1, "historical": [20.0, 21.5, 22.1], "percentile": 0.8}`

	var v VolatilitySection
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	require.NotNil(t, v.CurrentVolatility)
	assert.InDelta(t, 22.1, *v.CurrentVolatility, 1e-9)
	assert.Equal(t, []float64{20.0, 21.5, 22.1}, v.Historical)
	assert.Empty(t, v.Instruments)
}

func TestVolatilitySectionRoundTrip(t *testing.T) {
	vol := 19.4
	v := VolatilitySection{
		Instruments: map[string]Instrument{
			"^VIX": {CurrentPrice: &vol},
		},
		CurrentVolatility: &vol,
		Historical:        []float64{18, 19, 19.4},
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded VolatilitySection
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.CurrentVolatility)
	assert.InDelta(t, vol, *decoded.CurrentVolatility, 1e-9)
	assert.Equal(t, v.Historical, decoded.Historical)
	require.Contains(t, decoded.Instruments, "^VIX")
	assert.InDelta(t, vol, *decoded.Instruments["^VIX"].CurrentPrice, 1e-9)
}

func TestSnapshotAccessors(t *testing.T) {
	price := 100.0
	snap := &Snapshot{
		Indices:    map[string]Instrument{"^GSPC": {CurrentPrice: &price}},
		Index:      map[string]Instrument{"000001.SS": {CurrentPrice: &price}},
		Tickers:    map[string]Instrument{"0700.HK": {CurrentPrice: &price}},
		SectorETFs: map[string]Instrument{"XLK": {CurrentPrice: &price}},
		SafeHaven:  map[string]Instrument{"GC=F": {CurrentPrice: &price}},
	}

	_, ok := snap.IndexData("^GSPC")
	assert.True(t, ok, "indices category")
	_, ok = snap.IndexData("000001.SS")
	assert.True(t, ok, "legacy index category")
	_, ok = snap.IndexData("^FTSE")
	assert.False(t, ok)

	_, ok = snap.TickerData("0700.HK")
	assert.True(t, ok, "tickers category")
	_, ok = snap.TickerData("XLK")
	assert.True(t, ok, "sector_etfs category")
	_, ok = snap.TickerData("AAPL")
	assert.False(t, ok)

	_, ok = snap.SafeHavenData("GC=F")
	assert.True(t, ok)

	// Nil receiver is safe.
	var nilSnap *Snapshot
	_, ok = nilSnap.IndexData("^GSPC")
	assert.False(t, ok)
}
