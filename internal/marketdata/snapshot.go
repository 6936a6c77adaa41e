// Package marketdata defines the per-region market snapshot consumed by the
// index calculators, and the client that fetches it from the market-data API.
package marketdata

import (
	"encoding/json"
	"fmt"
)

// Region identifies an independent market for which a full index is computed.
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionCN Region = "cn"
)

// AllRegions lists the supported regions in reporting order.
var AllRegions = []Region{RegionUS, RegionEU, RegionCN}

// ParseRegion validates a region string.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionUS, RegionEU, RegionCN:
		return Region(s), nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Instrument holds the per-instrument fields delivered by the market-data
// provider. Fields are optional per instrument: a nil pointer means the
// provider did not deliver the field, which is distinct from a zero value.
type Instrument struct {
	CurrentPrice      *float64  `json:"current_price,omitempty"`
	MA50              *float64  `json:"ma_50,omitempty"`
	MA200             *float64  `json:"ma_200,omitempty"`
	Momentum          *float64  `json:"momentum,omitempty"`
	RSI               *float64  `json:"rsi,omitempty"`
	Volume            *float64  `json:"volume,omitempty"`
	PriceChangePct    *float64  `json:"price_change_pct,omitempty"`
	CurrentVolatility *float64  `json:"current_volatility,omitempty"`
	History           []float64 `json:"history,omitempty"`
}

// BondSpreads carries a pre-computed credit spread for a region.
type BondSpreads struct {
	CreditSpread *float64 `json:"credit_spread,omitempty"`
	Market       string   `json:"market,omitempty"`
}

// VolatilitySection is the volatility category of a snapshot. Providers use
// two shapes: named volatility indices (US delivers "^VIX" with a
// current_price) or direct realized-volatility fields (EU/CN deliver
// current_volatility plus an optional trailing historical series).
type VolatilitySection struct {
	Instruments       map[string]Instrument
	CurrentVolatility *float64
	Historical        []float64
}

// volatilityScalarKeys are decoded as direct fields; everything else in the
// volatility category is treated as a named instrument.
var volatilityScalarKeys = map[string]bool{
	"current_volatility": true,
	"historical":         true,
	"percentile":         true,
}

// UnmarshalJSON decodes both provider shapes of the volatility category.
func (v *VolatilitySection) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.Instruments = make(map[string]Instrument)
	for key, msg := range raw {
		switch {
		case key == "current_volatility":
			var val float64
			if err := json.Unmarshal(msg, &val); err != nil {
				return fmt.Errorf("volatility: bad current_volatility: %w", err)
			}
			v.CurrentVolatility = &val
		case key == "historical":
			if err := json.Unmarshal(msg, &v.Historical); err != nil {
				return fmt.Errorf("volatility: bad historical series: %w", err)
			}
		case volatilityScalarKeys[key]:
			// Recognised but unused scalar (e.g. provider-side percentile).
		default:
			var inst Instrument
			if err := json.Unmarshal(msg, &inst); err != nil {
				return fmt.Errorf("volatility: bad instrument %s: %w", key, err)
			}
			v.Instruments[key] = inst
		}
	}
	return nil
}

// MarshalJSON re-encodes the volatility category in the provider shape.
func (v VolatilitySection) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Instruments)+2)
	for key, inst := range v.Instruments {
		out[key] = inst
	}
	if v.CurrentVolatility != nil {
		out["current_volatility"] = *v.CurrentVolatility
	}
	if len(v.Historical) > 0 {
		out["historical"] = v.Historical
	}
	return json.Marshal(out)
}

// Snapshot is one region's market data, fetched fresh per calculation call.
// The calculators never mutate it.
type Snapshot struct {
	Indices map[string]Instrument `json:"indices,omitempty"`
	// Index is the legacy category name some regions use for their primary
	// index; IndexData checks both.
	Index       map[string]Instrument `json:"index,omitempty"`
	Tickers     map[string]Instrument `json:"tickers,omitempty"`
	SectorETFs  map[string]Instrument `json:"sector_etfs,omitempty"`
	SafeHaven   map[string]Instrument `json:"safe_haven,omitempty"`
	Bonds       map[string]Instrument `json:"bonds,omitempty"`
	BondSpreads *BondSpreads          `json:"bond_spreads,omitempty"`
	Volatility  *VolatilitySection    `json:"volatility,omitempty"`
}

// IndexData returns the named index instrument, checking the "indices"
// category first and falling back to the legacy "index" category.
func (s *Snapshot) IndexData(symbol string) (Instrument, bool) {
	if s == nil {
		return Instrument{}, false
	}
	if inst, ok := s.Indices[symbol]; ok {
		return inst, true
	}
	inst, ok := s.Index[symbol]
	return inst, ok
}

// TickerData returns the named ticker instrument, checking both the tickers
// and sector_etfs categories.
func (s *Snapshot) TickerData(symbol string) (Instrument, bool) {
	if s == nil {
		return Instrument{}, false
	}
	if inst, ok := s.Tickers[symbol]; ok {
		return inst, true
	}
	inst, ok := s.SectorETFs[symbol]
	return inst, ok
}

// SafeHavenData returns the named safe-haven instrument.
func (s *Snapshot) SafeHavenData(symbol string) (Instrument, bool) {
	if s == nil {
		return Instrument{}, false
	}
	inst, ok := s.SafeHaven[symbol]
	return inst, ok
}
