package marketdata

import (
	"github.com/marketmood/feargreed/pkg/formulas"
)

const (
	rsiPeriod      = 14
	maShortWindow  = 50
	maLongWindow   = 200
	momentumDays   = 125
	volWindowDays  = 30
)

// Enrich fills in derived instrument fields from closing-price history where
// the provider delivered the raw series but not the computed value. Fields
// already present are left untouched; instruments without history are left
// as delivered.
func Enrich(s *Snapshot) {
	if s == nil {
		return
	}

	enrichCategory(s.Indices)
	enrichCategory(s.Index)
	enrichCategory(s.Tickers)
	enrichCategory(s.SectorETFs)
	enrichCategory(s.SafeHaven)
	enrichCategory(s.Bonds)
	enrichVolatility(s.Volatility)
}

func enrichCategory(category map[string]Instrument) {
	for symbol, inst := range category {
		category[symbol] = enrichInstrument(inst)
	}
}

func enrichInstrument(inst Instrument) Instrument {
	if len(inst.History) < 2 {
		return inst
	}

	closes := inst.History

	if inst.CurrentPrice == nil {
		last := closes[len(closes)-1]
		inst.CurrentPrice = &last
	}
	if inst.RSI == nil {
		inst.RSI = formulas.CalculateRSI(closes, rsiPeriod)
	}
	if inst.MA50 == nil {
		inst.MA50 = formulas.CalculateSMA(closes, maShortWindow)
	}
	if inst.MA200 == nil {
		inst.MA200 = formulas.CalculateSMA(closes, maLongWindow)
	}
	if inst.Momentum == nil {
		window := closes
		if len(window) > momentumDays+1 {
			window = window[len(window)-momentumDays-1:]
		}
		momentum := formulas.PriceChangePercent(window)
		inst.Momentum = &momentum
	}
	if inst.PriceChangePct == nil {
		change := formulas.PriceChangePercent(closes)
		inst.PriceChangePct = &change
	}

	return inst
}

// enrichVolatility computes the realized-volatility fields from a closing
// price series when the provider delivered history for a volatility proxy
// instead of a volatility index level.
func enrichVolatility(v *VolatilitySection) {
	if v == nil {
		return
	}

	for symbol, inst := range v.Instruments {
		v.Instruments[symbol] = enrichInstrument(inst)
	}

	if v.CurrentVolatility != nil || len(v.Historical) > 0 {
		return
	}

	// Derive the rolling realized-vol series from the longest instrument
	// history available in the category.
	var closes []float64
	for _, inst := range v.Instruments {
		if len(inst.History) > len(closes) {
			closes = inst.History
		}
	}
	if len(closes) < volWindowDays+2 {
		return
	}

	returns := formulas.CalculateReturns(closes)
	rolling := formulas.RollingVolatility(returns, volWindowDays)
	if len(rolling) == 0 {
		return
	}

	// Annualized fractions scaled to percentage points for comparability
	// with VIX-style index levels.
	scaled := make([]float64, len(rolling))
	for i, val := range rolling {
		scaled[i] = val * 100
	}

	latest := scaled[len(scaled)-1]
	v.CurrentVolatility = &latest
	v.Historical = scaled
}
