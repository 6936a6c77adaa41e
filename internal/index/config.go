package index

import (
	"github.com/marketmood/feargreed/internal/marketdata"
)

// SafeHavenConfig names the assets and weights used by the safe-haven demand
// indicator. Currency and RiskIndex are optional (only CN uses them); their
// weights must be zero when the asset is unset.
type SafeHavenConfig struct {
	Gold      string
	Bonds     []string
	Currency  string
	RiskIndex string

	GoldWeight     float64
	BondWeight     float64
	CurrencyWeight float64
	IndexWeight    float64
}

// RegionConfig parametrizes the six calculators for one region. The set of
// indicator kinds is fixed; regions vary only through these values.
type RegionConfig struct {
	Region marketdata.Region

	// MomentumIndex is the primary index for the momentum calculator.
	MomentumIndex string
	// MomentumScale converts a [-20, 20] momentum reading to the full score
	// range (50 + scale*momentum).
	MomentumScale float64
	// RSINudge is applied to the momentum score when RSI signals oversold
	// (added: oversold is treated as a mean-reversion relief signal) or
	// overbought (subtracted). Same direction in every region.
	RSINudge float64

	// RSIIndices and RSIBasket are averaged by the RSI calculator.
	RSIIndices []string
	RSIBasket  []string

	// VolatilityIndex names a quoted volatility index (e.g. ^VIX). Empty
	// means the region scores its derived realized volatility instead.
	VolatilityIndex string
	// VolatilityRange is the inverted-linear domain: at or below the low
	// bound scores 100, at or above the high bound scores 0.
	VolatilityRange [2]float64

	// TrendIndex and MAWindow drive the market-trend (MA deviation)
	// calculator. MAWindow selects the 50- or 200-day moving average field.
	TrendIndex string
	MAWindow   int

	// SpreadRange is the typical credit-spread band for the region; the
	// junk-bond calculator maps it inversely onto the score range.
	SpreadRange [2]float64
	// HighYieldBond / InvestmentGradeBond are the return-differential
	// fallback proxies when no pre-computed credit spread is delivered.
	HighYieldBond       string
	InvestmentGradeBond string

	SafeHaven SafeHavenConfig
}

// Default tuning shared by all regions.
const (
	defaultMomentumScale = 2.5
	defaultRSINudge      = 10.0
	defaultMAWindow      = 50

	// safeHavenScale is the logistic scale constant for per-asset momentum
	// contributions in the safe-haven calculator.
	safeHavenScale = 5.0

	// junkBondDiffScale maps the HY-vs-IG return differential onto the score
	// range: a +2% differential is full greed.
	junkBondDiffScale = 2.0
)

// DefaultConfigs returns the canonical per-region configurations.
func DefaultConfigs() map[marketdata.Region]RegionConfig {
	return map[marketdata.Region]RegionConfig{
		marketdata.RegionUS: {
			Region:          marketdata.RegionUS,
			MomentumIndex:   "^GSPC",
			MomentumScale:   defaultMomentumScale,
			RSINudge:        defaultRSINudge,
			RSIIndices:      []string{"^GSPC"},
			RSIBasket:       []string{"XLB", "XLE", "XLF", "XLI", "XLK", "XLP", "XLRE", "XLU", "XLV", "XLY"},
			VolatilityIndex: "^VIX",
			VolatilityRange: [2]float64{10, 40},
			TrendIndex:      "^GSPC",
			MAWindow:        defaultMAWindow,
			SpreadRange:     [2]float64{20, 35},
			HighYieldBond:   "HYG",
			InvestmentGradeBond: "LQD",
			SafeHaven: SafeHavenConfig{
				Gold:       "GC=F",
				Bonds:      []string{"IEF", "TLT"},
				GoldWeight: 0.5,
				BondWeight: 0.5,
			},
		},
		marketdata.RegionEU: {
			Region:          marketdata.RegionEU,
			MomentumIndex:   "^STOXX50E",
			MomentumScale:   defaultMomentumScale,
			RSINudge:        defaultRSINudge,
			RSIIndices:      []string{"^STOXX50E"},
			RSIBasket:       []string{"ABI.BR", "ADS.DE", "ALV.DE", "BAYN.DE", "CS.PA"},
			VolatilityRange: [2]float64{15, 35},
			TrendIndex:      "^STOXX50E",
			MAWindow:        defaultMAWindow,
			SpreadRange:     [2]float64{20, 35},
			HighYieldBond:   "IHYG.L",
			InvestmentGradeBond: "IEAC.L",
			SafeHaven: SafeHavenConfig{
				Gold:       "GC=F",
				Bonds:      []string{"IEF", "EXVM.DE"},
				GoldWeight: 0.5,
				BondWeight: 0.5,
			},
		},
		marketdata.RegionCN: {
			Region:          marketdata.RegionCN,
			MomentumIndex:   "000300.SS",
			MomentumScale:   defaultMomentumScale,
			RSINudge:        defaultRSINudge,
			RSIIndices:      []string{"000001.SS", "000300.SS"},
			RSIBasket:       []string{"0700.HK", "1211.HK", "600036.SS", "601318.SS", "601398.SS"},
			VolatilityRange: [2]float64{15, 30},
			TrendIndex:      "000001.SS",
			MAWindow:        defaultMAWindow,
			SpreadRange:     [2]float64{5, 15},
			SafeHaven: SafeHavenConfig{
				Gold:           "GC=F",
				Bonds:          []string{"IEF"},
				Currency:       "USDCNY=X",
				RiskIndex:      "^HSI",
				GoldWeight:     0.3,
				BondWeight:     0.3,
				CurrencyWeight: 0.2,
				IndexWeight:    0.2,
			},
		},
	}
}
