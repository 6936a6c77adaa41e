package index

import (
	"fmt"
	"sort"

	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/rs/zerolog"
)

// Result is one region's computed index: the final score, its
// interpretation, and the contributing indicator scores. Partial marks
// results where one or more (but not all) indicators failed; the failures
// are reported alongside, never folded into the mean.
type Result struct {
	Region         marketdata.Region  `json:"region"`
	Score          float64            `json:"score"`
	Interpretation Category           `json:"interpretation"`
	Components     map[string]float64 `json:"components"`
	Failures       map[string]string  `json:"failures,omitempty"`
	Partial        bool               `json:"partial"`
}

// Engine runs the six calculators for a region and aggregates the outcome.
// It holds only configuration: every call recomputes from the snapshot it is
// given, so the same snapshot always produces the same result.
type Engine struct {
	configs map[marketdata.Region]RegionConfig
	log     zerolog.Logger
}

// NewEngine creates an engine with the canonical per-region configurations.
func NewEngine(log zerolog.Logger) *Engine {
	return NewEngineWithConfigs(DefaultConfigs(), log)
}

// NewEngineWithConfigs creates an engine with explicit configurations.
func NewEngineWithConfigs(configs map[marketdata.Region]RegionConfig, log zerolog.Logger) *Engine {
	return &Engine{
		configs: configs,
		log:     log.With().Str("component", "index_engine").Logger(),
	}
}

// CalculateRegion computes the fear & greed index for one region from an
// already-fetched snapshot. Indicators that fail are reported in
// Result.Failures and excluded from the mean; if all six fail the region
// fails outright rather than defaulting to neutral.
func (e *Engine) CalculateRegion(region marketdata.Region, snap *marketdata.Snapshot) (*Result, error) {
	cfg, ok := e.configs[region]
	if !ok {
		return nil, fmt.Errorf("no configuration for region %s", region)
	}

	components := make(map[string]float64, len(AllKinds))
	failures := make(map[string]string)
	scores := make([]float64, 0, len(AllKinds))

	for _, kind := range AllKinds {
		score, err := kind.Calculate(snap, cfg)
		if err != nil {
			e.log.Warn().Err(err).
				Str("region", string(region)).
				Str("indicator", string(kind)).
				Msg("Indicator calculation failed")
			failures[string(kind)] = err.Error()
			continue
		}
		components[string(kind)] = score
		scores = append(scores, score)
	}

	final, err := Aggregate(scores)
	if err != nil {
		return nil, fmt.Errorf("region %s: all %d indicators failed: %w", region, len(AllKinds), ErrNoIndicators)
	}

	result := &Result{
		Region:         region,
		Score:          final,
		Interpretation: Interpret(final),
		Components:     components,
		Partial:        len(failures) > 0,
	}
	if len(failures) > 0 {
		result.Failures = failures
	}

	e.log.Info().
		Str("region", string(region)).
		Float64("score", final).
		Str("interpretation", string(result.Interpretation)).
		Int("indicators", len(scores)).
		Bool("partial", result.Partial).
		Msg("Index calculated")

	return result, nil
}

// CalculateAll computes the index for every region that has both a snapshot
// and a configuration. Regions that fail completely are returned in the
// error map; at least one region must succeed.
func (e *Engine) CalculateAll(snapshots map[marketdata.Region]*marketdata.Snapshot) (map[marketdata.Region]*Result, map[marketdata.Region]error, error) {
	results := make(map[marketdata.Region]*Result)
	regionErrs := make(map[marketdata.Region]error)

	regions := make([]marketdata.Region, 0, len(snapshots))
	for region := range snapshots {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })

	for _, region := range regions {
		result, err := e.CalculateRegion(region, snapshots[region])
		if err != nil {
			regionErrs[region] = err
			continue
		}
		results[region] = result
	}

	if len(results) == 0 {
		return nil, regionErrs, fmt.Errorf("index calculation failed for every region: %w", ErrNoIndicators)
	}
	return results, regionErrs, nil
}
