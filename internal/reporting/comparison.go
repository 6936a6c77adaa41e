// Package reporting formats computed index results for side-by-side
// cross-region comparison.
package reporting

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
)

const (
	indicatorColWidth = 25
	scoreColWidth     = 10
)

// ComparisonTable renders an aligned comparison of indicator scores and
// final scores across regions. Rows are the sorted union of indicator names
// over all regions; a region without a given indicator (or without a result
// at all) renders "N/A" in that cell instead of failing.
func ComparisonTable(results map[marketdata.Region]*index.Result, order []marketdata.Region) string {
	if len(order) == 0 {
		order = marketdata.AllRegions
	}

	var b strings.Builder
	width := indicatorColWidth + (scoreColWidth+1)*len(order)

	b.WriteString("---------------- REGIONAL COMPARISON ----------------\n")
	b.WriteString(fmt.Sprintf("%-*s", indicatorColWidth, "Indicator"))
	for _, region := range order {
		b.WriteString(fmt.Sprintf(" %-*s", scoreColWidth, strings.ToUpper(string(region))))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")

	for _, name := range indicatorUnion(results, order) {
		b.WriteString(fmt.Sprintf("%-*s", indicatorColWidth, name))
		for _, region := range order {
			b.WriteString(fmt.Sprintf(" %-*s", scoreColWidth, componentCell(results[region], name)))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-*s", indicatorColWidth, "Final Score"))
	for _, region := range order {
		b.WriteString(fmt.Sprintf(" %-*s", scoreColWidth, finalCell(results[region])))
	}
	b.WriteString("\n")

	return b.String()
}

// indicatorUnion collects the sorted union of indicator names across all
// region results in the requested order.
func indicatorUnion(results map[marketdata.Region]*index.Result, order []marketdata.Region) []string {
	seen := make(map[string]bool)
	for _, region := range order {
		result := results[region]
		if result == nil {
			continue
		}
		for name := range result.Components {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func componentCell(result *index.Result, name string) string {
	if result == nil {
		return "N/A"
	}
	score, ok := result.Components[name]
	if !ok || math.IsNaN(score) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", score)
}

func finalCell(result *index.Result) string {
	if result == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", int(math.Round(result.Score)))
}

// RegionBreakdown renders one region's indicator breakdown in the harness
// output format: final score, interpretation, then each indicator score or
// the failure that prevented it.
func RegionBreakdown(result *index.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("---------------- %s RESULTS ----------------\n", strings.ToUpper(string(result.Region))))
	b.WriteString(fmt.Sprintf("Final Index Score: %.2f / 100\n", result.Score))
	b.WriteString(fmt.Sprintf("Interpretation: %s\n", result.Interpretation))
	if result.Partial {
		b.WriteString("Note: partial result, one or more indicators failed\n")
	}
	b.WriteString("Individual Indicator Results:\n")

	for _, kind := range index.AllKinds {
		name := string(kind)
		if score, ok := result.Components[name]; ok {
			b.WriteString(fmt.Sprintf("  - %s: Score: %.2f\n", name, score))
		} else if reason, ok := result.Failures[name]; ok {
			b.WriteString(fmt.Sprintf("  - %s: Error: %s\n", name, reason))
		}
	}

	return b.String()
}
