// Command harness fetches live market data, computes the fear & greed index
// for every region, and prints per-region breakdowns plus the cross-region
// comparison table. It always exits 0: failures are part of the report.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/marketmood/feargreed/internal/reporting"
	"github.com/marketmood/feargreed/pkg/logger"
)

func main() {
	apiURL := flag.String("api", marketdata.DefaultEndpoint, "market data API endpoint")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level:  *logLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := marketdata.NewClient(*apiURL, log)
	snapshots, err := client.FetchAll(ctx)
	if err != nil {
		fmt.Printf("Failed to fetch market data: %v\n", err)
		return
	}

	engine := index.NewEngine(log)
	results, regionErrs, err := engine.CalculateAll(snapshots)
	for _, region := range marketdata.AllRegions {
		if regionErr, ok := regionErrs[region]; ok {
			fmt.Printf("---------------- %s RESULTS ----------------\n", region)
			fmt.Printf("Error: %v\n\n", regionErr)
		}
	}
	if err != nil {
		fmt.Printf("Index calculation failed: %v\n", err)
		return
	}

	for _, region := range marketdata.AllRegions {
		result, ok := results[region]
		if !ok {
			continue
		}
		fmt.Println(reporting.RegionBreakdown(result))
	}

	fmt.Println(reporting.ComparisonTable(results, marketdata.AllRegions))
}
