package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketmood/feargreed/internal/history"
	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
)

const snapshotTimeout = 2 * time.Minute

// SnapshotJob fetches fresh market data, computes the index for every
// region, and persists the daily scores.
type SnapshotJob struct {
	client *marketdata.Client
	engine *index.Engine
	store  *history.Store
	log    zerolog.Logger
}

// NewSnapshotJob wires the fetch-calculate-persist pipeline.
func NewSnapshotJob(client *marketdata.Client, engine *index.Engine, store *history.Store, log zerolog.Logger) *SnapshotJob {
	return &SnapshotJob{
		client: client,
		engine: engine,
		store:  store,
		log:    log.With().Str("component", "snapshot_job").Logger(),
	}
}

// Run executes one snapshot cycle. Regions that fail are logged and
// skipped; the run only errors when no region could be computed or a
// successful result could not be persisted.
func (j *SnapshotJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	snapshots, err := j.client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("snapshot fetch failed: %w", err)
	}

	results, regionErrs, err := j.engine.CalculateAll(snapshots)
	for region, regionErr := range regionErrs {
		j.log.Warn().Err(regionErr).Str("region", string(region)).Msg("Region skipped in snapshot")
	}
	if err != nil {
		return err
	}

	day := time.Now().UTC()
	for _, result := range results {
		if err := j.store.Save(result, day); err != nil {
			return err
		}
	}

	j.log.Info().Int("regions", len(results)).Msg("Snapshot completed")
	return nil
}
