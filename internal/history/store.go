// Package history persists daily index snapshots. It is owned by the
// presentation layer: the core calculators never read from or write to it.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/marketmood/feargreed/internal/database"
	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
)

// Entry is one stored daily snapshot of a region's index.
type Entry struct {
	ID             string             `json:"id"`
	Region         marketdata.Region  `json:"region"`
	Day            string             `json:"day"` // YYYY-MM-DD
	Score          float64            `json:"score"`
	Interpretation index.Category     `json:"interpretation"`
	Partial        bool               `json:"partial"`
	Components     map[string]float64 `json:"components"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Store reads and writes daily index snapshots.
type Store struct {
	db  *database.DB
	log zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS daily_scores (
    id             TEXT PRIMARY KEY,
    region         TEXT NOT NULL,
    day            TEXT NOT NULL,
    score          REAL NOT NULL,
    interpretation TEXT NOT NULL,
    partial        INTEGER NOT NULL DEFAULT 0,
    components     BLOB,
    created_at     INTEGER NOT NULL,
    UNIQUE(region, day)
);
CREATE INDEX IF NOT EXISTS idx_daily_scores_region_day ON daily_scores(region, day DESC);
`

// NewStore creates the store and ensures the schema exists.
func NewStore(db *database.DB, log zerolog.Logger) (*Store, error) {
	if _, err := db.Conn().Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{
		db:  db,
		log: log.With().Str("component", "history_store").Logger(),
	}, nil
}

// Save upserts one region result for the given day. Saving the same
// region/day twice replaces the earlier snapshot.
func (s *Store) Save(result *index.Result, day time.Time) error {
	blob, err := msgpack.Marshal(result.Components)
	if err != nil {
		return fmt.Errorf("failed to encode components: %w", err)
	}

	_, err = s.db.Conn().Exec(`
		INSERT INTO daily_scores (id, region, day, score, interpretation, partial, components, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(region, day) DO UPDATE SET
			score = excluded.score,
			interpretation = excluded.interpretation,
			partial = excluded.partial,
			components = excluded.components,
			created_at = excluded.created_at`,
		uuid.NewString(),
		string(result.Region),
		day.UTC().Format("2006-01-02"),
		result.Score,
		string(result.Interpretation),
		boolToInt(result.Partial),
		blob,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save daily score for %s: %w", result.Region, err)
	}

	s.log.Debug().
		Str("region", string(result.Region)).
		Float64("score", result.Score).
		Msg("Daily score saved")
	return nil
}

// Recent returns up to limit entries for a region, newest first.
func (s *Store) Recent(region marketdata.Region, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := s.db.Conn().Query(`
		SELECT id, region, day, score, interpretation, partial, components, created_at
		FROM daily_scores
		WHERE region = ?
		ORDER BY day DESC
		LIMIT ?`,
		string(region), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", region, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Latest returns the most recent entry for a region, or nil when the region
// has no stored history.
func (s *Store) Latest(region marketdata.Region) (*Entry, error) {
	entries, err := s.Recent(region, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var region string
	var interpretation string
	var partial int
	var blob []byte
	var createdAt int64

	if err := row.Scan(&entry.ID, &region, &entry.Day, &entry.Score, &interpretation, &partial, &blob, &createdAt); err != nil {
		return Entry{}, fmt.Errorf("failed to scan history row: %w", err)
	}

	entry.Region = marketdata.Region(region)
	entry.Interpretation = index.Category(interpretation)
	entry.Partial = partial != 0
	entry.CreatedAt = time.Unix(createdAt, 0).UTC()

	if len(blob) > 0 {
		if err := msgpack.Unmarshal(blob, &entry.Components); err != nil {
			return Entry{}, fmt.Errorf("failed to decode components: %w", err)
		}
	}
	return entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
