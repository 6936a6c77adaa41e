package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the market-data API endpoint used when no override is
// configured.
const DefaultEndpoint = "https://fear-and-greed-index.example.com/api/v1/data"

// apiResponse is the envelope returned by the market-data API.
type apiResponse struct {
	Status     string               `json:"status"`
	MarketData map[string]*Snapshot `json:"market_data"`
}

// Client fetches region snapshots from the market-data API. Timeouts and
// retries are owned here, not by the calculators.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a market-data client for the given endpoint. An empty
// endpoint selects the default.
func NewClient(endpoint string, log zerolog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("component", "marketdata_client").Logger(),
	}
}

// FetchAll fetches snapshots for every region the API reports. Derived
// fields (RSI, moving averages, momentum) are filled in from price history
// where the provider omitted them.
func (c *Client) FetchAll(ctx context.Context) (map[Region]*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build market data request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data API returned HTTP %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode market data response: %w", err)
	}

	if envelope.Status != "online" || envelope.MarketData == nil {
		return nil, fmt.Errorf("market data API returned invalid or incomplete data (status=%q)", envelope.Status)
	}

	snapshots := make(map[Region]*Snapshot, len(envelope.MarketData))
	for key, snap := range envelope.MarketData {
		region, err := ParseRegion(key)
		if err != nil {
			c.log.Warn().Str("region", key).Msg("Skipping unknown region in API response")
			continue
		}
		Enrich(snap)
		snapshots[region] = snap
	}

	if len(snapshots) == 0 {
		return nil, fmt.Errorf("market data API returned no usable regions")
	}

	c.log.Debug().Int("regions", len(snapshots)).Msg("Fetched market data")
	return snapshots, nil
}

// Fetch fetches the snapshot for a single region.
func (c *Client) Fetch(ctx context.Context, region Region) (*Snapshot, error) {
	snapshots, err := c.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	snap, ok := snapshots[region]
	if !ok {
		return nil, fmt.Errorf("no market data available for region %s", region)
	}
	return snap, nil
}
