package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/Gabrielkempp/biasi/src/logger"
)

// Fetcher retrieves the raw cell grid of a published spreadsheet.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([][]string, error)
}

// Client downloads Google Sheets CSV exports. A small rate limiter keeps
// the service inside the anonymous-export quota even when every dashboard
// misses its cache at once.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a sheet fetcher with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

// Fetch downloads the CSV export at url and returns it as a grid of cells.
// Rows may have different lengths; ragged exports are normal for sheets
// with merged title cells.
func (c *Client) Fetch(ctx context.Context, url string) ([][]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building sheet request: %w", err)
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetching sheet: unexpected status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing sheet CSV: %w", err)
	}

	log.Debug("Sheet fetched", "url", url, "rows", len(rows), "duration", time.Since(start).String())
	return rows, nil
}
