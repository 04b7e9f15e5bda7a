package sheets

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Gabrielkempp/biasi/src/logger"
)

// CachedFetcher memoizes sheet downloads for a short TTL so that a burst of
// dashboard requests costs a single export per sheet. Failed fetches are
// never cached; the next request retries.
type CachedFetcher struct {
	next  Fetcher
	cache *cache.Cache
}

// NewCachedFetcher wraps next with a TTL cache keyed by export URL.
func NewCachedFetcher(next Fetcher, c *cache.Cache) *CachedFetcher {
	return &CachedFetcher{next: next, cache: c}
}

func (f *CachedFetcher) Fetch(ctx context.Context, url string) ([][]string, error) {
	if cached, found := f.cache.Get(url); found {
		if rows, ok := cached.([][]string); ok {
			logger.FromContext(ctx).Debug("Sheet cache hit", "url", url)
			return rows, nil
		}
	}

	start := time.Now()
	rows, err := f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	f.cache.Set(url, rows, cache.DefaultExpiration)
	logger.FromContext(ctx).Info("Sheet cache refreshed",
		"url", url, "rows", len(rows), "duration", time.Since(start).String())
	return rows, nil
}
