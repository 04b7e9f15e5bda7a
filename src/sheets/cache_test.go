package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls int
	rows  [][]string
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) ([][]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func TestCachedFetcherMemoizes(t *testing.T) {
	inner := &countingFetcher{rows: [][]string{{"a", "b"}}}
	cf := NewCachedFetcher(inner, cache.New(time.Minute, time.Minute))

	ctx := context.Background()
	rows, err := cf.Fetch(ctx, "http://example.com/sheet")
	require.NoError(t, err)
	assert.Equal(t, inner.rows, rows)

	_, err = cf.Fetch(ctx, "http://example.com/sheet")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "second fetch must be served from cache")

	_, err = cf.Fetch(ctx, "http://example.com/other")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "distinct URLs are cached separately")
}

func TestCachedFetcherDoesNotCacheErrors(t *testing.T) {
	inner := &countingFetcher{err: errors.New("boom")}
	cf := NewCachedFetcher(inner, cache.New(time.Minute, time.Minute))

	ctx := context.Background()
	_, err := cf.Fetch(ctx, "http://example.com/sheet")
	assert.Error(t, err)

	inner.err = nil
	inner.rows = [][]string{{"ok"}}
	rows, err := cf.Fetch(ctx, "http://example.com/sheet")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ok"}}, rows)
	assert.Equal(t, 2, inner.calls)
}
