// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolver

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/submission-engine/internal/cache"
	"github.com/pdiddy/submission-engine/internal/catalog"
	"github.com/pdiddy/submission-engine/internal/extractor"
	"github.com/pdiddy/submission-engine/pkg/types"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		id   string
		want types.TemplateSource
	}{
		{"overleaf:foo", types.SourceRemoteCatalog},
		{"https://www.overleaf.com/latex/templates/ieee-conference", types.SourceRemoteCatalog},
		{"arxiv:2301.00001", types.SourcePaperExtracted},
		{"2301.00001", types.SourcePaperExtracted},
		{"2301.00001v3", types.SourcePaperExtracted},
		{"my-local-id", types.SourceLocalCache},
		{"", types.SourceLocalCache},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSource(tt.id))
		})
	}
}

// fakeCatalog serves a fixed record set and can be told to fail.
type fakeCatalog struct {
	records []types.TemplateRecord
	err     error
	fetches int
}

func (f *fakeCatalog) Search(filter catalog.Filter) ([]types.TemplateRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.TemplateRecord
	for _, r := range f.records {
		if catalog.Matches(r, filter) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Fetch(id string) (types.TemplateRecord, error) {
	if f.err != nil {
		return types.TemplateRecord{}, f.err
	}
	f.fetches++
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return types.TemplateRecord{}, errors.New("unknown id")
}

// countingExtractor wraps the real extractor over a counting fake repository.
type countingRepository struct {
	inner extractor.Repository
	calls int
}

func (c *countingRepository) DownloadSource(paperID string) (extractor.DownloadResult, error) {
	c.calls++
	return c.inner.DownloadSource(paperID)
}

func (c *countingRepository) SearchMetadata(query string, maxResults int) ([]extractor.PaperMetadata, error) {
	return c.inner.SearchMetadata(query, maxResults)
}

func remoteRecord(id string, rating float64) types.TemplateRecord {
	return types.TemplateRecord{
		ID:     id,
		Name:   id,
		Source: types.SourceRemoteCatalog,
		Files: []types.TemplateFile{
			{Path: "main.tex", Content: "\\documentclass{article}", Kind: types.KindDocument, Required: true},
		},
		Metadata:    types.TemplateMetadata{Rating: rating},
		LastUpdated: time.Now().UTC(),
	}
}

func newTestResolver(t *testing.T, cat Catalog) (*Resolver, *countingRepository) {
	t.Helper()
	c, err := cache.New(types.CacheConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	repo := &countingRepository{inner: extractor.NewSimulatedRepository()}
	return New(cat, extractor.New(repo), c), repo
}

func TestSearchDeduplicatesAcrossSources(t *testing.T) {
	shared := remoteRecord("overleaf:ieee-conference", 4.8)
	cat := &fakeCatalog{records: []types.TemplateRecord{shared, remoteRecord("overleaf:acm-sigconf", 4.7)}}
	r, _ := newTestResolver(t, cat)

	// The cache holds the same id plus one of its own.
	cachedCopy := shared
	cachedCopy.Name = "cached variant"
	require.NoError(t, r.Cache().Put(cachedCopy))
	require.NoError(t, r.Cache().Put(remoteRecord("local-only", 1.0)))

	results, err := r.Search(catalog.Filter{})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, rec := range results {
		seen[rec.ID]++
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "id %s returned %d times", id, n)
	}
	assert.Len(t, results, 3)

	// First occurrence wins: the remote copy, not the cached variant.
	for _, rec := range results {
		if rec.ID == shared.ID {
			assert.Equal(t, shared.Name, rec.Name)
		}
	}
}

func TestSearchFailsClosedOnCatalogError(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("catalog unreachable")}
	r, _ := newTestResolver(t, cat)
	require.NoError(t, r.Cache().Put(remoteRecord("local-only", 1.0)))

	_, err := r.Search(catalog.Filter{})
	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, types.SourceRemoteCatalog, searchErr.Source)
}

func TestFetchRemoteWritesThrough(t *testing.T) {
	record := remoteRecord("overleaf:ieee-conference", 4.8)
	cat := &fakeCatalog{records: []types.TemplateRecord{record}}
	r, _ := newTestResolver(t, cat)

	got, err := r.Fetch("ieee-conference", "")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)

	cached, ok := r.Cache().Get(record.ID)
	require.True(t, ok, "fetch must write through to the cache")
	assert.Equal(t, record.ID, cached.ID)

	// Second fetch is served from cache.
	_, err = r.Fetch("ieee-conference", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cat.fetches)
}

func TestFetchPaperExtractedServedFromCacheOnRepeat(t *testing.T) {
	cat := &fakeCatalog{}
	r, repo := newTestResolver(t, cat)

	first, err := r.Fetch("arxiv:2301.00001", "")
	require.NoError(t, err)
	assert.Equal(t, "arxiv-2301.00001", first.ID)
	assert.Equal(t, 1, repo.calls)

	second, err := r.Fetch("arxiv:2301.00001", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.calls, "repeat fetch must not hit the paper repository")
}

func TestFetchBareArxivID(t *testing.T) {
	r, repo := newTestResolver(t, &fakeCatalog{})

	record, err := r.Fetch("2301.00001", "")
	require.NoError(t, err)
	assert.Equal(t, "arxiv-2301.00001", record.ID)
	assert.Equal(t, types.SourcePaperExtracted, record.Source)
	assert.Equal(t, 1, repo.calls)
}

func TestFetchLocalCacheMiss(t *testing.T) {
	r, _ := newTestResolver(t, &fakeCatalog{})

	_, err := r.Fetch("my-local-id", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchLocalCacheHit(t *testing.T) {
	r, _ := newTestResolver(t, &fakeCatalog{})
	record := remoteRecord("my-local-id", 0)
	record.Source = types.SourceLocalCache
	require.NoError(t, r.Cache().Put(record))

	got, err := r.Fetch("my-local-id", "")
	require.NoError(t, err)
	assert.Equal(t, "my-local-id", got.ID)
}

func TestFetchExplicitSourceOverridesDetection(t *testing.T) {
	r, _ := newTestResolver(t, &fakeCatalog{})

	// "2301.00001" would auto-detect as paper-extracted; forcing local-cache
	// must consult only the cache.
	_, err := r.Fetch("2301.00001", types.SourceLocalCache)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtractFromPaperCachesResult(t *testing.T) {
	r, _ := newTestResolver(t, &fakeCatalog{})

	record, err := r.ExtractFromPaper("2301.07041", extractor.DefaultOptions())
	require.NoError(t, err)

	cached, ok := r.Cache().Get(record.ID)
	require.True(t, ok)
	assert.Equal(t, record.ID, cached.ID)
}
