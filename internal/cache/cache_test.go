// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/submission-engine/pkg/types"
)

func testRecord(id string, lastUpdated time.Time) types.TemplateRecord {
	return types.TemplateRecord{
		ID:     id,
		Name:   "Test Template " + id,
		Source: types.SourceRemoteCatalog,
		Files: []types.TemplateFile{
			{Path: "main.tex", Content: "\\documentclass{article}", Kind: types.KindDocument, Required: true},
			{Path: "references.bib", Content: "", Kind: types.KindBibliography},
		},
		Metadata: types.TemplateMetadata{
			Journal: "Test Journal",
			Tags:    []string{"article"},
			Rating:  4.2,
		},
		LastUpdated: lastUpdated,
	}
}

func newTestCache(t *testing.T, retention time.Duration) *Cache {
	t.Helper()
	c, err := New(types.CacheConfig{Dir: t.TempDir(), Retention: retention})
	require.NoError(t, err)
	return c
}

func TestPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := New(types.CacheConfig{Dir: dir})
	require.NoError(t, err)

	record := testRecord("overleaf:ieee-conference", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, c.Put(record))

	got, ok := c.Get(record.ID)
	require.True(t, ok)
	assert.Equal(t, record, got)

	// Reopen from disk: the persisted entry must survive field-for-field.
	reopened, err := New(types.CacheConfig{Dir: dir})
	require.NoError(t, err)
	got, ok = reopened.Get(record.ID)
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func TestPutOverwritesOnIDCollision(t *testing.T) {
	c := newTestCache(t, 0)

	first := testRecord("arxiv-2301.00001", time.Now())
	require.NoError(t, c.Put(first))

	second := first
	second.Name = "Renamed"
	require.NoError(t, c.Put(second))

	got, ok := c.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 1, c.Len())
}

func TestGetAbsent(t *testing.T) {
	c := newTestCache(t, 0)
	_, ok := c.Get("no-such-template")
	assert.False(t, ok)
}

func TestNewSkipsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-id.json"), []byte("{}"), 0o644))

	c, err := New(types.CacheConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, c.Put(testRecord("good", time.Now())))

	assert.Equal(t, 1, c.Len())
}

func TestSweepEvictsStaleEntries(t *testing.T) {
	c := newTestCache(t, 30*24*time.Hour)

	stale := testRecord("stale-template", time.Now().Add(-31*24*time.Hour))
	fresh := testRecord("fresh-template", time.Now())
	require.NoError(t, c.Put(stale))
	require.NoError(t, c.Put(fresh))

	evicted, err := c.Sweep()
	require.NoError(t, err)
	assert.Equal(t, []string{"stale-template"}, evicted)

	_, ok := c.Get("stale-template")
	assert.False(t, ok, "stale entry must leave the index")
	_, err = os.Stat(filepath.Join(c.Dir(), "stale-template.json"))
	assert.True(t, os.IsNotExist(err), "stale entry must leave the disk")

	_, ok = c.Get("fresh-template")
	assert.True(t, ok, "entry within the window must be unaffected")
}

func TestSweepToleratesMissingFile(t *testing.T) {
	c := newTestCache(t, time.Hour)

	stale := testRecord("gone", time.Now().Add(-2*time.Hour))
	require.NoError(t, c.Put(stale))
	require.NoError(t, os.Remove(filepath.Join(c.Dir(), "gone.json")))

	evicted, err := c.Sweep()
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, evicted)
}

func TestClear(t *testing.T) {
	c := newTestCache(t, 0)
	require.NoError(t, c.Put(testRecord("a", time.Now())))
	require.NoError(t, c.Put(testRecord("b", time.Now())))

	removed, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, c.Len())
}

func TestEntryPathSanitizesIDs(t *testing.T) {
	c := newTestCache(t, 0)
	record := testRecord("overleaf:ieee/conf", time.Now())
	require.NoError(t, c.Put(record))

	_, err := os.Stat(filepath.Join(c.Dir(), "overleaf-ieee-conf.json"))
	assert.NoError(t, err)
}
