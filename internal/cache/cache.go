// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache implements the two-tier template cache: an in-memory index
// over one JSON file per template in a cache directory.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// DefaultRetention is the eviction window applied when the config leaves
// Retention unset.
const DefaultRetention = 30 * 24 * time.Hour

// Cache is a write-through template store. Construct one per engine with New;
// it is not safe for concurrent use and its side effects are confined to the
// cache directory.
type Cache struct {
	dir       string
	retention time.Duration
	index     map[string]types.TemplateRecord
}

// New opens the cache at cfg.Dir, creating the directory if needed, and
// populates the in-memory index by parsing every .json entry. Corrupt entries
// are skipped, not failed on.
func New(cfg types.CacheConfig) (*Cache, error) {
	if cfg.Dir == "" {
		cfg.Dir = ".template-cache"
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", cfg.Dir, err)
	}

	c := &Cache{
		dir:       cfg.Dir,
		retention: cfg.Retention,
		index:     make(map[string]types.TemplateRecord),
	}

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading cache directory %s: %w", cfg.Dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(cfg.Dir, entry.Name()))
		if err != nil {
			continue
		}
		var record types.TemplateRecord
		if err := json.Unmarshal(data, &record); err != nil || record.ID == "" {
			continue
		}
		c.index[record.ID] = record
	}

	return c, nil
}

// Get returns the cached record for id. The second return value reports
// whether the record was present.
func (c *Cache) Get(id string) (types.TemplateRecord, bool) {
	record, ok := c.index[id]
	return record, ok
}

// Put stores the record in the index and persists it to one file in the cache
// directory, overwriting any previous entry with the same ID.
func (c *Cache) Put(record types.TemplateRecord) error {
	if record.ID == "" {
		return fmt.Errorf("cannot cache template with empty ID")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling template %s: %w", record.ID, err)
	}
	if err := os.WriteFile(c.entryPath(record.ID), data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", record.ID, err)
	}

	c.index[record.ID] = record
	return nil
}

// List returns all cached records, ordered by ID for deterministic output.
func (c *Cache) List() []types.TemplateRecord {
	records := make([]types.TemplateRecord, 0, len(c.index))
	for _, r := range c.index {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// Len returns the number of indexed entries.
func (c *Cache) Len() int { return len(c.index) }

// Sweep removes every entry whose LastUpdated is older than the retention
// window, from both the index and disk. Deletion is best-effort: a missing
// file is not an error. It returns the IDs of evicted entries.
func (c *Cache) Sweep() ([]string, error) {
	cutoff := time.Now().Add(-c.retention)
	var evicted []string

	for id, record := range c.index {
		if !record.LastUpdated.Before(cutoff) {
			continue
		}
		if err := os.Remove(c.entryPath(id)); err != nil && !os.IsNotExist(err) {
			return evicted, fmt.Errorf("removing cache entry %s: %w", id, err)
		}
		delete(c.index, id)
		evicted = append(evicted, id)
	}

	sort.Strings(evicted)
	return evicted, nil
}

// Clear removes all entries from the index and disk and returns the number
// removed.
func (c *Cache) Clear() (int, error) {
	removed := 0
	for id := range c.index {
		if err := os.Remove(c.entryPath(id)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("removing cache entry %s: %w", id, err)
		}
		delete(c.index, id)
		removed++
	}
	return removed, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string { return c.dir }

// entryPath maps a template ID to its file, replacing characters that are not
// filesystem-safe.
func (c *Cache) entryPath(id string) string {
	safe := strings.NewReplacer("/", "-", ":", "-", "\\", "-").Replace(id)
	return filepath.Join(c.dir, safe+".json")
}
