// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolver unifies template search and fetch across the remote
// catalog, the paper source extractor, and the local cache.
package resolver

import (
	"errors"
	"fmt"

	"github.com/pdiddy/submission-engine/internal/cache"
	"github.com/pdiddy/submission-engine/internal/catalog"
	"github.com/pdiddy/submission-engine/internal/extractor"
	"github.com/pdiddy/submission-engine/pkg/types"
)

// ErrNotFound is returned when a local-cache id has no cached entry.
var ErrNotFound = errors.New("template not found")

// SearchError reports that a template source failed during a fan-out search.
// Search fails closed: a failing source aborts the whole search rather than
// silently degrading to partial results.
type SearchError struct {
	Source types.TemplateSource
	Err    error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search against %s failed: %v", e.Source, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Catalog is the remote catalog surface the resolver consumes. The catalog
// adapter implements it; tests supply fakes.
type Catalog interface {
	Search(filter catalog.Filter) ([]types.TemplateRecord, error)
	Fetch(id string) (types.TemplateRecord, error)
}

// Extractor is the paper-extraction surface the resolver consumes.
type Extractor interface {
	Extract(paperID string, opts types.ExtractOptions) (types.TemplateRecord, error)
}

// Resolver coordinates the three template sources. All dependencies are
// injected; in particular the cache is constructed by the caller so tests can
// supply an isolated one.
type Resolver struct {
	catalog   Catalog
	extractor Extractor
	cache     *cache.Cache
}

// New returns a resolver over the given sources.
func New(cat Catalog, ext Extractor, c *cache.Cache) *Resolver {
	return &Resolver{catalog: cat, extractor: ext, cache: c}
}

// Search queries the remote catalog and the local cache, concatenates the
// results (remote first), removes duplicate ids keeping the first occurrence,
// and applies the requested sort.
func (r *Resolver) Search(filter catalog.Filter) ([]types.TemplateRecord, error) {
	remote, err := r.catalog.Search(filter)
	if err != nil {
		return nil, &SearchError{Source: types.SourceRemoteCatalog, Err: err}
	}

	combined := remote
	for _, record := range r.cache.List() {
		if catalog.Matches(record, filter) {
			combined = append(combined, record)
		}
	}

	deduped := dedupeByID(combined)
	catalog.SortRecords(deduped, filter.SortBy, filter.Ascending)
	return deduped, nil
}

// Fetch resolves a template id to a record. When source is empty it is
// auto-detected from the id's syntax. Every successful fetch from a non-cache
// source is written through to the cache before the record is returned.
func (r *Resolver) Fetch(id string, source types.TemplateSource) (types.TemplateRecord, error) {
	if source == "" {
		source = DetectSource(id)
	}

	switch source {
	case types.SourceRemoteCatalog:
		canonical, err := catalog.NormalizeID(id)
		if err != nil {
			return types.TemplateRecord{}, err
		}
		if record, ok := r.cache.Get(canonical); ok {
			return record, nil
		}
		record, err := r.catalog.Fetch(canonical)
		if err != nil {
			return types.TemplateRecord{}, fmt.Errorf("fetching %s from catalog: %w", canonical, err)
		}
		if err := r.cache.Put(record); err != nil {
			return types.TemplateRecord{}, err
		}
		return record, nil

	case types.SourcePaperExtracted:
		paperID := arxivPaperID(id)
		if paperID == "" {
			return types.TemplateRecord{}, fmt.Errorf("id %q does not name an arXiv paper", id)
		}
		if record, ok := r.cache.Get("arxiv-" + paperID); ok {
			return record, nil
		}
		return r.ExtractFromPaper(paperID, extractor.DefaultOptions())

	case types.SourceLocalCache:
		record, ok := r.cache.Get(id)
		if !ok {
			return types.TemplateRecord{}, fmt.Errorf("template %q: %w", id, ErrNotFound)
		}
		return record, nil

	default:
		return types.TemplateRecord{}, fmt.Errorf("unknown template source %q", source)
	}
}

// ExtractFromPaper delegates to the paper source extractor, writes the result
// through to the cache, and returns it.
func (r *Resolver) ExtractFromPaper(paperID string, opts types.ExtractOptions) (types.TemplateRecord, error) {
	record, err := r.extractor.Extract(paperID, opts)
	if err != nil {
		return types.TemplateRecord{}, err
	}
	if err := r.cache.Put(record); err != nil {
		return types.TemplateRecord{}, err
	}
	return record, nil
}

// Cache exposes the injected cache for maintenance operations (sweep, clear).
func (r *Resolver) Cache() *cache.Cache { return r.cache }

// dedupeByID drops records whose id was already seen; the first occurrence
// wins.
func dedupeByID(records []types.TemplateRecord) []types.TemplateRecord {
	seen := make(map[string]bool, len(records))
	deduped := records[:0:0]
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		deduped = append(deduped, r)
	}
	return deduped
}
