// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog implements the remote template catalog adapter. The catalog
// is seeded in-process and stands in for a real template service: Search
// filters the seeded records and Fetch simulates a remote lookup with a fixed
// latency. A real implementation would replace the transport while keeping
// the same contract.
package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// fetchLatency simulates remote round-trip time on Fetch. Tests zero this to
// avoid real sleeps.
var fetchLatency = 150 * time.Millisecond

// SortKey selects the search result ordering.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByPopularity SortKey = "popularity"
	SortByRelevance  SortKey = "relevance"
)

// Filter holds the search parameters. Empty fields match everything.
type Filter struct {
	// Query is matched as a substring against the journal and template names.
	Query string

	// Publisher is matched as a substring against the publisher field.
	Publisher string

	// Categories matches records belonging to any of the listed categories.
	Categories []string

	// Keywords are matched as substrings against the combined text of
	// name, description, and tags.
	Keywords []string

	// SortBy orders results by date, popularity, or relevance (rating).
	// Empty means relevance.
	SortBy SortKey

	// Ascending flips the default descending order.
	Ascending bool
}

// Adapter exposes the seeded template catalog.
type Adapter struct {
	records []types.TemplateRecord
}

// New returns an adapter over the built-in seed catalog.
func New() *Adapter {
	return &Adapter{records: seedCatalog()}
}

// Search filters the catalog and returns matching records in the requested
// order.
func (a *Adapter) Search(filter Filter) ([]types.TemplateRecord, error) {
	var results []types.TemplateRecord
	for _, r := range a.records {
		if Matches(r, filter) {
			results = append(results, r)
		}
	}
	SortRecords(results, filter.SortBy, filter.Ascending)
	return results, nil
}

// Fetch returns the catalog record for id. Unknown ids produce a synthesized
// minimal placeholder record representing a best-effort remote lookup; the
// placeholder is deterministic and carries a required main document file.
func (a *Adapter) Fetch(id string) (types.TemplateRecord, error) {
	canonical, err := NormalizeID(id)
	if err != nil {
		return types.TemplateRecord{}, err
	}

	if fetchLatency > 0 {
		time.Sleep(fetchLatency)
	}

	for _, r := range a.records {
		if r.ID == canonical {
			return r, nil
		}
	}
	return placeholderRecord(canonical), nil
}

// NormalizeID extracts the canonical "overleaf:<slug>" id from a bare slug, a
// prefixed id, or a full catalog URL.
func NormalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("empty template id")
	}

	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		u, err := url.Parse(id)
		if err != nil {
			return "", fmt.Errorf("parsing catalog URL %q: %w", id, err)
		}
		slug := strings.Trim(u.Path, "/")
		if i := strings.LastIndex(slug, "/"); i >= 0 {
			slug = slug[i+1:]
		}
		if slug == "" {
			return "", fmt.Errorf("catalog URL %q has no template slug", id)
		}
		return "overleaf:" + slug, nil
	}

	if strings.HasPrefix(id, "overleaf:") {
		return id, nil
	}
	return "overleaf:" + id, nil
}

// Matches reports whether the record satisfies the filter. The resolver reuses
// this predicate for local cache entries so both sources filter identically.
func Matches(r types.TemplateRecord, f Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Metadata.Journal), q) {
			return false
		}
	}

	if f.Publisher != "" &&
		!strings.Contains(strings.ToLower(r.Metadata.Publisher), strings.ToLower(f.Publisher)) {
		return false
	}

	if len(f.Categories) > 0 && !anyCategory(r.Metadata.Categories, f.Categories) {
		return false
	}

	if len(f.Keywords) > 0 {
		combined := strings.ToLower(r.Name + " " + r.Metadata.Description + " " + strings.Join(r.Metadata.Tags, " "))
		for _, kw := range f.Keywords {
			if !strings.Contains(combined, strings.ToLower(kw)) {
				return false
			}
		}
	}

	return true
}

// SortRecords orders records by the requested key. The default is relevance
// (rating), descending. Popularity breaks rating ties.
func SortRecords(records []types.TemplateRecord, key SortKey, ascending bool) {
	less := func(i, j int) bool {
		a, b := records[i], records[j]
		switch key {
		case SortByDate:
			if !a.Metadata.LastModified.Equal(b.Metadata.LastModified) {
				return a.Metadata.LastModified.Before(b.Metadata.LastModified)
			}
		case SortByPopularity:
			if a.Metadata.Popularity != b.Metadata.Popularity {
				return a.Metadata.Popularity < b.Metadata.Popularity
			}
		default: // relevance
			if a.Metadata.Rating != b.Metadata.Rating {
				return a.Metadata.Rating < b.Metadata.Rating
			}
			if a.Metadata.Popularity != b.Metadata.Popularity {
				return a.Metadata.Popularity < b.Metadata.Popularity
			}
		}
		return a.ID < b.ID
	}

	sort.SliceStable(records, func(i, j int) bool {
		if ascending {
			return less(i, j)
		}
		return less(j, i)
	})
}

func anyCategory(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// placeholderRecord synthesizes a minimal record for an id that is not in the
// seed catalog. The content is deterministic so repeated fetches are
// cache-coherent.
func placeholderRecord(id string) types.TemplateRecord {
	slug := strings.TrimPrefix(id, "overleaf:")
	name := titleCase(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
	return types.TemplateRecord{
		ID:     id,
		Name:   name,
		Source: types.SourceRemoteCatalog,
		Files: []types.TemplateFile{
			{
				Path:     "main.tex",
				Content:  placeholderDocument(name),
				Kind:     types.KindDocument,
				Required: true,
			},
			{Path: "references.bib", Content: "", Kind: types.KindBibliography},
		},
		Metadata: types.TemplateMetadata{
			Description: "Placeholder template synthesized for " + id,
			Tags:        []string{"placeholder"},
		},
		LastUpdated: time.Now().UTC(),
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func placeholderDocument(name string) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{graphicx}\n\n")
	b.WriteString("\\title{{{PROJECT_NAME}}}\n")
	b.WriteString("\\author{{{AUTHOR_NAME}}}\n\n")
	b.WriteString("\\begin{document}\n\\maketitle\n\n")
	b.WriteString("\\begin{abstract}\n{{ABSTRACT}}\n\\end{abstract}\n\n")
	fmt.Fprintf(&b, "\\section{Introduction}\n%% %s starts here.\n\n", name)
	b.WriteString("\\bibliographystyle{plain}\n\\bibliography{references}\n\n")
	b.WriteString("\\end{document}\n")
	return b.String()
}
