// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal provides the journal-requirements collaborator: a seeded
// catalog of submission constraints, optionally overridden from a YAML file.
// Relevance scoring and journal matching live outside this module.
package journal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// ErrUnknownJournal is returned when a journal name has no catalog entry.
var ErrUnknownJournal = errors.New("unknown journal")

// Catalog looks up journal requirements by name.
type Catalog struct {
	journals []types.JournalRequirements
}

// NewCatalog returns a catalog over the built-in journal set.
func NewCatalog() *Catalog {
	return &Catalog{journals: seedJournals()}
}

// LoadCatalog reads a YAML list of journal requirements from path, replacing
// the built-in set.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal catalog: %w", err)
	}
	var journals []types.JournalRequirements
	if err := yaml.Unmarshal(data, &journals); err != nil {
		return nil, fmt.Errorf("parsing journal catalog: %w", err)
	}
	return &Catalog{journals: journals}, nil
}

// FindJournal returns the requirements for name. Matching is case-insensitive
// and accepts a substring of the full journal name.
func (c *Catalog) FindJournal(name string) (types.JournalRequirements, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return types.JournalRequirements{}, fmt.Errorf("empty journal name: %w", ErrUnknownJournal)
	}

	for _, j := range c.journals {
		if strings.ToLower(j.Name) == needle {
			return j, nil
		}
	}
	for _, j := range c.journals {
		if strings.Contains(strings.ToLower(j.Name), needle) {
			return j, nil
		}
	}
	return types.JournalRequirements{}, fmt.Errorf("journal %q: %w", name, ErrUnknownJournal)
}

// seedJournals returns the built-in requirements set. Limits are indicative,
// not authoritative; a production deployment overrides them via LoadCatalog.
func seedJournals() []types.JournalRequirements {
	return []types.JournalRequirements{
		{
			Name:              "IEEE Transactions on Software Engineering",
			Publisher:         "IEEE",
			PageLimit:         14,
			WordLimit:         12000,
			ReferenceStyle:    "IEEEtran",
			AbstractWordLimit: 250,
			KeywordsRequired:  true,
		},
		{
			Name:              "ACM Computing Surveys",
			Publisher:         "ACM",
			PageLimit:         35,
			WordLimit:         30000,
			ReferenceStyle:    "ACM-Reference-Format",
			AbstractWordLimit: 300,
			KeywordsRequired:  true,
		},
		{
			Name:              "Journal of Machine Learning Research",
			Publisher:         "JMLR",
			WordLimit:         0,
			ReferenceStyle:    "plainnat",
			AbstractWordLimit: 300,
		},
		{
			Name:              "Nature",
			Publisher:         "Springer Nature",
			PageLimit:         5,
			WordLimit:         4300,
			ReferenceStyle:    "naturemag",
			AbstractWordLimit: 200,
		},
		{
			Name:              "Elsevier Information Sciences",
			Publisher:         "Elsevier",
			PageLimit:         40,
			WordLimit:         15000,
			ReferenceStyle:    "elsarticle-num",
			AbstractWordLimit: 250,
			KeywordsRequired:  true,
		},
	}
}
