// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// Predicate decides whether a checklist item is already satisfied for the
// project. Predicates inspect the project directory only; they never mutate
// it.
type Predicate func(projectPath string, req *types.JournalRequirements) bool

// checklistEntry pairs an item's static description with its predicate.
type checklistEntry struct {
	item      types.ChecklistItem
	predicate Predicate
}

// Checklist generates submission checklist items with pluggable completion
// predicates.
type Checklist struct {
	entries []checklistEntry
}

// NewChecklist returns a checklist over the default item set.
func NewChecklist() *Checklist {
	return &Checklist{entries: defaultEntries()}
}

// Override replaces the predicate for the item with the given id. Unknown ids
// are ignored.
func (c *Checklist) Override(id string, predicate Predicate) {
	for i := range c.entries {
		if c.entries[i].item.ID == id {
			c.entries[i].predicate = predicate
		}
	}
}

// Generate evaluates every item's predicate against the project and returns
// the resulting checklist. req may be nil when no journal is targeted.
func (c *Checklist) Generate(projectPath string, req *types.JournalRequirements) []types.ChecklistItem {
	items := make([]types.ChecklistItem, 0, len(c.entries))
	for _, entry := range c.entries {
		item := entry.item
		if item.ID == "keywords" && req != nil && req.KeywordsRequired {
			item.Required = true
		}
		if entry.predicate != nil {
			item.Completed = entry.predicate(projectPath, req)
		}
		items = append(items, item)
	}
	return items
}

func defaultEntries() []checklistEntry {
	return []checklistEntry{
		{
			item: types.ChecklistItem{
				ID:          "compilation",
				Title:       "Manuscript compiles cleanly",
				Description: "The main document compiles to PDF without errors.",
				Required:    true,
				Category:    "manuscript",
			},
			predicate: func(projectPath string, _ *types.JournalRequirements) bool {
				main, err := FindMainDocument(projectPath)
				if err != nil {
					return false
				}
				base := strings.TrimSuffix(main, filepath.Ext(main))
				_, err = os.Stat(filepath.Join(projectPath, base+".pdf"))
				return err == nil
			},
		},
		{
			item: types.ChecklistItem{
				ID:          "bibliography-format",
				Title:       "Bibliography in required format",
				Description: "References use the journal's citation style.",
				Required:    true,
				Category:    "references",
			},
			predicate: func(projectPath string, req *types.JournalRequirements) bool {
				main, err := FindMainDocument(projectPath)
				if err != nil {
					return false
				}
				data, err := os.ReadFile(filepath.Join(projectPath, main))
				if err != nil {
					return false
				}
				style := bibliographyStyle(string(data))
				if style == "" {
					return false
				}
				if req == nil || req.ReferenceStyle == "" {
					return true
				}
				return style == req.ReferenceStyle
			},
		},
		{
			item: types.ChecklistItem{
				ID:          "figure-quality",
				Title:       "Figures meet resolution requirements",
				Description: "All figures are print quality and referenced from the text.",
				Required:    true,
				Category:    "figures",
			},
			predicate: func(projectPath string, _ *types.JournalRequirements) bool {
				entries, err := os.ReadDir(filepath.Join(projectPath, "figures"))
				return err == nil && len(entries) > 0
			},
		},
		{
			item: types.ChecklistItem{
				ID:          "abstract-length",
				Title:       "Abstract within the word limit",
				Description: "The abstract respects the journal's word limit.",
				Required:    true,
				Category:    "manuscript",
			},
			predicate: func(projectPath string, req *types.JournalRequirements) bool {
				main, err := FindMainDocument(projectPath)
				if err != nil {
					return false
				}
				data, err := os.ReadFile(filepath.Join(projectPath, main))
				if err != nil {
					return false
				}
				abstract := extractAbstract(string(data))
				if abstract == "" {
					return false
				}
				if req == nil || req.AbstractWordLimit == 0 {
					return true
				}
				return CountWords(abstract) <= req.AbstractWordLimit
			},
		},
		{
			item: types.ChecklistItem{
				ID:          "keywords",
				Title:       "Keywords supplied",
				Description: "The manuscript declares its keyword list.",
				Required:    false,
				Category:    "manuscript",
			},
			predicate: func(projectPath string, _ *types.JournalRequirements) bool {
				main, err := FindMainDocument(projectPath)
				if err != nil {
					return false
				}
				data, err := os.ReadFile(filepath.Join(projectPath, main))
				if err != nil {
					return false
				}
				return strings.Contains(string(data), `\keywords{`) ||
					strings.Contains(string(data), `\begin{IEEEkeywords}`)
			},
		},
		{
			item: types.ChecklistItem{
				ID:          "cover-letter",
				Title:       "Cover letter drafted",
				Description: "A cover letter addressed to the editor is present.",
				Required:    false,
				Category:    "submission",
			},
			predicate: func(projectPath string, _ *types.JournalRequirements) bool {
				for _, name := range []string{"cover-letter.tex", "cover-letter.md", "cover_letter.tex", "cover_letter.md"} {
					if _, err := os.Stat(filepath.Join(projectPath, name)); err == nil {
						return true
					}
				}
				return false
			},
		},
	}
}

// extractAbstract returns the text between \begin{abstract} and
// \end{abstract}, or "" when the environment is absent.
func extractAbstract(content string) string {
	const begin, end = `\begin{abstract}`, `\end{abstract}`
	start := strings.Index(content, begin)
	if start < 0 {
		return ""
	}
	rest := content[start+len(begin):]
	stop := strings.Index(rest, end)
	if stop < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:stop])
}
