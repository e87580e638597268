// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// wordsPerPage is the estimate used to derive a page count from prose when no
// compiled document is available.
const wordsPerPage = 400

// JournalFinder resolves a journal name to its submission requirements.
type JournalFinder interface {
	FindJournal(name string) (types.JournalRequirements, error)
}

// Pipeline runs the validation checks against a project directory. The four
// checks are independent: each produces its own report section and a failure
// in one never prevents the others from running.
type Pipeline struct {
	compiler Compiler
	journals JournalFinder
}

// NewPipeline returns a validation pipeline over the given collaborators.
func NewPipeline(compiler Compiler, journals JournalFinder) *Pipeline {
	return &Pipeline{compiler: compiler, journals: journals}
}

// Validate runs all checks and assembles the combined report. journalName may
// be empty, in which case compliance passes permissively with a note.
func (p *Pipeline) Validate(projectPath, journalName string) (types.ValidationReport, error) {
	if _, err := os.Stat(projectPath); err != nil {
		return types.ValidationReport{}, fmt.Errorf("project directory: %w", err)
	}

	report := types.ValidationReport{
		ProjectPath: projectPath,
		Journal:     journalName,
	}

	compilation, err := p.compiler.Compile(projectPath)
	if err != nil {
		compilation.Success = false
		compilation.Errors = append(compilation.Errors, err.Error())
	}
	report.Compilation = compilation

	report.Compliance = p.checkCompliance(projectPath, journalName)
	report.FileStructure = checkFileStructure(projectPath)
	report.Supplementary = checkSupplementary()

	return report, nil
}

// checkCompliance measures the manuscript against the journal's limits.
// Unknown journals and missing limits resolve permissively: a limit of zero
// always passes, and a failed journal lookup passes all three gates while
// recording the lookup failure as an issue.
func (p *Pipeline) checkCompliance(projectPath, journalName string) types.ComplianceReport {
	report := types.ComplianceReport{PageLimit: true, WordLimit: true, ReferenceStyle: true}

	if journalName == "" {
		report.Issues = append(report.Issues, "no target journal set; compliance not enforced")
		return report
	}

	req, err := p.journals.FindJournal(journalName)
	if err != nil {
		report.Issues = append(report.Issues, fmt.Sprintf("journal lookup: %v", err))
		return report
	}

	mainDoc, err := FindMainDocument(projectPath)
	if err != nil {
		report.Issues = append(report.Issues, err.Error())
		return report
	}
	data, err := os.ReadFile(filepath.Join(projectPath, mainDoc))
	if err != nil {
		report.Issues = append(report.Issues, fmt.Sprintf("reading %s: %v", mainDoc, err))
		return report
	}
	content := string(data)

	words := CountWords(content)
	if req.WordLimit > 0 && words > req.WordLimit {
		report.WordLimit = false
		report.Issues = append(report.Issues,
			fmt.Sprintf("manuscript has ~%d words, limit is %d", words, req.WordLimit))
	}

	pages := EstimatePages(words)
	if req.PageLimit > 0 && pages > req.PageLimit {
		report.PageLimit = false
		report.Issues = append(report.Issues,
			fmt.Sprintf("manuscript is ~%d pages, limit is %d", pages, req.PageLimit))
	}

	if req.ReferenceStyle != "" {
		style := bibliographyStyle(content)
		if style != "" && style != req.ReferenceStyle {
			report.ReferenceStyle = false
			report.Issues = append(report.Issues,
				fmt.Sprintf("bibliography style %q does not match required %q", style, req.ReferenceStyle))
		}
	}

	return report
}

// checkFileStructure verifies the expected project layout: a main document, a
// bibliography file, and a figures directory.
func checkFileStructure(projectPath string) types.FileStructureReport {
	report := types.FileStructureReport{}

	if _, err := FindMainDocument(projectPath); err == nil {
		report.MainDocument = true
	} else {
		report.Missing = append(report.Missing, "main .tex document with \\documentclass")
	}

	entries, err := os.ReadDir(projectPath)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == ".bib" {
				report.Bibliography = true
				break
			}
		}
	}
	if !report.Bibliography {
		report.Missing = append(report.Missing, ".bib bibliography file")
	}

	if info, err := os.Stat(filepath.Join(projectPath, "figures")); err == nil && info.IsDir() {
		report.FiguresDir = true
	} else {
		report.Missing = append(report.Missing, "figures/ directory")
	}

	return report
}

// checkSupplementary is a fixed stub. Supplementary material validation needs
// per-journal rules that are not modeled yet.
func checkSupplementary() types.SupplementaryReport {
	return types.SupplementaryReport{
		Implemented: false,
		Notes:       []string{"supplementary material validation is not implemented"},
	}
}

var (
	commandPattern = regexp.MustCompile(`\\[a-zA-Z@]+(\[[^\]]*\])?(\{[^{}]*\})?`)
	commentPattern = regexp.MustCompile(`(?m)%.*$`)
	bibStyleRef    = regexp.MustCompile(`\\bibliographystyle\{([^{}]+)\}`)
)

// CountWords estimates the manuscript's prose word count. LaTeX commands and
// comments are stripped first, so the count reflects body text, not markup.
func CountWords(content string) int {
	stripped := commentPattern.ReplaceAllString(content, "")
	stripped = commandPattern.ReplaceAllString(stripped, " ")
	count := 0
	for _, token := range strings.Fields(stripped) {
		if strings.IndexFunc(token, isLetter) >= 0 {
			count++
		}
	}
	return count
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// EstimatePages converts a word count to an approximate page count.
func EstimatePages(words int) int {
	if words == 0 {
		return 0
	}
	return (words + wordsPerPage - 1) / wordsPerPage
}

func bibliographyStyle(content string) string {
	if m := bibStyleRef.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}
