// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// JournalRequirements describes a journal's submission constraints.
type JournalRequirements struct {
	// Name is the journal's full name.
	Name string `json:"name" yaml:"name"`

	// Publisher is the publishing organization.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// PageLimit is the maximum page count (0 = unlimited).
	PageLimit int `json:"page_limit,omitempty" yaml:"page_limit,omitempty"`

	// WordLimit is the maximum word count (0 = unlimited).
	WordLimit int `json:"word_limit,omitempty" yaml:"word_limit,omitempty"`

	// ReferenceStyle is the required bibliography style (e.g. "ieeetr").
	ReferenceStyle string `json:"reference_style,omitempty" yaml:"reference_style,omitempty"`

	// AbstractWordLimit is the maximum abstract length in words (0 = unlimited).
	AbstractWordLimit int `json:"abstract_word_limit,omitempty" yaml:"abstract_word_limit,omitempty"`

	// KeywordsRequired indicates whether a keyword list is mandatory.
	KeywordsRequired bool `json:"keywords_required,omitempty" yaml:"keywords_required,omitempty"`
}

// CompilationReport is the result of the compilation check.
type CompilationReport struct {
	// Success reports whether the compiler ran to completion without errors.
	Success bool `json:"success"`

	// DocumentProduced reports whether a final PDF was written.
	DocumentProduced bool `json:"document_produced"`

	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	// LogPath points at the compiler log, when one was written.
	LogPath string `json:"log_path,omitempty"`
}

// ComplianceReport is the result of the journal-compliance check. All fields
// default to pass when no journal is specified.
type ComplianceReport struct {
	PageLimit      bool `json:"page_limit"`
	WordLimit      bool `json:"word_limit"`
	ReferenceStyle bool `json:"reference_style"`

	// Issues records non-fatal problems (e.g. journal lookup failures).
	Issues []string `json:"issues,omitempty"`
}

// FileStructureReport is the result of the file-structure check.
type FileStructureReport struct {
	MainDocument bool `json:"main_document"`
	Bibliography bool `json:"bibliography"`
	FiguresDir   bool `json:"figures_dir"`

	// Missing lists expected files or directories that were not found.
	Missing []string `json:"missing,omitempty"`
}

// SupplementaryReport is the result of the supplementary-materials check.
// The check is an explicit stub: Implemented is always false and the other
// fields carry fixed defaults. Results are informational only.
type SupplementaryReport struct {
	Implemented bool     `json:"implemented"`
	Notes       []string `json:"notes,omitempty"`
}

// ValidationReport aggregates the four submission checks for one project.
// It is produced per invocation and never persisted.
type ValidationReport struct {
	ProjectPath   string              `json:"project_path"`
	Journal       string              `json:"journal,omitempty"`
	Compilation   CompilationReport   `json:"compilation"`
	Compliance    ComplianceReport    `json:"compliance"`
	FileStructure FileStructureReport `json:"file_structure"`
	Supplementary SupplementaryReport `json:"supplementary"`
}

// Passed reports the aggregate result: compilation, the three compliance
// fields, and the main-document and bibliography structure checks must all
// hold. Supplementary results do not affect the outcome.
func (r *ValidationReport) Passed() bool {
	return r.Compilation.Success &&
		r.Compliance.PageLimit && r.Compliance.WordLimit && r.Compliance.ReferenceStyle &&
		r.FileStructure.MainDocument && r.FileStructure.Bibliography
}
