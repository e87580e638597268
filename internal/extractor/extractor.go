// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extractor turns an academic paper's source bundle into a reusable,
// sanitized template.
package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// ErrNoMainFile is returned when a source bundle contains no document-class
// file and no document-typed file to fall back to.
var ErrNoMainFile = errors.New("no main document file in source bundle")

// ExtractionError reports that the paper repository could not provide a
// source bundle.
type ExtractionError struct {
	PaperID string
	Reason  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %s", e.PaperID, e.Reason)
}

// DefaultOptions enables both sanitization passes.
func DefaultOptions() types.ExtractOptions {
	return types.ExtractOptions{RemovePersonalInfo: true, GeneralizePaths: true}
}

// Extractor builds templates from paper source bundles.
type Extractor struct {
	repo Repository
}

// New returns an extractor backed by the given paper repository.
func New(repo Repository) *Extractor {
	return &Extractor{repo: repo}
}

// Extract downloads the source bundle for paperID, identifies and parses the
// primary document, derives tags, optionally sanitizes the content, and
// returns the assembled template. The record id is "arxiv-" + paperID, so
// repeated extraction of the same paper is cache-coherent.
func (e *Extractor) Extract(paperID string, opts types.ExtractOptions) (types.TemplateRecord, error) {
	result, err := e.repo.DownloadSource(paperID)
	if err != nil {
		return types.TemplateRecord{}, fmt.Errorf("downloading source for %s: %w", paperID, err)
	}
	if result.Status != StatusSuccess {
		reason := result.Error
		if reason == "" {
			reason = "source download failed"
		}
		return types.TemplateRecord{}, &ExtractionError{PaperID: paperID, Reason: reason}
	}

	mainIdx := findMainFile(result.Files)
	if mainIdx < 0 {
		return types.TemplateRecord{}, fmt.Errorf("bundle for %s: %w", paperID, ErrNoMainFile)
	}

	structure := ParseStructure(result.Files[mainIdx].Content)
	tags := DeriveTags(structure)

	files := make([]types.TemplateFile, 0, len(result.Files))
	for i, f := range result.Files {
		content := f.Content
		if opts.RemovePersonalInfo {
			content = RemovePersonalInfo(content)
		}
		if opts.GeneralizePaths {
			content = GeneralizePaths(content)
		}
		files = append(files, types.TemplateFile{
			Path:     f.Path,
			Content:  content,
			Kind:     classifyFile(f.Path),
			Required: i == mainIdx,
		})
	}

	record := types.TemplateRecord{
		ID:     "arxiv-" + paperID,
		Name:   "Extracted from arXiv " + paperID,
		Source: types.SourcePaperExtracted,
		Files:  files,
		Metadata: types.TemplateMetadata{
			Description: fmt.Sprintf("Template extracted from paper %s (%s class, %d sections)",
				paperID, structure.DocumentClass, len(structure.Sections)),
			Tags: tags,
		},
		LastUpdated: time.Now().UTC(),
	}
	return record, nil
}

// SearchMetadata exposes the repository's metadata search.
func (e *Extractor) SearchMetadata(query string, maxResults int) ([]PaperMetadata, error) {
	return e.repo.SearchMetadata(query, maxResults)
}

// findMainFile returns the index of the primary document: the first file
// containing a document-class declaration, falling back to the first
// document-typed file. Returns -1 when neither exists.
func findMainFile(files []BundleFile) int {
	for i, f := range files {
		if documentClassPattern.MatchString(f.Content) {
			return i
		}
	}
	for i, f := range files {
		if classifyFile(f.Path) == types.KindDocument {
			return i
		}
	}
	return -1
}

// classifyFile maps a bundle path to a template file kind by extension.
func classifyFile(p string) types.FileKind {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".tex":
		return types.KindDocument
	case ".cls":
		return types.KindDocumentClass
	case ".sty", ".bst":
		return types.KindStyle
	case ".bib":
		return types.KindBibliography
	case ".png", ".jpg", ".jpeg", ".pdf", ".eps", ".svg":
		return types.KindAsset
	default:
		return types.KindOther
	}
}
