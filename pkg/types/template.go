// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TemplateSource identifies where a template was resolved from.
type TemplateSource string

const (
	SourceRemoteCatalog  TemplateSource = "remote-catalog"
	SourcePaperExtracted TemplateSource = "paper-extracted"
	SourceLocalCache     TemplateSource = "local-cache"
)

// FileKind classifies a template file by its role in the document build.
type FileKind string

const (
	KindDocument      FileKind = "document"
	KindDocumentClass FileKind = "documentclass"
	KindStyle         FileKind = "style"
	KindBibliography  FileKind = "bibliography"
	KindAsset         FileKind = "asset"
	KindOther         FileKind = "other"
)

// TemplateFile is one file within a template bundle.
type TemplateFile struct {
	// Path is the file's location relative to the project root.
	Path string `json:"path" yaml:"path"`

	// Content is the full file content.
	Content string `json:"content" yaml:"content"`

	// Kind classifies the file's role.
	Kind FileKind `json:"kind" yaml:"kind"`

	// Required marks the compilation entry point. Exactly one file per
	// template has Required=true and Kind=KindDocument.
	Required bool `json:"required" yaml:"required"`
}

// TemplateMetadata carries descriptive fields used for search filtering and
// sort tie-breaks.
type TemplateMetadata struct {
	// Version is the template's published version string.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Authors lists the template maintainers in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// License is the template license identifier (e.g. "LPPL-1.3c").
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// Journal is the journal or venue the template targets.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Publisher is the publishing organization.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	// Categories lists catalog categories the template belongs to.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Description is a free-form summary used for keyword search.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Tags are free-form labels (e.g. "two-column", "math").
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// LastModified is the upstream modification timestamp.
	LastModified time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`

	// Popularity counts downloads or uses; used only for sort tie-breaks.
	Popularity int `json:"popularity,omitempty" yaml:"popularity,omitempty"`

	// Rating is the catalog rating in [0,5]; used as the relevance score.
	Rating float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// TemplateRecord is a resolved, reusable document template.
type TemplateRecord struct {
	// ID is a stable identifier, unique within a source namespace
	// ("overleaf:", "arxiv-", or bare for local templates).
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable template name.
	Name string `json:"name" yaml:"name"`

	// Source records where the template was resolved from.
	Source TemplateSource `json:"source" yaml:"source"`

	// Files is the ordered list of files in the bundle.
	Files []TemplateFile `json:"files" yaml:"files"`

	// Metadata carries descriptive fields for search and display.
	Metadata TemplateMetadata `json:"metadata" yaml:"metadata"`

	// LastUpdated drives the cache eviction policy.
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`
}

// MainFile returns the required document file, or nil if the record has none.
func (r *TemplateRecord) MainFile() *TemplateFile {
	for i := range r.Files {
		if r.Files[i].Required && r.Files[i].Kind == KindDocument {
			return &r.Files[i]
		}
	}
	return nil
}
