// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ManifestFile is the name of the per-project manifest written at
// materialization time.
const ManifestFile = ".research-project.json"

// ProjectManifest binds a materialized project directory to the template and
// metadata it was created from. It is written once by the initializer;
// validation and packaging stages treat it as read-only.
type ProjectManifest struct {
	// ProjectID is a random UUID assigned at materialization time.
	ProjectID string `json:"project_id"`

	// Name is the project name supplied at initialization.
	Name string `json:"name"`

	// TemplateID identifies the template the project was created from.
	TemplateID string `json:"template_id"`

	// TemplateSource records the template's origin.
	TemplateSource TemplateSource `json:"template_source"`

	// JournalTarget is the submission target journal, if one was chosen.
	JournalTarget string `json:"journal_target,omitempty"`

	// CreatedAt is the materialization timestamp.
	CreatedAt time.Time `json:"created_at"`

	// LastModified mirrors CreatedAt; the manifest is never rewritten.
	LastModified time.Time `json:"last_modified"`

	// Metadata is an arbitrary string bag (title, keywords, notes).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AuthorInfo holds author fields substituted into template placeholders.
type AuthorInfo struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ProjectInfo holds paper-level fields substituted into template placeholders.
// Empty fields leave the template's placeholder text untouched.
type ProjectInfo struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}
