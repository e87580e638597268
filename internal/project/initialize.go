// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project materializes a resolved template into a working project
// directory: subdirectories, substituted files, a manifest, and a guide.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// projectSubdirs are created under every project root.
var projectSubdirs = []string{"figures", "data", "sections"}

// Placeholder tokens recognized in template content, substituted in this
// order. Fields the caller leaves empty keep the template's placeholder text.
const (
	tokenTitle       = "{{PROJECT_NAME}}"
	tokenAuthorName  = "{{AUTHOR_NAME}}"
	tokenAffiliation = "{{AUTHOR_AFFILIATION}}"
	tokenEmail       = "{{AUTHOR_EMAIL}}"
	tokenAbstract    = "{{ABSTRACT}}"
	tokenKeywords    = "{{KEYWORDS}}"
)

// Options bundles the initializer's inputs.
type Options struct {
	// Name is the project name recorded in the manifest.
	Name string

	// Path is the project root directory to materialize into.
	Path string

	// Template is the resolved template to materialize.
	Template types.TemplateRecord

	// JournalTarget optionally records the submission target.
	JournalTarget string

	// Author fills the author placeholders when supplied.
	Author *types.AuthorInfo

	// Info fills the title, abstract, and keyword placeholders when supplied.
	Info *types.ProjectInfo
}

// Result reports what the initializer accomplished. Initialization is not
// transactional: partial trees from a failed call are left in place and
// overwritten on retry, and partial failures are reported here, not thrown.
type Result struct {
	Success         bool     `json:"success"`
	ProjectPath     string   `json:"project_path"`
	FilesCreated    []string `json:"files_created"`
	ManifestWritten bool     `json:"manifest_written"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Initialize materializes the template into opts.Path. It creates the project
// root and fixed subdirectories, writes every template file with placeholder
// substitution applied, writes the manifest, and writes a generated guide.
func Initialize(opts Options) Result {
	result := Result{Success: true, ProjectPath: opts.Path}

	if opts.Name == "" || opts.Path == "" {
		result.Success = false
		result.Errors = append(result.Errors, "project name and path are required")
		return result
	}

	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("creating project root: %v", err))
		return result
	}
	for _, sub := range projectSubdirs {
		if err := os.MkdirAll(filepath.Join(opts.Path, sub), 0o755); err != nil {
			result.Success = false
			result.Errors = append(result.Errors, fmt.Sprintf("creating %s/: %v", sub, err))
		}
	}

	for _, f := range opts.Template.Files {
		content := Substitute(f.Content, opts.Info, opts.Author)
		dest := filepath.Join(opts.Path, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			result.Success = false
			result.Errors = append(result.Errors, fmt.Sprintf("creating directory for %s: %v", f.Path, err))
			continue
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			result.Success = false
			result.Errors = append(result.Errors, fmt.Sprintf("writing %s: %v", f.Path, err))
			continue
		}
		result.FilesCreated = append(result.FilesCreated, f.Path)
	}

	manifest := buildManifest(opts)
	if err := writeManifest(opts.Path, manifest); err != nil {
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("writing manifest: %v", err))
	} else {
		result.ManifestWritten = true
		result.FilesCreated = append(result.FilesCreated, types.ManifestFile)
		if err := validateManifestFile(filepath.Join(opts.Path, types.ManifestFile)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("manifest schema validation: %v", err))
		}
	}

	guidePath := filepath.Join(opts.Path, guideFile)
	if err := os.WriteFile(guidePath, []byte(renderGuide(opts, manifest)), 0o644); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("writing guide: %v", err))
	} else {
		result.FilesCreated = append(result.FilesCreated, guideFile)
	}

	return result
}

// Substitute replaces placeholder tokens with the supplied metadata, in a
// fixed order: title, author name, affiliation, email, abstract, keywords.
// Nil or empty fields leave the corresponding tokens untouched.
func Substitute(content string, info *types.ProjectInfo, author *types.AuthorInfo) string {
	if info != nil && info.Title != "" {
		content = strings.ReplaceAll(content, tokenTitle, info.Title)
	}
	if author != nil {
		if author.Name != "" {
			content = strings.ReplaceAll(content, tokenAuthorName, author.Name)
		}
		if author.Affiliation != "" {
			content = strings.ReplaceAll(content, tokenAffiliation, author.Affiliation)
		}
		if author.Email != "" {
			content = strings.ReplaceAll(content, tokenEmail, author.Email)
		}
	}
	if info != nil {
		if info.Abstract != "" {
			content = strings.ReplaceAll(content, tokenAbstract, info.Abstract)
		}
		if len(info.Keywords) > 0 {
			content = strings.ReplaceAll(content, tokenKeywords, strings.Join(info.Keywords, ", "))
		}
	}
	return content
}

func buildManifest(opts Options) types.ProjectManifest {
	now := time.Now().UTC()
	manifest := types.ProjectManifest{
		ProjectID:      uuid.NewString(),
		Name:           opts.Name,
		TemplateID:     opts.Template.ID,
		TemplateSource: opts.Template.Source,
		JournalTarget:  opts.JournalTarget,
		CreatedAt:      now,
		LastModified:   now,
	}
	if opts.Info != nil {
		manifest.Metadata = map[string]string{}
		if opts.Info.Title != "" {
			manifest.Metadata["title"] = opts.Info.Title
		}
		if len(opts.Info.Keywords) > 0 {
			manifest.Metadata["keywords"] = strings.Join(opts.Info.Keywords, ", ")
		}
	}
	return manifest
}

func writeManifest(projectPath string, manifest types.ProjectManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(projectPath, types.ManifestFile), data, 0o644)
}

// ReadManifest loads a project's manifest.
func ReadManifest(projectPath string) (types.ProjectManifest, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, types.ManifestFile))
	if err != nil {
		return types.ProjectManifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var manifest types.ProjectManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return types.ProjectManifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	return manifest, nil
}
