package types

import "time"

// CacheConfig holds settings for the template cache.
type CacheConfig struct {
	// Dir is the cache directory (default ".template-cache").
	Dir string `json:"dir" yaml:"dir"`

	// Retention is the eviction window for cached templates (default 30 days).
	// Entries whose LastUpdated is older than this are removed on sweep.
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// ExtractOptions controls the paper source extractor's sanitization passes.
type ExtractOptions struct {
	// RemovePersonalInfo replaces author names, emails, affiliations, and
	// titles with fixed placeholders. The pass is idempotent.
	RemovePersonalInfo bool `json:"remove_personal_info" yaml:"remove_personal_info"`

	// GeneralizePaths rewrites absolute paths in include/graphics directives
	// to be relative. The pass is idempotent.
	GeneralizePaths bool `json:"generalize_paths" yaml:"generalize_paths"`
}

// PackageOptions controls the packaging stage.
type PackageOptions struct {
	// OutputDir is the directory the timestamped package is created under.
	// Empty means the project directory itself.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// JournalConfig holds settings for the journal requirements catalog.
type JournalConfig struct {
	// CatalogPath is an optional YAML file overriding the built-in catalog.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`
}

// HistoryConfig holds settings for the operations ledger.
type HistoryConfig struct {
	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// EngineConfig groups the settings for one engine instance.
type EngineConfig struct {
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	History HistoryConfig `json:"history" yaml:"history"`
}
