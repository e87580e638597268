// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ChecklistItem is one entry in the submission checklist. The catalog of item
// IDs is fixed and versioned with the pipeline, not data-driven.
type ChecklistItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Required    bool   `json:"required"`
	Category    string `json:"category"`
}
