// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"fmt"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// guideFile is the generated onboarding document at the project root.
const guideFile = "SUBMISSION_GUIDE.md"

// renderGuide produces the guide's markdown from the project's options and
// its freshly written manifest.
func renderGuide(opts Options, manifest types.ProjectManifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.Name)
	b.WriteString("This project was initialized by submission-engine.\n\n")

	b.WriteString("## Project\n\n")
	fmt.Fprintf(&b, "- Template: `%s` (%s)\n", manifest.TemplateID, manifest.TemplateSource)
	if manifest.JournalTarget != "" {
		fmt.Fprintf(&b, "- Target journal: %s\n", manifest.JournalTarget)
	}
	fmt.Fprintf(&b, "- Created: %s\n\n", manifest.CreatedAt.Format("2006-01-02"))

	b.WriteString("## Layout\n\n")
	b.WriteString("- `figures/` holds graphics referenced from the document\n")
	b.WriteString("- `data/` holds datasets and supplementary material\n")
	b.WriteString("- `sections/` holds per-section source files\n\n")

	b.WriteString("## Workflow\n\n")
	b.WriteString("1. Write your manuscript in the template's main document.\n")
	b.WriteString("2. Run `submission-engine validate` to check compilation and journal compliance.\n")
	b.WriteString("3. Run `submission-engine checklist` to review remaining submission tasks.\n")
	b.WriteString("4. Run `submission-engine package` to produce the submission archive directory.\n")

	if main := opts.Template.MainFile(); main != nil {
		fmt.Fprintf(&b, "\nThe main document is `%s`.\n", main.Path)
	}

	return b.String()
}
