// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/pdiddy/submission-engine/internal/engine"
	"github.com/pdiddy/submission-engine/internal/submit"
	"github.com/pdiddy/submission-engine/pkg/types"
)

// renderResponse prints a human-readable rendering of an operation response.
func renderResponse(w io.Writer, resp engine.Response) {
	switch data := resp.Data.(type) {
	case []types.TemplateRecord:
		renderTemplateList(w, data)
	case types.TemplateRecord:
		renderTemplate(w, data)
	case types.ValidationReport:
		renderValidation(w, data)
	case engine.PrepareResult:
		renderValidation(w, data.Validation)
		if data.Package != nil {
			renderPackage(w, *data.Package)
		}
	case submit.PackageResult:
		renderPackage(w, data)
	case []types.ChecklistItem:
		renderChecklist(w, data)
	}

	if resp.Success {
		fmt.Fprintln(w, resp.Message)
	} else {
		fmt.Fprintln(w, "FAILED:", resp.Message)
		for _, e := range resp.Errors {
			fmt.Fprintln(w, "  -", e)
		}
	}
}

func renderTemplateList(w io.Writer, records []types.TemplateRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No templates matched.")
		return
	}
	fmt.Fprintf(w, "%-28s %-16s %-22s %s\n", "ID", "SOURCE", "PUBLISHER", "NAME")
	for _, r := range records {
		fmt.Fprintf(w, "%-28s %-16s %-22s %s\n", r.ID, r.Source, r.Metadata.Publisher, r.Name)
	}
}

func renderTemplate(w io.Writer, r types.TemplateRecord) {
	fmt.Fprintf(w, "Template: %s (%s)\n", r.Name, r.ID)
	fmt.Fprintf(w, "  Source:    %s\n", r.Source)
	if r.Metadata.Publisher != "" {
		fmt.Fprintf(w, "  Publisher: %s\n", r.Metadata.Publisher)
	}
	if len(r.Metadata.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:      %v\n", r.Metadata.Tags)
	}
	fmt.Fprintf(w, "  Files:     %d\n", len(r.Files))
	for _, f := range r.Files {
		marker := " "
		if f.Required {
			marker = "*"
		}
		fmt.Fprintf(w, "   %s %-30s %s\n", marker, f.Path, f.Kind)
	}
}

func renderValidation(w io.Writer, report types.ValidationReport) {
	fmt.Fprintln(w, "Validation report:")
	fmt.Fprintf(w, "  compilation:    %s\n", passFail(report.Compilation.Success))
	for _, e := range report.Compilation.Errors {
		fmt.Fprintln(w, "    !", e)
	}
	for _, warning := range report.Compilation.Warnings {
		fmt.Fprintln(w, "    ~", warning)
	}
	compliance := report.Compliance.PageLimit && report.Compliance.WordLimit && report.Compliance.ReferenceStyle
	fmt.Fprintf(w, "  compliance:     %s\n", passFail(compliance))
	for _, issue := range report.Compliance.Issues {
		fmt.Fprintln(w, "    -", issue)
	}
	structure := report.FileStructure.MainDocument && report.FileStructure.Bibliography
	fmt.Fprintf(w, "  file structure: %s\n", passFail(structure))
	for _, missing := range report.FileStructure.Missing {
		fmt.Fprintln(w, "    missing:", missing)
	}
	fmt.Fprintf(w, "  supplementary:  skipped (not implemented)\n")
}

func renderPackage(w io.Writer, result submit.PackageResult) {
	fmt.Fprintf(w, "Package: %s\n", result.Dir)
	for _, f := range result.Files {
		fmt.Fprintln(w, "  +", f)
	}
}

func renderChecklist(w io.Writer, items []types.ChecklistItem) {
	fmt.Fprintln(w, "Submission checklist:")
	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		required := ""
		if item.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  [%s] %s%s\n", mark, item.Title, required)
		fmt.Fprintf(w, "      %s\n", item.Description)
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}
