// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [project-path]",
	Short: "Generate the submission checklist",
	Long: `Checklist evaluates the fixed submission checklist against the project:
compilation output, bibliography format, figures, abstract length, keywords,
and cover letter. Completion is determined from the project's files; the
target journal's requirements tighten the checks where they apply.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, _ := cmd.Flags().GetString("journal")
		return dispatch(cmd, engine.Request{
			Operation:   engine.OpChecklist,
			ProjectPath: projectPathArg(args),
			JournalName: journal,
		})
	},
}

func init() {
	checklistCmd.Flags().String("journal", "", "target journal (overrides the manifest)")
	rootCmd.AddCommand(checklistCmd)
}
