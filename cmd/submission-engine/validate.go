// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-path]",
	Short: "Run the submission validation checks",
	Long: `Validate runs the four submission checks against the project: compilation,
journal compliance (page and word limits, reference style), file structure,
and the supplementary materials placeholder. The checks are independent; a
failure in one never hides the results of the others.

The target journal comes from --journal or the project manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, _ := cmd.Flags().GetString("journal")
		return dispatch(cmd, engine.Request{
			Operation:   engine.OpValidate,
			ProjectPath: projectPathArg(args),
			JournalName: journal,
		})
	},
}

func init() {
	validateCmd.Flags().String("journal", "", "target journal (overrides the manifest)")
	rootCmd.AddCommand(validateCmd)
}
