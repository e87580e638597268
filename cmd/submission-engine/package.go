// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
)

var packageCmd = &cobra.Command{
	Use:   "package [project-path]",
	Short: "Assemble a submission package directory",
	Long: `Package copies the project's submittable files (.tex, .bib, .pdf, .cls,
.sty) and its figures directory into a new timestamp-named directory. The
project itself is left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return dispatch(cmd, engine.Request{
			Operation:   engine.OpPackage,
			ProjectPath: projectPathArg(args),
			OutputDir:   output,
		})
	},
}

func init() {
	packageCmd.Flags().String("output", "", "directory to create the package under (default: project directory)")
	rootCmd.AddCommand(packageCmd)
}
