// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [project-path]",
	Short: "Validate the project and package it on success",
	Long: `Prepare chains validation and packaging. The package step runs only when
every validation check passes; a failing project produces the validation
report and no package directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, _ := cmd.Flags().GetString("journal")
		output, _ := cmd.Flags().GetString("output")
		return dispatch(cmd, engine.Request{
			Operation:   engine.OpPrepare,
			ProjectPath: projectPathArg(args),
			JournalName: journal,
			OutputDir:   output,
		})
	},
}

func init() {
	prepareCmd.Flags().String("journal", "", "target journal (overrides the manifest)")
	prepareCmd.Flags().String("output", "", "directory to create the package under (default: project directory)")
	rootCmd.AddCommand(prepareCmd)
}
