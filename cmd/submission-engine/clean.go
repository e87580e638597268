// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [project-path]",
	Short: "Remove intermediate compilation artifacts",
	Long: `Clean deletes the LaTeX toolchain's intermediate files (.aux, .log, .bbl,
.blg, .toc, .out, .fls, .fdb_latexmk) from the project root. Source files and
the compiled PDF are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, engine.Request{
			Operation:   engine.OpClean,
			ProjectPath: projectPathArg(args),
		})
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
