// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
	"github.com/pdiddy/submission-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <arxiv-id>",
	Short: "Extract a reusable template from a published paper",
	Long: `Extract downloads a paper's LaTeX source bundle, identifies the main
document, parses its structure, strips author-identifying information, and
rewrites absolute paths. The resulting template is cached under
"arxiv-<paper-id>".`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("keep-personal-info", false, "skip the personal information sanitization pass")
	extractCmd.Flags().Bool("keep-paths", false, "skip the path generalization pass")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	keepPersonal, _ := cmd.Flags().GetBool("keep-personal-info")
	keepPaths, _ := cmd.Flags().GetBool("keep-paths")

	opts := types.ExtractOptions{
		RemovePersonalInfo: !keepPersonal,
		GeneralizePaths:    !keepPaths,
	}
	return dispatch(cmd, engine.Request{
		Operation: engine.OpExtract,
		ArxivID:   args[0],
		Extract:   &opts,
	})
}
