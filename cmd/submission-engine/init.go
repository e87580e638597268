// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/submission-engine/internal/engine"
	"github.com/pdiddy/submission-engine/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Initialize a project directory from a template",
	Long: `Init resolves a template (remote catalog id, arXiv paper id, or cached id)
and materializes it into a new project directory: template files with author
and title placeholders substituted, a project manifest, fixed subdirectories,
and a generated submission guide.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("template", "overleaf:ieee-conference", "template id to initialize from")
	initCmd.Flags().String("source", "", "force a template source (remote-catalog, paper-extracted, local-cache)")
	initCmd.Flags().String("path", "", "project directory (default ./<name>)")
	initCmd.Flags().String("journal", "", "target journal recorded in the manifest")
	initCmd.Flags().String("title", "", "paper title substituted into the template")
	initCmd.Flags().String("abstract", "", "abstract text substituted into the template")
	initCmd.Flags().String("keywords", "", "comma-separated keywords")
	initCmd.Flags().String("author-info", "", "YAML file with author name, affiliation, and email")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = name
	}

	templateID, _ := cmd.Flags().GetString("template")
	source, _ := cmd.Flags().GetString("source")
	journal, _ := cmd.Flags().GetString("journal")
	title, _ := cmd.Flags().GetString("title")
	abstract, _ := cmd.Flags().GetString("abstract")
	keywords, _ := cmd.Flags().GetString("keywords")
	authorFile, _ := cmd.Flags().GetString("author-info")

	var author *types.AuthorInfo
	if authorFile != "" {
		loaded, err := loadAuthorInfo(authorFile)
		if err != nil {
			return err
		}
		author = loaded
	}

	var info *types.ProjectInfo
	if title != "" || abstract != "" || keywords != "" {
		info = &types.ProjectInfo{Title: title, Abstract: abstract}
		if keywords != "" {
			for _, k := range strings.Split(keywords, ",") {
				if k = strings.TrimSpace(k); k != "" {
					info.Keywords = append(info.Keywords, k)
				}
			}
		}
	}

	return dispatch(cmd, engine.Request{
		Operation:      engine.OpInit,
		ProjectPath:    path,
		ProjectName:    name,
		TemplateID:     templateID,
		TemplateSource: types.TemplateSource(source),
		JournalName:    journal,
		Author:         author,
		Info:           info,
	})
}

// loadAuthorInfo reads the author YAML sidecar.
func loadAuthorInfo(path string) (*types.AuthorInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading author info: %w", err)
	}
	var author types.AuthorInfo
	if err := yaml.Unmarshal(data, &author); err != nil {
		return nil, fmt.Errorf("parsing author info: %w", err)
	}
	return &author, nil
}
