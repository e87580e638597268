// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/engine"
	"github.com/pdiddy/submission-engine/pkg/types"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Search, fetch, and maintain manuscript templates",
}

var templateSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the remote catalog and the local cache",
	Long: `Search queries the remote template catalog and the local cache, removes
duplicate ids (remote entries win), and lists the combined results. A failure
of the remote catalog aborts the search rather than returning partial results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		return dispatch(cmd, engine.Request{Operation: engine.OpTemplate, Query: query})
	},
}

var templateFetchCmd = &cobra.Command{
	Use:   "fetch <id>",
	Short: "Fetch a template by id and cache it",
	Long: `Fetch resolves a template id to a full template. The source is detected
from the id's shape (overleaf: ids and catalog URLs hit the remote catalog,
arXiv-shaped ids extract from the paper's source, anything else reads the
local cache) unless --source forces one. Fetched templates are written
through to the cache.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		return dispatch(cmd, engine.Request{
			Operation:      engine.OpTemplate,
			TemplateID:     args[0],
			TemplateSource: types.TemplateSource(source),
		})
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine.New(engineConfig(cmd))
		if err != nil {
			return err
		}
		defer eng.Close()

		records := eng.Resolver().Cache().List()
		if len(records) == 0 {
			fmt.Println("Cache is empty.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "%-28s %-16s %-6s %s\n", "ID", "SOURCE", "AGE", "NAME")
		for _, r := range records {
			fmt.Fprintf(os.Stdout, "%-28s %-16s %-6s %s\n", r.ID, r.Source, formatAge(r.LastUpdated), r.Name)
		}
		return nil
	},
}

var templateSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evict cached templates older than the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine.New(engineConfig(cmd))
		if err != nil {
			return err
		}
		defer eng.Close()

		evicted, err := eng.Resolver().Cache().Sweep()
		if err != nil {
			return err
		}
		for _, id := range evicted {
			fmt.Println("evicted:", id)
		}
		fmt.Printf("Swept %d stale entries.\n", len(evicted))
		return nil
	},
}

func init() {
	templateFetchCmd.Flags().String("source", "", "force a template source (remote-catalog, paper-extracted, local-cache)")

	templateCmd.AddCommand(templateSearchCmd)
	templateCmd.AddCommand(templateFetchCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateSweepCmd)
	rootCmd.AddCommand(templateCmd)
}
