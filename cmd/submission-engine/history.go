// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded engine operations",
	Long: `History lists the operations ledger: every engine invocation with its
outcome, newest first. The ledger lives next to the template cache.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show (0 = all)")
	historyCmd.Flags().String("export", "", "write the full ledger to a YAML file")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)
	store, err := history.NewStore(cfg.Cache.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := store.ExportYAML(exportPath); err != nil {
			return err
		}
		fmt.Println("Exported history to", exportPath)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded operations.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s %-10s %-7s %s\n", "WHEN", "OPERATION", "RESULT", "MESSAGE")
	for _, run := range runs {
		result := "ok"
		if !run.Success {
			result = "failed"
		}
		fmt.Fprintf(os.Stdout, "%-20s %-10s %-7s %s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.Operation, result, run.Message)
	}
	return nil
}
