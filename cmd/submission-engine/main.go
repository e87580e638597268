// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the submission-engine CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/submission-engine/internal/cache"
	"github.com/pdiddy/submission-engine/internal/engine"
	"github.com/pdiddy/submission-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the submission-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "submission-engine",
	Short: "Turn a manuscript into a submission-ready package",
	Long: `submission-engine helps authors prepare a research manuscript for journal
submission. It resolves LaTeX templates from a remote catalog, from published
paper sources, or from the local cache; initializes project directories from
them; and validates, packages, and checklists the manuscript against the
target journal's requirements.

Each pipeline stage is a subcommand: init, template, extract, validate,
prepare, package, checklist, and clean.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./submission-engine.yaml or ~/.config/submission-engine/config.yaml)")
	rootCmd.PersistentFlags().String("cache-dir", "", "template cache directory (default .template-cache)")
	rootCmd.PersistentFlags().String("journal-catalog", "", "YAML file overriding the built-in journal catalog")
	rootCmd.PersistentFlags().Bool("no-history", false, "disable the operations ledger")
	rootCmd.PersistentFlags().Bool("json", false, "emit the full response as JSON")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("submission-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "submission-engine"))
		}
	}

	viper.SetEnvPrefix("SUBMISSION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the engine configuration from flags and viper.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	if cacheDir == "" {
		cacheDir = viper.GetString("cache.dir")
	}
	if cacheDir == "" {
		cacheDir = ".template-cache"
	}

	retention := viper.GetDuration("cache.retention")
	if retention == 0 {
		retention = cache.DefaultRetention
	}

	journalCatalog, _ := cmd.Flags().GetString("journal-catalog")
	if journalCatalog == "" {
		journalCatalog = viper.GetString("journal.catalog_path")
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")

	return types.EngineConfig{
		Cache:   types.CacheConfig{Dir: cacheDir, Retention: retention},
		Journal: types.JournalConfig{CatalogPath: journalCatalog},
		History: types.HistoryConfig{Disabled: noHistory || viper.GetBool("history.disabled")},
	}
}

// dispatch builds an engine, runs one request, and renders the response.
func dispatch(cmd *cobra.Command, req engine.Request) error {
	eng, err := engine.New(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer eng.Close()

	resp := eng.Dispatch(req)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
	} else {
		renderResponse(os.Stdout, resp)
	}

	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}
	return nil
}

// projectPathArg resolves the project path from args, defaulting to the
// current directory.
func projectPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func formatAge(t time.Time) string {
	age := time.Since(t)
	switch {
	case age < time.Hour:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
