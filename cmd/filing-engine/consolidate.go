// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/consolidate"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Flatten extracted records into a single CSV",
	Long: `Consolidate reads every extracted JSON record for one filing type and
writes a CSV with one row per filing: the filing metadata followed by
status, word-count, and text columns per item.`,
	RunE: runConsolidate,
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	filingType, _ := cmd.Flags().GetString("type")
	items := stringSliceSetting(cmd, "items", "consolidate.items")
	filingsDir := stringSetting(cmd, "filings-dir", "consolidate.filings_dir")

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(filingsDir, "consolidated", filingType+".csv")
	}

	cfg := types.ConsolidateConfig{
		FilingsDir: filingsDir,
		FilingType: types.FilingType(filingType),
		Items:      items,
		OutputFile: output,
		MinWords:   intSetting(cmd, "min-words", "consolidate.min_words"),
	}

	_, err := consolidate.Consolidate(cfg, os.Stdout)
	return err
}

func init() {
	consolidateCmd.Flags().String("filings-dir", "filings", "base directory for filings (contains extracted/)")
	consolidateCmd.Flags().String("type", "10-K", "filing type to consolidate")
	consolidateCmd.Flags().StringSlice("items", nil, "item ids emitted as columns (default: every item present)")
	consolidateCmd.Flags().String("output", "", "CSV output path (default: <filings-dir>/consolidated/<type>.csv)")
	consolidateCmd.Flags().Int("min-words", 0, "drop rows where every selected item has fewer words")

	rootCmd.AddCommand(consolidateCmd)
}
