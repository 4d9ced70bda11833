// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/measure"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Score extracted sections against a term lexicon",
	Long: `Measure scores one item's text across every extracted record of a
filing type, counting lexicon term hits per thousand words, and writes
the per-filing scores to CSV. The built-in lexicon covers macroeconomic
disclosure terms; --lexicon substitutes a YAML vocabulary.`,
	RunE: runMeasure,
}

func runMeasure(cmd *cobra.Command, args []string) error {
	filingType, _ := cmd.Flags().GetString("type")
	item, _ := cmd.Flags().GetString("item")
	filingsDir := stringSetting(cmd, "filings-dir", "measure.filings_dir")

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(filingsDir, "consolidated", filingType+"-item"+item+"-scores.csv")
	}

	cfg := types.MeasureConfig{
		FilingsDir:  filingsDir,
		FilingType:  types.FilingType(filingType),
		Item:        item,
		LexiconPath: stringSetting(cmd, "lexicon", "measure.lexicon_path"),
		OutputFile:  output,
	}

	_, err := measure.Measure(cfg, os.Stdout)
	return err
}

func init() {
	measureCmd.Flags().String("filings-dir", "filings", "base directory for filings (contains extracted/)")
	measureCmd.Flags().String("type", "10-K", "filing type to score")
	measureCmd.Flags().String("item", "7", "item id whose text is scored")
	measureCmd.Flags().String("lexicon", "", "YAML lexicon file replacing the built-in vocabulary")
	measureCmd.Flags().String("output", "", "CSV output path (default: <filings-dir>/consolidated/<type>-item<item>-scores.csv)")

	rootCmd.AddCommand(measureCmd)
}
