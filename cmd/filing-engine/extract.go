// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/extract"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract item sections from raw filings",
	Long: `Extract processes every raw filing under filings/raw/<type>/ and writes
one JSON record per filing to filings/extracted/<type>/. Each record
carries the filing metadata from the submission header plus the cleaned
text and raw span of every requested item.

With --skip-extracted, filings whose record is newer than the raw file
are skipped, so repeated runs are incremental.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	filingTypes := stringSliceSetting(cmd, "types", "extraction.filing_types")
	items := stringSliceSetting(cmd, "items", "extraction.items")

	cfg := types.ExtractionConfig{
		FilingsDir:    stringSetting(cmd, "filings-dir", "extraction.filings_dir"),
		Items:         items,
		SkipExtracted: boolSetting(cmd, "skip-extracted", "extraction.skip_extracted"),
		Workers:       intSetting(cmd, "workers", "extraction.workers"),
		Normalize: types.NormalizeConfig{
			Encoding:     stringSetting(cmd, "encoding", "extraction.normalize.encoding"),
			RemoveTables: boolSetting(cmd, "remove-tables", "extraction.normalize.remove_tables"),
		},
		SpecialItems: types.SpecialItemsConfig{
			Enabled: boolSetting(cmd, "special-items", "extraction.special_items.enabled"),
		},
	}
	for _, ft := range filingTypes {
		cfg.FilingTypes = append(cfg.FilingTypes, types.FilingType(ft))
	}

	summary, err := extract.ExtractAll(context.Background(), extract.NewEngine(nil), cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d filing(s) failed extraction", summary.Failed)
	}
	return nil
}

func init() {
	extractCmd.Flags().String("filings-dir", "filings", "base directory for filings (contains raw/, extracted/)")
	extractCmd.Flags().StringSlice("types", []string{"10-K"}, "filing types to process")
	extractCmd.Flags().StringSlice("items", nil, "item ids to extract (default: every schema item)")
	extractCmd.Flags().Bool("skip-extracted", false, "skip filings whose record is newer than the raw file")
	extractCmd.Flags().Int("workers", 1, "filings extracted concurrently")
	extractCmd.Flags().String("encoding", "", "declared raw encoding (default: auto-detect)")
	extractCmd.Flags().Bool("remove-tables", false, "drop numeric HTML tables during normalization")
	extractCmd.Flags().Bool("special-items", false, "scan extracted text for special disclosure events")

	rootCmd.AddCommand(extractCmd)
}
