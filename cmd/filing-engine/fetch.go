// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/fetch"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download raw filings from EDGAR",
	Long: `Fetch lists each company's filing history through the EDGAR submissions
API and downloads the matching complete submission text files into
filings/raw/<type>/. Filings already on disk are skipped, so repeated
runs only pull what is missing.

The SEC requires a contact identity in the User-Agent header; set
--user-agent (or fetch.user_agent in the config file) to something like
"Name email@example.com".`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	filingTypes := stringSliceSetting(cmd, "types", "fetch.filing_types")
	ciks := stringSliceSetting(cmd, "ciks", "fetch.ciks")
	delayMs := intSetting(cmd, "delay-ms", "fetch.download_delay_ms")

	cfg := types.FetchConfig{
		FilingsDir:    stringSetting(cmd, "filings-dir", "fetch.filings_dir"),
		CIKs:          ciks,
		Since:         intSetting(cmd, "since", "fetch.since"),
		MaxPerCompany: intSetting(cmd, "max-per-company", "fetch.max_per_company"),
		DownloadDelay: time.Duration(delayMs) * time.Millisecond,
	}
	cfg.UserAgent = stringSetting(cmd, "user-agent", "fetch.user_agent")
	for _, ft := range filingTypes {
		cfg.FilingTypes = append(cfg.FilingTypes, types.FilingType(ft))
	}

	if len(cfg.CIKs) == 0 {
		return fmt.Errorf("no companies given: set --ciks or fetch.ciks in the config file")
	}
	if cfg.UserAgent == "" {
		return fmt.Errorf("no contact identity given: set --user-agent \"Name email@example.com\"")
	}

	result, err := fetch.FetchAll(context.Background(), nil, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d download(s) failed", result.Failed)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("filings-dir", "filings", "base directory for filings (contains raw/)")
	fetchCmd.Flags().StringSlice("types", []string{"10-K"}, "filing types to download")
	fetchCmd.Flags().StringSlice("ciks", nil, "company CIK numbers to download")
	fetchCmd.Flags().Int("since", 0, "drop filings filed before this year")
	fetchCmd.Flags().Int("max-per-company", 0, "maximum filings per company and type (0 = unbounded)")
	fetchCmd.Flags().Int("delay-ms", 150, "delay between downloads in milliseconds")
	fetchCmd.Flags().String("user-agent", "", "User-Agent with contact identity, required by the SEC")

	rootCmd.AddCommand(fetchCmd)
}
