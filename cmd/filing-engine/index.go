// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/filing-engine/internal/inventory"
	"github.com/pdiddy/filing-engine/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the filing inventory (store, search)",
	Long: `Index manages a local SQLite inventory built from extracted filing
records. Use subcommands to ingest records or search section text.`,
}

// --- store subcommand ---

var indexStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest extracted filing records into the inventory",
	Long: `Store reads JSON records from filings/extracted/, ingests them into a
SQLite database with FTS5 indexing over section text. Unchanged records
are skipped on subsequent runs.`,
	RunE: runIndexStore,
}

func runIndexStore(cmd *cobra.Command, args []string) error {
	store, err := inventory.NewStore(inventoryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d record(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the inventory with full-text search and filters",
	Long: `Search queries section text using FTS5 full-text search, structured
filters (item, filing type, CIK), or a combination of both.

Use --section with an accession and --item to print one stored section
in full.`,
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	store, err := inventory.NewStore(inventoryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	// Section mode: print one stored section in full.
	if accession, _ := cmd.Flags().GetString("section"); accession != "" {
		itemID, _ := cmd.Flags().GetString("item")
		if itemID == "" {
			return fmt.Errorf("--section requires --item")
		}
		text, err := store.Section(context.Background(), accession, itemID)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --item, --type, or --cik")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []inventory.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-22s  %-24s  %-5s  %-10s  %-6s  %s\n",
		"Rank", "Accession", "Company", "Type", "Item", "Words", "Excerpt")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for i, r := range results {
		company := r.Company
		if len(company) > 24 {
			company = company[:21] + "..."
		}
		excerpt := strings.ReplaceAll(r.Excerpt, "\n", " ")
		if len(excerpt) > 48 {
			excerpt = excerpt[:45] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-22s  %-24s  %-5s  %-10s  %-6d  %s\n",
			i+1, r.Accession, company, r.FilingType, r.ItemID, r.WordCount, excerpt)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func inventoryConfig(cmd *cobra.Command) types.InventoryConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.InventoryConfig{
		FilingsDir: stringSetting(cmd, "filings-dir", "inventory.filings_dir"),
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) inventory.QueryOptions {
	itemID, _ := cmd.Flags().GetString("item")
	filingType, _ := cmd.Flags().GetString("type")
	cik, _ := cmd.Flags().GetString("cik")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return inventory.QueryOptions{
		Query:      strings.Join(args, " "),
		ItemID:     itemID,
		FilingType: types.FilingType(filingType),
		CIK:        cik,
		MaxResults: maxResults,
	}
}

func init() {
	for _, c := range []*cobra.Command{indexStoreCmd, indexSearchCmd} {
		c.Flags().String("filings-dir", "filings", "base directory for filings (contains extracted/, index/)")
		c.Flags().Int("max-results", 20, "maximum number of query results")
	}
	indexSearchCmd.Flags().String("item", "", "filter by item id (e.g. 7, 1A, 5.02)")
	indexSearchCmd.Flags().String("type", "", "filter by filing type: 10-K, 10-Q, 8-K")
	indexSearchCmd.Flags().String("cik", "", "filter by registrant CIK")
	indexSearchCmd.Flags().String("section", "", "print one stored section for this accession (requires --item)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	indexCmd.AddCommand(indexStoreCmd)
	indexCmd.AddCommand(indexSearchCmd)
	rootCmd.AddCommand(indexCmd)
}
