// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package consolidate flattens extracted filing records into a single
// CSV for downstream analysis.
// Implements: prd007-consolidation (R1-R3);
//
//	docs/ARCHITECTURE § Consolidation.
package consolidate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/filing-engine/internal/schema"
	"github.com/pdiddy/filing-engine/pkg/types"
)

const extractedDir = "extracted"

// metadataColumns lead every output row, before the per-item columns.
var metadataColumns = []string{
	"accession", "cik", "company", "filing_type", "filed", "period", "filename",
}

// Consolidate reads every extracted record for the configured filing
// type and writes one CSV row per filing, with one column triple
// (status, words, text) per selected item. It returns the number of
// data rows written. Rows where every selected item falls under
// cfg.MinWords are dropped.
func Consolidate(cfg types.ConsolidateConfig, w io.Writer) (int, error) {
	ft := cfg.FilingType
	if ft == "" {
		ft = types.Filing10K
	}

	records, err := loadRecords(filepath.Join(cfg.FilingsDir, extractedDir, string(ft)))
	if err != nil {
		return 0, err
	}

	items, err := selectItems(ft, cfg.Items, records)
	if err != nil {
		return 0, err
	}

	if cfg.OutputFile == "" {
		return 0, fmt.Errorf("no output file configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", cfg.OutputFile, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	headerRow := append([]string{}, metadataColumns...)
	for _, id := range items {
		headerRow = append(headerRow, "item_"+id+"_status", "item_"+id+"_words", "item_"+id+"_text")
	}
	if err := cw.Write(headerRow); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	rows := 0
	for _, rec := range records {
		if !meetsMinWords(rec, items, cfg.MinWords) {
			fmt.Fprintf(w, "dropped %s (below %d words)\n", rec.Filename, cfg.MinWords)
			continue
		}

		row := metadataRow(rec)
		for _, id := range items {
			r, ok := rec.Item(id)
			if !ok {
				row = append(row, string(types.StatusNotFound), "0", "")
				continue
			}
			row = append(row, string(r.Status), strconv.Itoa(r.WordCount()), r.Text)
		}
		if err := cw.Write(row); err != nil {
			return rows, fmt.Errorf("writing row for %s: %w", rec.Filename, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flushing CSV: %w", err)
	}

	fmt.Fprintf(w, "consolidated %d filings to %s\n", rows, cfg.OutputFile)
	return rows, nil
}

// loadRecords reads all JSON records under dir, sorted by accession
// then filename for deterministic output.
func loadRecords(dir string) ([]types.FilingRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading extracted directory %s: %w", dir, err)
	}

	var records []types.FilingRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		var rec types.FilingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Accession != records[j].Accession {
			return records[i].Accession < records[j].Accession
		}
		return records[i].Filename < records[j].Filename
	})
	return records, nil
}

// selectItems resolves the output columns: the configured ids, or
// every schema item present in at least one record, in schema order.
func selectItems(ft types.FilingType, configured []string, records []types.FilingRecord) ([]string, error) {
	sch, err := schema.Default().Lookup(ft, time.Time{})
	if err != nil {
		return nil, err
	}

	if len(configured) > 0 {
		for _, id := range configured {
			if _, ok := sch.Spec(id); !ok {
				return nil, fmt.Errorf("unknown %s item: %s", ft, id)
			}
		}
		return configured, nil
	}

	present := make(map[string]bool)
	for _, rec := range records {
		for _, r := range rec.Items {
			present[r.ItemID] = true
		}
	}
	var items []string
	for _, id := range sch.IDs() {
		if present[id] {
			items = append(items, id)
		}
	}
	return items, nil
}

// meetsMinWords reports whether at least one selected item clears the
// word floor. A zero floor keeps everything.
func meetsMinWords(rec types.FilingRecord, items []string, minWords int) bool {
	if minWords <= 0 {
		return true
	}
	for _, id := range items {
		if r, ok := rec.Item(id); ok && r.WordCount() >= minWords {
			return true
		}
	}
	return false
}

func metadataRow(rec types.FilingRecord) []string {
	filed := ""
	if !rec.Filed.IsZero() {
		filed = rec.Filed.Format("2006-01-02")
	}
	return []string{
		rec.Accession, rec.CIK, rec.Company, string(rec.FilingType),
		filed, rec.Period, rec.Filename,
	}
}
