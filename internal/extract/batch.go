// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdiddy/filing-engine/internal/header"
	"github.com/pdiddy/filing-engine/internal/special"
	"github.com/pdiddy/filing-engine/pkg/types"
)

const (
	rawDir       = "raw"
	extractedDir = "extracted"
)

// defaultScanItems are the sections scanned for special items when
// the config does not name any: the MD&A and the financial statements.
var defaultScanItems = []string{"7", "8"}

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of filings processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any filings failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// ExtractAll processes every raw filing under cfg.FilingsDir/raw/<type>/
// and writes one JSON record per filing to filings/extracted/<type>/.
// Unchanged filings are skipped when cfg.SkipExtracted is set. Files are
// processed concurrently up to cfg.Workers; per-filing failures are
// counted, not fatal. Unknown requested item ids abort the run, since
// every filing would fail the same way.
func ExtractAll(ctx context.Context, eng *Engine, cfg types.ExtractionConfig, w io.Writer) (BatchSummary, error) {
	if eng == nil {
		eng = NewEngine(nil)
	}

	filingTypes := cfg.FilingTypes
	if len(filingTypes) == 0 {
		filingTypes = []types.FilingType{types.Filing10K}
	}

	var summary BatchSummary
	for _, ft := range filingTypes {
		s, err := extractType(ctx, eng, cfg, ft, w)
		summary.Extracted += s.Extracted
		summary.Skipped += s.Skipped
		summary.Failed += s.Failed
		if err != nil {
			return summary, err
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d skipped, %d failed (total: %d)\n",
		summary.Extracted, summary.Skipped, summary.Failed, summary.Total())
	return summary, nil
}

func extractType(ctx context.Context, eng *Engine, cfg types.ExtractionConfig, ft types.FilingType, w io.Writer) (BatchSummary, error) {
	inDir := filepath.Join(cfg.FilingsDir, rawDir, string(ft))
	outDir := filepath.Join(cfg.FilingsDir, extractedDir, string(ft))

	entries, err := os.ReadDir(inDir)
	if err != nil {
		if os.IsNotExist(err) {
			return BatchSummary{}, nil
		}
		return BatchSummary{}, fmt.Errorf("reading raw directory %s: %w", inDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !rawFiling(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(inDir, entry.Name()))
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers == 0 {
		return BatchSummary{}, nil
	}

	var (
		mu      sync.Mutex
		summary BatchSummary
		abort   error
	)
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				status, err := extractOne(eng, cfg, ft, path, outDir, w, &mu)
				mu.Lock()
				switch status {
				case statusExtracted:
					summary.Extracted++
				case statusSkipped:
					summary.Skipped++
				case statusFailed:
					summary.Failed++
				}
				var ue *UnknownItemsError
				if errors.As(err, &ue) && abort == nil {
					abort = err
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
		mu.Lock()
		stop := abort != nil
		mu.Unlock()
		if stop {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if abort != nil {
		return summary, abort
	}
	return summary, ctx.Err()
}

type fileStatus int

const (
	statusExtracted fileStatus = iota
	statusSkipped
	statusFailed
)

// extractOne processes a single raw filing file. Progress lines share
// the batch writer, so they go out under the batch mutex.
func extractOne(eng *Engine, cfg types.ExtractionConfig, ft types.FilingType, path, outDir string, w io.Writer, mu *sync.Mutex) (fileStatus, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+".json")

	logf := func(format string, args ...any) {
		mu.Lock()
		fmt.Fprintf(w, format, args...)
		mu.Unlock()
	}

	if cfg.SkipExtracted {
		changed, err := hasChanged(path, outPath)
		if err != nil {
			logf("failed  %s: %v\n", base, err)
			return statusFailed, nil
		}
		if !changed {
			logf("skipped %s\n", base)
			return statusSkipped, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logf("failed  %s: %v\n", base, err)
		return statusFailed, nil
	}

	md, err := header.Parse(raw)
	if err != nil && !errors.Is(err, header.ErrNoHeader) {
		logf("failed  %s: %v\n", base, err)
		return statusFailed, nil
	}
	if md.FilingType == "" {
		md.FilingType = ft
	}

	results, err := eng.ExtractDocument(raw, Request{
		FilingType: ft,
		Filed:      md.Filed,
		Items:      cfg.Items,
		Normalize:  cfg.Normalize,
	})
	if err != nil {
		logf("failed  %s: %v\n", base, err)
		return statusFailed, err
	}

	record := types.FilingRecord{
		FilingMetadata: md,
		Filename:       filepath.Base(path),
		Items:          eng.Results(Request{FilingType: ft, Filed: md.Filed}, results),
	}

	if cfg.SpecialItems.Enabled {
		record.SpecialItems = scanSpecial(cfg.SpecialItems, record.Items)
	}

	if err := writeRecord(outPath, &record); err != nil {
		logf("failed  %s: %v\n", base, err)
		return statusFailed, nil
	}

	logf("extracted %s (%d found)\n", base, countFound(record.Items))
	return statusExtracted, nil
}

// scanSpecial runs the keyword scan over the configured sections of
// one record.
func scanSpecial(cfg types.SpecialItemsConfig, items []types.ItemResult) []types.SpecialItem {
	scanner := special.NewScanner(cfg)
	scanIDs := cfg.ScanItems
	if len(scanIDs) == 0 {
		scanIDs = defaultScanItems
	}
	want := make(map[string]bool, len(scanIDs))
	for _, id := range scanIDs {
		want[id] = true
	}

	var hits []types.SpecialItem
	for _, r := range items {
		if r.Status != types.StatusFound || !want[r.ItemID] {
			continue
		}
		hits = append(hits, scanner.Scan(r.ItemID, r.Text)...)
	}
	return hits
}

func countFound(items []types.ItemResult) int {
	n := 0
	for _, r := range items {
		if r.Status == types.StatusFound {
			n++
		}
	}
	return n
}

// rawFiling reports filenames that look like raw filing documents.
func rawFiling(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".htm", ".html":
		return true
	}
	return false
}

// hasChanged reports whether the raw file is newer than the output
// record. True when the output does not exist yet.
func hasChanged(rawPath, outPath string) (bool, error) {
	rawInfo, err := os.Stat(rawPath)
	if err != nil {
		return false, fmt.Errorf("stat raw %s: %w", rawPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return rawInfo.ModTime().After(outInfo.ModTime()), nil
}

// writeRecord marshals the FilingRecord to a JSON file.
func writeRecord(path string, record *types.FilingRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
