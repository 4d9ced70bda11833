// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads raw filings from EDGAR into the project layout.
// Implements: prd009-acquisition (R1-R4); docs/ARCHITECTURE § Acquisition.
//
// For each configured company the stage lists its filing history through
// the EDGAR submissions API, filters to the requested filing types, and
// downloads each complete submission text file into
// filings/raw/<type>/<accession>.txt, where the extraction stage picks
// them up. Downloads already on disk are skipped, so reruns only pull
// what is missing.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/filing-engine/internal/httputil"
	"github.com/pdiddy/filing-engine/pkg/types"
)

// EDGAR API bases. Tests override these to point at a local server.
var (
	submissionsAPIBase = "https://data.sec.gov/submissions/"
	archivesBase       = "https://www.sec.gov/Archives/edgar/data/"
)

const (
	rawDir          = "raw"
	defaultDelay    = 150 * time.Millisecond
	defaultTimeout  = 60 * time.Second
	fetchMaxRetries = 3
)

// Filing identifies one downloadable submission from a company's history.
type Filing struct {
	CIK       string
	Accession string
	Form      types.FilingType
	Filed     time.Time
}

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of filings processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Submissions API JSON structures. The recent block holds parallel
// arrays indexed together.
type submissionsResponse struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			FilingDate      []string `json:"filingDate"`
			Form            []string `json:"form"`
		} `json:"recent"`
	} `json:"filings"`
}

// ListFilings retrieves a company's filing history and returns the
// submissions matching cfg.FilingTypes, newest first as EDGAR reports
// them, capped by cfg.Since and cfg.MaxPerCompany per filing type.
func ListFilings(ctx context.Context, client *http.Client, cik string, cfg types.FetchConfig) ([]Filing, error) {
	apiURL := submissionsAPIBase + "CIK" + padCIK(cik) + ".json"

	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, fetchMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("submissions request for CIK %s: %w", cik, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("submissions API returned HTTP %d for CIK %s", resp.StatusCode, cik)
	}

	var sub submissionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("parsing submissions for CIK %s: %w", cik, err)
	}

	wanted := make(map[types.FilingType]bool, len(cfg.FilingTypes))
	for _, ft := range cfg.FilingTypes {
		wanted[ft] = true
	}

	recent := sub.Filings.Recent
	perType := make(map[types.FilingType]int)
	var filings []Filing
	for i, form := range recent.Form {
		ft := types.FilingType(form)
		if !wanted[ft] {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.FilingDate) {
			break
		}
		filed, err := time.Parse("2006-01-02", recent.FilingDate[i])
		if err != nil {
			continue
		}
		if cfg.Since > 0 && filed.Year() < cfg.Since {
			continue
		}
		if cfg.MaxPerCompany > 0 && perType[ft] >= cfg.MaxPerCompany {
			continue
		}
		perType[ft]++
		filings = append(filings, Filing{
			CIK:       strings.TrimLeft(cik, "0"),
			Accession: recent.AccessionNumber[i],
			Form:      ft,
			Filed:     filed,
		})
	}
	return filings, nil
}

// FetchFiling downloads one complete submission text file into
// filings/raw/<form>/<accession>.txt. If the file already exists the
// download is skipped.
func FetchFiling(ctx context.Context, client *http.Client, f Filing, cfg types.FetchConfig, w io.Writer) (skipped bool, err error) {
	destDir := filepath.Join(cfg.FilingsDir, rawDir, string(f.Form))
	destPath := filepath.Join(destDir, f.Accession+".txt")

	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", f.Accession)
		return true, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", destDir, err)
	}

	fmt.Fprintf(w, "downloading: %s (%s, filed %s)\n", f.Accession, f.Form, f.Filed.Format("2006-01-02"))

	if err := downloadFile(ctx, client, submissionURL(f), destPath, cfg); err != nil {
		return false, fmt.Errorf("downloading %s: %w", f.Accession, err)
	}
	return false, nil
}

// FetchAll downloads the matching filings of every configured company,
// printing per-filing status and returning a summary. It continues after
// individual failures and applies a delay between consecutive downloads.
func FetchAll(ctx context.Context, client *http.Client, cfg types.FetchConfig, w io.Writer) (BatchResult, error) {
	if len(cfg.FilingTypes) == 0 {
		cfg.FilingTypes = []types.FilingType{types.Filing10K}
	}
	delay := cfg.DownloadDelay
	if delay <= 0 {
		delay = defaultDelay
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	var result BatchResult
	for _, cik := range cfg.CIKs {
		filings, err := ListFilings(ctx, client, cik, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  CIK %s (%v)\n", cik, err)
			result.Failed++
			continue
		}
		for _, f := range filings {
			wasSkipped, err := FetchFiling(ctx, client, f, cfg, w)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", f.Accession, err)
				result.Failed++
				continue
			}
			if wasSkipped {
				result.Skipped++
				continue
			}
			result.Downloaded++
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// submissionURL builds the archive URL of the complete submission text
// file. The directory segment is the accession number without dashes.
func submissionURL(f Filing) string {
	noDash := strings.ReplaceAll(f.Accession, "-", "")
	return archivesBase + f.CIK + "/" + noDash + "/" + f.Accession + ".txt"
}

// padCIK left-pads a CIK to the 10 digits the submissions API expects.
func padCIK(cik string) string {
	cik = strings.TrimLeft(cik, "0")
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}

// downloadFile fetches url to destPath using a temporary file so a
// partial download never lands under the final name.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, fetchMaxRetries)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
