// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that talk to EDGAR.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The SEC
	// requires a contact identity (e.g. "Name email@example.com").
	// Per prd009-acquisition R4.1.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the acquisition stage.
// Per prd009-acquisition R1-R4.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// FilingsDir is the base directory for filings (contains raw/).
	FilingsDir string `json:"filings_dir" yaml:"filings_dir"`

	// FilingTypes lists the filing types to download (default 10-K).
	FilingTypes []FilingType `json:"filing_types" yaml:"filing_types"`

	// CIKs lists the companies to download, as EDGAR CIK numbers.
	CIKs []string `json:"ciks" yaml:"ciks"`

	// Since drops filings filed before this year (0 keeps everything).
	Since int `json:"since" yaml:"since"`

	// MaxPerCompany bounds the number of filings downloaded per company
	// and filing type (0 means unbounded).
	MaxPerCompany int `json:"max_per_company" yaml:"max_per_company"`

	// DownloadDelay is the delay between consecutive downloads (default 150ms,
	// keeping well under the SEC's 10 requests/second ceiling).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// NormalizeConfig holds settings for document normalization.
// Per prd002-normalization R5.1-R5.3.
type NormalizeConfig struct {
	// Encoding is the declared character encoding of raw filings.
	// Empty means auto-detect (UTF-8 with windows-1252 fallback).
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`

	// RemoveTables drops numeric-dominated HTML tables from the
	// normalized text. Tables carrying heading-like text are kept.
	RemoveTables bool `json:"remove_tables" yaml:"remove_tables"`
}

// SpecialItemsConfig controls the keyword-category scan over extracted
// item text. Per prd005-special-items R5.
type SpecialItemsConfig struct {
	// Enabled turns the scan on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ConfidenceThreshold drops hits scoring below it (default 0.5).
	ConfidenceThreshold float64 `json:"confidence_threshold" yaml:"confidence_threshold"`

	// ScanItems lists the item ids whose text is scanned (default 7, 8).
	ScanItems []string `json:"scan_items" yaml:"scan_items"`

	// Keywords maps a category name to its trigger keywords. Empty uses
	// the built-in categories.
	Keywords map[string][]string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// ExtractionConfig holds settings for the batch extraction stage.
// Per prd004-extraction R5.1-R5.6.
type ExtractionConfig struct {
	// FilingsDir is the base directory for filings (contains raw/, extracted/).
	FilingsDir string `json:"filings_dir" yaml:"filings_dir"`

	// FilingTypes lists the filing types to process (default 10-K).
	FilingTypes []FilingType `json:"filing_types" yaml:"filing_types"`

	// Items lists the item ids to extract. Empty extracts every item
	// of the schema.
	Items []string `json:"items" yaml:"items"`

	// SkipExtracted skips filings whose output is newer than the raw file.
	SkipExtracted bool `json:"skip_extracted" yaml:"skip_extracted"`

	// Workers bounds the number of filings extracted concurrently
	// (default 1). Normalized text duplicates a large document in
	// memory, so size this to available memory, not just CPU count.
	Workers int `json:"workers" yaml:"workers"`

	Normalize    NormalizeConfig    `json:"normalize" yaml:"normalize"`
	SpecialItems SpecialItemsConfig `json:"special_items" yaml:"special_items"`
}

// InventoryConfig holds settings for the filing inventory stage.
// Per prd006-inventory R1.2, R2.3.
type InventoryConfig struct {
	// FilingsDir is the base directory for filings (contains extracted/, index/).
	FilingsDir string `json:"filings_dir" yaml:"filings_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ConsolidateConfig holds settings for the consolidation stage.
// Per prd007-consolidation R1-R3.
type ConsolidateConfig struct {
	// FilingsDir is the base directory for filings (contains extracted/).
	FilingsDir string `json:"filings_dir" yaml:"filings_dir"`

	// FilingType selects which extracted records to consolidate.
	FilingType FilingType `json:"filing_type" yaml:"filing_type"`

	// Items lists the item ids emitted as columns. Empty emits every
	// item present in the records.
	Items []string `json:"items" yaml:"items"`

	// OutputFile is the CSV path to write.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// MinWords drops rows where every selected item has fewer words.
	MinWords int `json:"min_words" yaml:"min_words"`
}

// MeasureConfig holds settings for the disclosure measure stage.
// Per prd008-measure R1-R3.
type MeasureConfig struct {
	// FilingsDir is the base directory for filings (contains extracted/).
	FilingsDir string `json:"filings_dir" yaml:"filings_dir"`

	// FilingType selects which extracted records to score.
	FilingType FilingType `json:"filing_type" yaml:"filing_type"`

	// Item is the item id whose text is scored (default 7).
	Item string `json:"item" yaml:"item"`

	// LexiconPath is an optional YAML file overriding the built-in lexicon.
	LexiconPath string `json:"lexicon_path,omitempty" yaml:"lexicon_path,omitempty"`

	// OutputFile is the CSV path to write.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Fetch       FetchConfig       `json:"fetch" yaml:"fetch"`
	Extraction  ExtractionConfig  `json:"extraction" yaml:"extraction"`
	Inventory   InventoryConfig   `json:"inventory" yaml:"inventory"`
	Consolidate ConsolidateConfig `json:"consolidate" yaml:"consolidate"`
	Measure     MeasureConfig     `json:"measure" yaml:"measure"`
}
