// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared across pipeline stages.
package types

import "time"

// FilingType identifies the regulatory form a document was filed under.
// The type selects which item schema applies during extraction.
// Per prd001-item-schemas R1.1.
type FilingType string

const (
	Filing10K FilingType = "10-K"
	Filing10Q FilingType = "10-Q"
	Filing8K  FilingType = "8-K"
)

// KnownFilingTypes lists the filing types with a registered item schema.
func KnownFilingTypes() []FilingType {
	return []FilingType{Filing10K, Filing10Q, Filing8K}
}

// FilingMetadata describes one filing, parsed from the SGML header of a
// raw EDGAR submission. Fields that the header does not carry are left
// empty. Per prd004-extraction R4.1.
type FilingMetadata struct {
	// Accession is the unique accession number assigned by EDGAR
	// (e.g. "0000320193-23-000106"). Opaque to the engine.
	Accession string `json:"accession" yaml:"accession"`

	// CIK is the filer's Central Index Key.
	CIK string `json:"cik" yaml:"cik"`

	// Company is the filer's conformed company name.
	Company string `json:"company" yaml:"company"`

	// FilingType is the conformed submission type (10-K, 10-Q, 8-K).
	FilingType FilingType `json:"filing_type" yaml:"filing_type"`

	// Filed is the date the filing was submitted. Drives schema
	// selection for 8-K filings, whose item numbering changed in 2004.
	Filed time.Time `json:"filed" yaml:"filed"`

	// Period is the conformed period of report (e.g. "20230930").
	Period string `json:"period" yaml:"period"`

	// SIC is the standard industrial classification code.
	SIC string `json:"sic,omitempty" yaml:"sic,omitempty"`

	// FiscalYearEnd is the filer's fiscal year end (MMDD).
	FiscalYearEnd string `json:"fiscal_year_end,omitempty" yaml:"fiscal_year_end,omitempty"`
}
