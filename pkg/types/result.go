// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ItemStatus is the per-item outcome of a boundary extraction.
// NotFound and Ambiguous are expected structural outcomes on real-world
// documents, not errors. Per prd003-boundary-resolution R4.
type ItemStatus string

const (
	// StatusFound means the item's body was located and extracted.
	// A Found result always carries non-empty text.
	StatusFound ItemStatus = "found"

	// StatusNotFound means no heading for the item survived filtering,
	// or the extracted slice was empty after cleaning.
	StatusNotFound ItemStatus = "not_found"

	// StatusAmbiguous means two equally strong headings were found at
	// materially different positions with no rule to prefer one
	// (typically a consolidated or amended filing repeating the whole
	// document). No text is extracted.
	StatusAmbiguous ItemStatus = "ambiguous"

	// StatusMalformed means the document itself was unusable: it could
	// not be decoded, normalized to nothing, or matched no heading of
	// any schema item at all.
	StatusMalformed ItemStatus = "malformed"
)

// Span is a half-open [Start, End) character range in the raw document.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ItemResult is the extraction outcome for one requested item of one
// document. Immutable once returned. Text is non-empty exactly when
// Status is StatusFound. Per prd003-boundary-resolution R4.4.
type ItemResult struct {
	// ItemID is the schema identifier (e.g. "7A", "part_1__2", "5.02").
	ItemID string `json:"item_id" yaml:"item_id"`

	// Status is the per-item outcome.
	Status ItemStatus `json:"status" yaml:"status"`

	// Text is the cleaned body text. Empty unless Status is found.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// RawSpan locates the extracted body in the raw input, for audit.
	// Nil unless Status is found.
	RawSpan *Span `json:"raw_span,omitempty" yaml:"raw_span,omitempty"`
}

// WordCount returns the number of whitespace-separated tokens in Text.
func (r ItemResult) WordCount() int {
	count := 0
	inWord := false
	for _, c := range r.Text {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}

// SpecialItem is a keyword-category hit found while scanning extracted
// item text (restructuring charges, impairments, and similar one-off
// disclosures). Per prd005-special-items R1.
type SpecialItem struct {
	// Type is the matched category (e.g. "restructuring", "impairment").
	Type string `json:"type" yaml:"type"`

	// Confidence is the scan's certainty in [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// KeywordsMatched lists the category keywords found in context.
	KeywordsMatched []string `json:"keywords_matched" yaml:"keywords_matched"`

	// Context is the sentence or passage surrounding the match.
	Context string `json:"context" yaml:"context"`

	// SourceSection is the item id the context was scanned from.
	SourceSection string `json:"source_section" yaml:"source_section"`

	// AmountRaw is the monetary amount as written, if one was found
	// near the match (e.g. "$125.3 million").
	AmountRaw string `json:"amount_raw" yaml:"amount_raw"`

	// FootnoteReference is a nearby note reference (e.g. "Note 12"),
	// if one was found.
	FootnoteReference string `json:"footnote_reference" yaml:"footnote_reference"`
}

// FilingRecord is the serialized output for one processed filing: its
// metadata plus one ItemResult per requested item. Written as JSON by
// the batch driver and consumed by the consolidation and inventory
// stages. Per prd004-extraction R5, prd007-consolidation R1.
type FilingRecord struct {
	FilingMetadata `yaml:",inline"`

	// Filename is the raw source file the record was extracted from.
	Filename string `json:"filename" yaml:"filename"`

	// Items holds the per-item results in schema order.
	Items []ItemResult `json:"items" yaml:"items"`

	// SpecialItems holds keyword-category hits, when scanning is enabled.
	SpecialItems []SpecialItem `json:"special_items,omitempty" yaml:"special_items,omitempty"`
}

// Item returns the result for id, or a zero ItemResult and false.
func (f *FilingRecord) Item(id string) (ItemResult, bool) {
	for _, r := range f.Items {
		if r.ItemID == id {
			return r, true
		}
	}
	return ItemResult{}, false
}
