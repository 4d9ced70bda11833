// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package special scans extracted section text for one-off disclosure
// events: restructuring charges, impairments, acquisitions, and asset
// sales. Implements: prd005-special-items (R1-R4);
//
//	docs/ARCHITECTURE § Special Items.
//
// The scan is sentence-oriented. A sentence mentioning category
// keywords produces a hit; a monetary amount or footnote reference in
// the same sentence raises its confidence.
package special

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/filing-engine/pkg/types"
)

// defaultThreshold applies when the config leaves the threshold zero.
const defaultThreshold = 0.5

// maxContext caps the stored context passage, in bytes.
const maxContext = 400

var (
	// amountRe matches monetary amounts as filers write them:
	// "$125.3 million", "$1,200,000", "(1.2) billion", "450 million".
	amountRe = regexp.MustCompile(`(?i)\(?\$\s?\d[\d,]*(?:\.\d+)?\)?(?:\s*(?:billion|million|thousand))?|\b\d[\d,]*(?:\.\d+)?\s+(?:billion|million)\b`)

	// footnoteRe matches references into the financial statement notes.
	footnoteRe = regexp.MustCompile(`(?i)\bnote\s+\d+[A-Za-z]?\b`)

	sentenceRe = regexp.MustCompile(`[.!?](?:\s+|$)`)
)

// DefaultKeywords returns the built-in category lexicon. Callers may
// override or extend categories through SpecialItemsConfig.Keywords.
func DefaultKeywords() map[string][]string {
	return map[string][]string{
		"restructuring": {
			"restructuring charge", "restructuring charges", "restructuring costs",
			"restructuring plan", "workforce reduction", "severance",
			"facility closure", "exit activities",
		},
		"impairment": {
			"impairment charge", "impairment charges", "impairment loss",
			"goodwill impairment", "write-down", "write-off", "asset impairment",
		},
		"acquisition": {
			"acquisition of", "acquired", "business combination",
			"purchase agreement", "merger agreement",
		},
		"asset_sale": {
			"sale of assets", "divestiture", "disposed of", "divested",
			"held for sale", "discontinued operations",
		},
	}
}

// Scanner holds a compiled lexicon. Safe for concurrent use.
type Scanner struct {
	categories map[string][]string
	threshold  float64
}

// NewScanner builds a scanner from the config. Config categories
// replace the built-in keyword list for the same category name; new
// categories are added alongside the defaults.
func NewScanner(cfg types.SpecialItemsConfig) *Scanner {
	cats := DefaultKeywords()
	for name, kws := range cfg.Keywords {
		lowered := make([]string, len(kws))
		for i, kw := range kws {
			lowered[i] = strings.ToLower(kw)
		}
		cats[name] = lowered
	}

	th := cfg.ConfidenceThreshold
	if th <= 0 {
		th = defaultThreshold
	}
	return &Scanner{categories: cats, threshold: th}
}

// Scan inspects one section's text and returns hits at or above the
// confidence threshold, in document order.
func (s *Scanner) Scan(itemID, text string) []types.SpecialItem {
	var hits []types.SpecialItem

	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, cat := range s.categoryNames() {
			matched := keywordMatches(lower, s.categories[cat])
			if len(matched) == 0 {
				continue
			}

			amount := amountRe.FindString(sentence)
			footnote := footnoteRe.FindString(sentence)

			conf := confidence(len(matched), amount != "", footnote != "")
			if conf < s.threshold {
				continue
			}
			hits = append(hits, types.SpecialItem{
				Type:              cat,
				Confidence:        conf,
				KeywordsMatched:   matched,
				Context:           clip(sentence),
				SourceSection:     itemID,
				AmountRaw:         amount,
				FootnoteReference: footnote,
			})
		}
	}
	return hits
}

// categoryNames returns category names sorted for deterministic output.
func (s *Scanner) categoryNames() []string {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// confidence scores one sentence hit. A bare keyword match sits at the
// default threshold; corroborating evidence in the same sentence
// raises it.
func confidence(keywords int, hasAmount, hasFootnote bool) float64 {
	conf := 0.5
	if keywords > 1 {
		conf += 0.1
	}
	if hasAmount {
		conf += 0.25
	}
	if hasFootnote {
		conf += 0.15
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func keywordMatches(lower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// splitSentences breaks text on sentence punctuation and paragraph
// boundaries. Abbreviation handling is deliberately crude; a split
// mid-sentence only narrows a context window.
func splitSentences(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		start := 0
		for _, loc := range sentenceRe.FindAllStringIndex(para, -1) {
			s := strings.TrimSpace(para[start:loc[1]])
			if s != "" {
				out = append(out, s)
			}
			start = loc[1]
		}
		if s := strings.TrimSpace(para[start:]); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clip(s string) string {
	if len(s) <= maxContext {
		return s
	}
	cut := s[:maxContext]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut
}
