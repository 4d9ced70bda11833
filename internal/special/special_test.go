package special

import (
	"testing"

	"github.com/pdiddy/filing-engine/pkg/types"
)

func TestScanRestructuringWithAmount(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{})
	text := "During fiscal 2023, we recorded a restructuring charge of $125.3 million " +
		"related to workforce reduction. See Note 12 for further detail."

	hits := s.Scan("7", text)
	if len(hits) == 0 {
		t.Fatal("no hits")
	}

	var hit *types.SpecialItem
	for i := range hits {
		if hits[i].Type == "restructuring" {
			hit = &hits[i]
		}
	}
	if hit == nil {
		t.Fatalf("no restructuring hit in %+v", hits)
	}
	if hit.AmountRaw != "$125.3 million" {
		t.Errorf("AmountRaw = %q", hit.AmountRaw)
	}
	if hit.SourceSection != "7" {
		t.Errorf("SourceSection = %q", hit.SourceSection)
	}
	if hit.Confidence <= 0.5 || hit.Confidence > 1 {
		t.Errorf("Confidence = %v, want in (0.5, 1]", hit.Confidence)
	}
	if len(hit.KeywordsMatched) == 0 {
		t.Error("no keywords recorded")
	}
}

func TestScanFootnoteReference(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{})
	text := "The goodwill impairment is described in Note 8 to the consolidated financial statements."

	hits := s.Scan("8", text)
	found := false
	for _, h := range hits {
		if h.Type == "impairment" && h.FootnoteReference == "Note 8" {
			found = true
		}
	}
	if !found {
		t.Errorf("no impairment hit with footnote: %+v", hits)
	}
}

func TestScanBareAmount(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{})
	text := "We completed the acquisition of Widget Co for 450 million in cash."

	hits := s.Scan("1", text)
	found := false
	for _, h := range hits {
		if h.Type == "acquisition" && h.AmountRaw == "450 million" {
			found = true
		}
	}
	if !found {
		t.Errorf("hits = %+v", hits)
	}
}

func TestScanThresholdFilters(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{ConfidenceThreshold: 0.9})
	// Keyword only, no amount or footnote: confidence 0.5, below 0.9.
	if hits := s.Scan("7", "The severance program continued."); len(hits) != 0 {
		t.Errorf("hits = %+v, want none above threshold 0.9", hits)
	}
}

func TestScanNoHitsOnPlainText(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{})
	if hits := s.Scan("1", "Our company designs and sells consumer electronics worldwide."); len(hits) != 0 {
		t.Errorf("hits = %+v, want none", hits)
	}
}

func TestScanCustomCategory(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{
		Keywords: map[string][]string{
			"litigation": {"class action settlement"},
		},
	})
	text := "We paid $40 million under the class action settlement."

	hits := s.Scan("3", text)
	found := false
	for _, h := range hits {
		if h.Type == "litigation" {
			found = true
		}
	}
	if !found {
		t.Errorf("custom category missed: %+v", hits)
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	s := NewScanner(types.SpecialItemsConfig{})
	text := "We recorded an impairment charge and a restructuring charge of $10 million."

	a := s.Scan("7", text)
	b := s.Scan("7", text)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			t.Errorf("order differs at %d: %s vs %s", i, a[i].Type, b[i].Type)
		}
	}
}
