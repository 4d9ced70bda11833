package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

func TestLookupKnownTypes(t *testing.T) {
	reg := Default()
	for _, ft := range types.KnownFilingTypes() {
		sch, err := reg.Lookup(ft, time.Time{})
		if err != nil {
			t.Fatalf("Lookup(%s): %v", ft, err)
		}
		if sch.FilingType != ft {
			t.Errorf("Lookup(%s).FilingType = %s", ft, sch.FilingType)
		}
		if len(sch.Items) == 0 {
			t.Errorf("Lookup(%s) has no items", ft)
		}
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, err := Default().Lookup(types.FilingType("S-1"), time.Time{})
	if !errors.Is(err, ErrUnknownFilingType) {
		t.Fatalf("err = %v, want ErrUnknownFilingType", err)
	}
}

func TestLookup8KCutoverDate(t *testing.T) {
	reg := Default()

	before, err := reg.Lookup(types.Filing8K, time.Date(2003, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := before.Spec("5.02"); ok {
		t.Error("pre-2004 schema should not contain dotted item 5.02")
	}
	if _, ok := before.Spec("5"); !ok {
		t.Error("pre-2004 schema should contain numeric item 5")
	}

	after, err := reg.Lookup(types.Filing8K, time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := after.Spec("5.02"); !ok {
		t.Error("post-2004 schema should contain dotted item 5.02")
	}

	// Zero date selects the current scheme.
	zero, err := reg.Lookup(types.Filing8K, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := zero.Spec("9.01"); !ok {
		t.Error("zero-date lookup should select the current 8-K schema")
	}
}

func TestSchemaOrderMatchesDeclaration(t *testing.T) {
	sch, _ := Default().Lookup(types.Filing10K, time.Time{})
	ids := sch.IDs()

	// Spot-check the ordering the resolver depends on.
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	pairs := [][2]string{{"1", "1A"}, {"1A", "7"}, {"7", "7A"}, {"7A", "8"}, {"15", "16"}}
	for _, p := range pairs {
		if idx[p[0]] >= idx[p[1]] {
			t.Errorf("item %s should precede item %s", p[0], p[1])
		}
	}
}

func TestHeadingPatternTolerance(t *testing.T) {
	sch, _ := Default().Lookup(types.Filing10K, time.Time{})

	tests := []struct {
		id      string
		heading string
	}{
		{"7", "Item 7. Management's Discussion and Analysis of Financial Condition and Results of Operations"},
		{"7", "ITEM 7 — MANAGEMENT’S DISCUSSION AND ANALYSIS"},
		{"7", "item 7: management's discussion and analysis"},
		{"1A", "Item 1A.  Risk Factors"},
		{"1A", "ITEM 1A RISK FACTORS"},
		{"7A", "Item 7A. Quantitative and Qualitative Disclosures About Market Risk"},
		{"9A", "Item 9A. Controls and Procedures"},
		{"15", "Item 15. Exhibits, Financial Statement Schedules"},
	}

	for _, tt := range tests {
		spec, ok := sch.Spec(tt.id)
		if !ok {
			t.Fatalf("no spec for item %s", tt.id)
		}
		matched := false
		for _, re := range spec.Strong {
			if re.MatchString(tt.heading) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("item %s: no strong pattern matches %q", tt.id, tt.heading)
		}
	}
}

func TestWeakPatternBoundaries(t *testing.T) {
	sch, _ := Default().Lookup(types.Filing10K, time.Time{})

	tests := []struct {
		id    string
		text  string
		match bool
	}{
		{"1", "Item 1. Business", true},
		{"1", "Item 1A. Risk Factors", false}, // must not bleed into 1A
		{"1", "Item 15. Exhibits", false},
		{"7", "see Item 7 above", true}, // cross-references match; the resolver filters them
		{"7A", "ITEM 7A.", true},
	}

	for _, tt := range tests {
		spec, _ := sch.Spec(tt.id)
		if got := spec.Weak.MatchString(tt.text); got != tt.match {
			t.Errorf("item %s weak match on %q = %v, want %v", tt.id, tt.text, got, tt.match)
		}
	}
}

func TestDottedItemPatterns(t *testing.T) {
	sch, _ := Default().Lookup(types.Filing8K, time.Time{})

	spec, ok := sch.Spec("5.02")
	if !ok {
		t.Fatal("no spec for 8-K item 5.02")
	}
	heading := "Item 5.02 Departure of Directors or Certain Officers"
	matched := false
	for _, re := range spec.Strong {
		if re.MatchString(heading) {
			matched = true
		}
	}
	if !matched {
		t.Errorf("no strong pattern matches %q", heading)
	}
	if spec.Weak.MatchString("Item 5.03") {
		t.Error("weak pattern for 5.02 must not match item 5.03")
	}
}

func TestTenQPartQualifiedIDs(t *testing.T) {
	sch, _ := Default().Lookup(types.Filing10Q, time.Time{})

	p1, ok := sch.Spec("part_1__1")
	if !ok {
		t.Fatal("missing part_1__1")
	}
	if !p1.Weak.MatchString("Item 1. Financial Statements") {
		t.Error("part_1__1 weak pattern should match a bare Item 1 heading")
	}

	p2, ok := sch.Spec("part_2__1A")
	if !ok {
		t.Fatal("missing part_2__1A")
	}
	found := false
	for _, re := range p2.Strong {
		if re.MatchString("Item 1A. Risk Factors") {
			found = true
		}
	}
	if !found {
		t.Error("part_2__1A strong pattern should match its Risk Factors heading")
	}
}
