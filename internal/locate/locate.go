// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate finds candidate item headings in normalized filing
// text. Implements: prd003-boundary-resolution (R1-R2);
//
//	docs/ARCHITECTURE § Candidate Location.
//
// Location is deliberately permissive: it reports every position that
// could be a heading, including table-of-contents entries and
// cross-references. Disambiguation belongs to the resolver, which sees
// all candidates for all items at once.
package locate

import (
	"sort"

	"github.com/pdiddy/filing-engine/internal/normalize"
	"github.com/pdiddy/filing-engine/internal/schema"
)

// Strength classifies how a candidate matched.
type Strength int

const (
	// Weak means only the bare item number matched ("Item 7").
	Weak Strength = iota

	// Strong means the item number matched together with the section
	// title ("Item 7. Management's Discussion and Analysis").
	Strong
)

func (s Strength) String() string {
	if s == Strong {
		return "strong"
	}
	return "weak"
}

// Candidate is one potential heading occurrence in normalized text.
type Candidate struct {
	// ItemID is the schema item the match belongs to.
	ItemID string

	// Pos and End delimit the matched text, half-open, in normalized
	// text offsets. Pos is the candidate boundary position.
	Pos int
	End int

	// Matched is the matched heading text.
	Matched string

	// Strength records whether the title matched too.
	Strength Strength
}

// Locate scans the document once per pattern and returns every
// candidate for every schema item, sorted by position. A weak match at
// the same position as a strong match is dropped; the strong one
// carries strictly more evidence.
func Locate(doc *normalize.Document, sch *schema.ItemSchema) []Candidate {
	var cands []Candidate

	for _, spec := range sch.Items {
		// strongAt marks positions already claimed by a strong match
		// of this item.
		strongAt := make(map[int]bool)

		for _, re := range spec.Strong {
			for _, loc := range re.FindAllStringIndex(doc.Text, -1) {
				if strongAt[loc[0]] {
					continue
				}
				strongAt[loc[0]] = true
				cands = append(cands, Candidate{
					ItemID:   spec.ID,
					Pos:      loc[0],
					End:      loc[1],
					Matched:  doc.Text[loc[0]:loc[1]],
					Strength: Strong,
				})
			}
		}

		for _, loc := range spec.Weak.FindAllStringIndex(doc.Text, -1) {
			if strongAt[loc[0]] {
				continue
			}
			cands = append(cands, Candidate{
				ItemID:   spec.ID,
				Pos:      loc[0],
				End:      loc[1],
				Matched:  doc.Text[loc[0]:loc[1]],
				Strength: Weak,
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Pos != cands[j].Pos {
			return cands[i].Pos < cands[j].Pos
		}
		return cands[i].ItemID < cands[j].ItemID
	})
	return cands
}
