// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns heading candidates into section boundaries.
// Implements: prd003-boundary-resolution (R1-R5);
//
//	docs/ARCHITECTURE § Boundary Resolution.
//
// The resolver applies a fixed rule sequence over the full candidate
// set: table-of-contents regions are excluded wholesale, then items are
// resolved in schema order under a monotonicity constraint, with
// strong-over-weak preferences for nearby candidates and an ambiguity
// escape for documents that repeat whole sections. Each rule is a named
// function so the sequence reads top to bottom.
package resolve

import (
	"github.com/pdiddy/filing-engine/internal/locate"
	"github.com/pdiddy/filing-engine/internal/schema"
	"github.com/pdiddy/filing-engine/pkg/types"
)

// Calibrated against a corpus of historical filings. Changing any of
// these shifts boundaries on real documents; adjust only with the
// regression fixtures in hand.
const (
	// tocSpanChars is the window width for table-of-contents
	// detection: this many distinct item headings packed into a span
	// this narrow is an index, not content.
	tocSpanChars = 2500

	// tocMinDistinct is the minimum distinct items in a window for it
	// to count as a table-of-contents region.
	tocMinDistinct = 4

	// tocRegionFrac restricts table-of-contents regions to the leading
	// fraction of the document.
	tocRegionFrac = 0.25

	// proximityWindow is how far ahead of the earliest admissible
	// candidate a strong candidate may sit and still be preferred.
	proximityWindow = 1500

	// minSectionGap is the smallest plausible section body. A weak
	// candidate closer than this to the previous boundary is treated
	// as a cross-reference when a strong alternative exists.
	minSectionGap = 150

	// duplicateSpreadFrac flags ambiguity: two strong candidates for
	// the same item separated by at least this fraction of the
	// document usually mean a repeated or consolidated filing.
	duplicateSpreadFrac = 0.40
)

// Boundary is one resolved section: the item and its half-open range
// in normalized text.
type Boundary struct {
	ItemID string
	Start  int
	End    int
}

// Resolution is the outcome for every schema item: zero or one
// boundary per item, plus a status for items without one.
type Resolution struct {
	// Boundaries holds resolved sections in document order. Boundaries
	// never overlap; each ends where the next begins or at document end.
	Boundaries []Boundary

	// Status maps every schema item id to its outcome. Items with a
	// boundary are StatusFound (subject to downgrade if cleaning
	// yields no text).
	Status map[string]types.ItemStatus
}

// Boundary returns the resolved boundary for id, or false.
func (r *Resolution) Boundary(id string) (Boundary, bool) {
	for _, b := range r.Boundaries {
		if b.ItemID == id {
			return b, true
		}
	}
	return Boundary{}, false
}

// Resolve runs the rule sequence over the candidates for one document.
// docLen is the normalized text length. Candidates must be sorted by
// position, as Locate returns them.
func Resolve(cands []locate.Candidate, sch *schema.ItemSchema, docLen int) *Resolution {
	res := &Resolution{Status: make(map[string]types.ItemStatus, len(sch.Items))}

	// A document matching no heading of any schema item is structurally
	// unrecognizable, not merely missing sections.
	if len(cands) == 0 {
		for _, it := range sch.Items {
			res.Status[it.ID] = types.StatusMalformed
		}
		return res
	}

	excluded := ruleTOC(cands, docLen)

	// byItem preserves position order within each item.
	byItem := make(map[string][]locate.Candidate, len(sch.Items))
	for i, c := range cands {
		if excluded[i] {
			continue
		}
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	prevStart := -1
	for _, it := range sch.Items {
		adm := ruleMonotonic(byItem[it.ID], prevStart)
		if len(adm) == 0 {
			res.Status[it.ID] = types.StatusNotFound
			continue
		}

		if ruleDuplicate(adm, docLen) {
			res.Status[it.ID] = types.StatusAmbiguous
			continue
		}

		chosen := ruleProximity(adm)
		chosen = ruleCrossReference(chosen, adm, prevStart)

		res.Boundaries = append(res.Boundaries, Boundary{ItemID: it.ID, Start: chosen.Pos})
		res.Status[it.ID] = types.StatusFound
		prevStart = chosen.Pos
	}

	// Each section runs to the next resolved boundary; the last runs to
	// document end.
	for i := range res.Boundaries {
		if i+1 < len(res.Boundaries) {
			res.Boundaries[i].End = res.Boundaries[i+1].Start
		} else {
			res.Boundaries[i].End = docLen
		}
	}
	return res
}

// ruleTOC excludes table-of-contents regions: any window of tocSpanChars
// starting in the leading tocRegionFrac of the document that contains
// headings for at least tocMinDistinct distinct items. Every candidate
// inside a detected window is excluded, strong matches included; a TOC
// lists full titles, so strength is no defense there. A document may
// have several such regions (cover index plus part indexes).
func ruleTOC(cands []locate.Candidate, docLen int) []bool {
	excluded := make([]bool, len(cands))
	limit := int(float64(docLen) * tocRegionFrac)

	for i := range cands {
		if cands[i].Pos > limit {
			break
		}
		distinct := map[string]bool{}
		j := i
		for ; j < len(cands) && cands[j].Pos < cands[i].Pos+tocSpanChars; j++ {
			distinct[cands[j].ItemID] = true
		}
		if len(distinct) >= tocMinDistinct {
			for k := i; k < j; k++ {
				excluded[k] = true
			}
		}
	}
	return excluded
}

// ruleMonotonic keeps only candidates strictly after the previously
// accepted boundary. Items appear in schema order in a well-formed
// document; a candidate at or before the previous boundary is a stray
// back-reference.
func ruleMonotonic(cands []locate.Candidate, prevStart int) []locate.Candidate {
	var adm []locate.Candidate
	for _, c := range cands {
		if c.Pos > prevStart {
			adm = append(adm, c)
		}
	}
	return adm
}

// ruleDuplicate reports ambiguity: two strong candidates separated by
// a large fraction of the document, with nothing to prefer one over
// the other.
func ruleDuplicate(adm []locate.Candidate, docLen int) bool {
	spread := int(float64(docLen) * duplicateSpreadFrac)
	firstStrong := -1
	for _, c := range adm {
		if c.Strength != locate.Strong {
			continue
		}
		if firstStrong < 0 {
			firstStrong = c.Pos
			continue
		}
		if c.Pos-firstStrong >= spread {
			return true
		}
	}
	return false
}

// ruleProximity picks the earliest admissible candidate, unless a
// strong candidate sits within proximityWindow of it; real headings
// carry their title, so the strong one wins the tie.
func ruleProximity(adm []locate.Candidate) locate.Candidate {
	earliest := adm[0]
	if earliest.Strength == locate.Strong {
		return earliest
	}
	for _, c := range adm[1:] {
		if c.Pos > earliest.Pos+proximityWindow {
			break
		}
		if c.Strength == locate.Strong {
			return c
		}
	}
	return earliest
}

// ruleCrossReference rejects a weak candidate packed against the
// previous boundary when a strong candidate exists later: "as noted in
// Item 3" in an item's opening sentence is a reference, not a heading.
func ruleCrossReference(chosen locate.Candidate, adm []locate.Candidate, prevStart int) locate.Candidate {
	if chosen.Strength == locate.Strong {
		return chosen
	}
	if prevStart < 0 || chosen.Pos-prevStart >= minSectionGap {
		return chosen
	}
	for _, c := range adm {
		if c.Pos > chosen.Pos && c.Strength == locate.Strong {
			return c
		}
	}
	return chosen
}
