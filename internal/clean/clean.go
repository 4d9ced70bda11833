// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean produces the final body text for a resolved section.
// Implements: prd004-extraction (R3);
//
//	docs/ARCHITECTURE § Text Extraction.
//
// Cleaning strips the section's own heading line, removes page
// artifacts left behind by paginated source documents, and collapses
// the remaining whitespace. A section that cleans down to nothing is
// reported NotFound rather than Found-with-empty-text.
package clean

import (
	"strings"

	"github.com/pdiddy/filing-engine/internal/normalize"
	"github.com/pdiddy/filing-engine/internal/schema"
	"github.com/pdiddy/filing-engine/pkg/types"
)

// pageArtifactMinRepeat is how many times a short line must recur
// within one section before it is treated as a running header or
// footer and removed.
const pageArtifactMinRepeat = 3

// Section extracts and cleans the body of one resolved boundary,
// half-open [start, end) in normalized text offsets. The returned
// result is Found with non-empty text and a raw span, or NotFound when
// nothing survives cleaning.
func Section(doc *normalize.Document, spec *schema.ItemSpec, start, end int) types.ItemResult {
	res := types.ItemResult{ItemID: spec.ID, Status: types.StatusNotFound}
	if start < 0 || end > doc.Len() || start >= end {
		return res
	}

	bodyStart := start + headingLen(doc.Text[start:end], spec)
	text := stripArtifacts(doc.Text[bodyStart:end])
	if text == "" {
		return res
	}

	rawStart, rawEnd := doc.RawSpan(bodyStart, end)
	res.Status = types.StatusFound
	res.Text = text
	res.RawSpan = &types.Span{Start: rawStart, End: rawEnd}
	return res
}

// headingLen returns how many bytes of the section's own heading line
// to drop from the front. The heading is whatever pattern anchored the
// boundary, extended through the end of its line so trailing title
// text goes with it.
func headingLen(body string, spec *schema.ItemSpec) int {
	matched := 0
	for _, re := range spec.Strong {
		if loc := re.FindStringIndex(body); loc != nil && loc[0] == 0 && loc[1] > matched {
			matched = loc[1]
		}
	}
	if matched == 0 {
		if loc := spec.Weak.FindStringIndex(body); loc != nil && loc[0] == 0 {
			matched = loc[1]
		}
	}
	if matched == 0 {
		return 0
	}
	if nl := strings.IndexByte(body[matched:], '\n'); nl >= 0 {
		return matched + nl + 1
	}
	// No line break after the heading: inline-markup documents can put
	// heading and body on one normalized line. Drop only the match.
	return matched
}

// stripArtifacts removes page-number lines and short lines that recur
// like running headers, then collapses blank-line runs and trims.
func stripArtifacts(body string) string {
	lines := strings.Split(body, "\n")

	counts := make(map[string]int)
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if t != "" && len(t) <= 60 {
			counts[t]++
		}
	}

	var out []string
	blank := true
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		switch {
		case t == "":
			if !blank {
				out = append(out, "")
				blank = true
			}
		case pageNumberLine(t), counts[t] >= pageArtifactMinRepeat:
			// dropped
		default:
			out = append(out, strings.TrimRight(ln, " "))
			blank = false
		}
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// pageNumberLine reports lines that are nothing but a page marker:
// "17", "- 17 -", "Page 17", "iv".
func pageNumberLine(t string) bool {
	t = strings.ToLower(t)
	t = strings.Trim(t, "-– \t")
	t = strings.TrimPrefix(t, "page")
	t = strings.TrimSpace(t)
	if t == "" || len(t) > 8 {
		return false
	}

	digits, romans := true, true
	for _, r := range t {
		if r < '0' || r > '9' {
			digits = false
		}
		switch r {
		case 'i', 'v', 'x', 'l', 'c':
		default:
			romans = false
		}
	}
	return digits || romans
}
