// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema registers the item schemas for each supported filing
// type: the ordered item identifiers, display names, and the heading
// patterns used to recognize each item in document text.
// Implements: prd001-item-schemas (R1-R4);
//
//	docs/ARCHITECTURE § Item Schemas.
//
// Schemas are built once at package init and never mutated afterward,
// so a single Registry is shared read-only across concurrent
// extractions. All patterns are Go regexp (RE2), which matches in
// linear time; heading recognition cannot backtrack pathologically.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

// ErrUnknownFilingType is returned by Lookup for a filing type with no
// registered schema.
var ErrUnknownFilingType = errors.New("unknown filing type")

// eightKRenumbered is the date the 8-K item numbering changed from the
// plain numeric scheme (1-12) to the dotted scheme (1.01-9.01).
var eightKRenumbered = time.Date(2004, time.August, 23, 0, 0, 0, 0, time.UTC)

// ItemSpec describes one schema item: its identifier, display name,
// and the compiled patterns that recognize its heading. Per R1.2.
type ItemSpec struct {
	// ID is the item identifier (e.g. "7A", "part_1__2", "5.02").
	ID string

	// DisplayName is the canonical section title.
	DisplayName string

	// Required marks items a well-formed filing of this type is
	// expected to contain. Informational only; a missing required
	// item is still NotFound, never an error.
	Required bool

	// Strong patterns match the item number together with (a fragment
	// of) the section title. A strong match is near-certain to be a
	// heading rather than a cross-reference.
	Strong []*regexp.Regexp

	// Weak matches the bare item number ("Item 7A"). Permissive by
	// design: cross-references and TOC entries match too, and are
	// filtered by the boundary resolver.
	Weak *regexp.Regexp
}

// ItemSchema is the ordered, immutable item list for one filing type.
// Ordering is significant: it encodes the expected sequential
// appearance of items in a well-formed document. Per R1.3.
type ItemSchema struct {
	FilingType types.FilingType

	// Items in declared order.
	Items []ItemSpec

	byID map[string]int
}

// Spec returns the item with the given id, or false.
func (s *ItemSchema) Spec(id string) (*ItemSpec, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.Items[i], true
}

// IDs returns the item identifiers in schema order.
func (s *ItemSchema) IDs() []string {
	ids := make([]string, len(s.Items))
	for i, it := range s.Items {
		ids[i] = it.ID
	}
	return ids
}

// Registry holds the item schemas for all supported filing types.
type Registry struct {
	tenK      *ItemSchema
	tenQ      *ItemSchema
	eightK    *ItemSchema
	eightKOld *ItemSchema
}

// defaultRegistry is built once at init from the tables in tenk.go,
// tenq.go, and eightk.go.
var defaultRegistry = &Registry{
	tenK:      build(types.Filing10K, tenKItems),
	tenQ:      build(types.Filing10Q, tenQItems),
	eightK:    build(types.Filing8K, eightKItems),
	eightKOld: build(types.Filing8K, eightKObsoleteItems),
}

// Default returns the shared registry of built-in schemas.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the item schema for a filing type. The filed date
// selects between the current and obsolete 8-K numbering; a zero date
// selects the current scheme. Per R2.1-R2.3.
func (r *Registry) Lookup(ft types.FilingType, filed time.Time) (*ItemSchema, error) {
	switch ft {
	case types.Filing10K:
		return r.tenK, nil
	case types.Filing10Q:
		return r.tenQ, nil
	case types.Filing8K:
		if !filed.IsZero() && filed.Before(eightKRenumbered) {
			return r.eightKOld, nil
		}
		return r.eightK, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilingType, ft)
	}
}

// itemDef is the raw table form of an item before pattern compilation.
type itemDef struct {
	id       string
	name     string
	required bool

	// titles are regex fragments for the section title; each is
	// combined with the item number into one strong pattern. Multiple
	// entries cover synonym headings across filing years.
	titles []string
}

// build compiles an itemDef table into an immutable ItemSchema.
func build(ft types.FilingType, defs []itemDef) *ItemSchema {
	s := &ItemSchema{
		FilingType: ft,
		Items:      make([]ItemSpec, 0, len(defs)),
		byID:       make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		spec := ItemSpec{
			ID:          d.id,
			DisplayName: d.name,
			Required:    d.required,
			Weak:        regexp.MustCompile(weakPattern(d.id)),
		}
		for _, title := range d.titles {
			spec.Strong = append(spec.Strong, regexp.MustCompile(strongPattern(d.id, title)))
		}
		s.byID[d.id] = len(s.Items)
		s.Items = append(s.Items, spec)
	}
	return s
}

// itemNumber extracts the number fragment used in heading patterns:
// "part_2__1A" yields "1A", dotted 8-K ids are regex-escaped.
func itemNumber(id string) string {
	if i := strings.LastIndex(id, "__"); i >= 0 {
		id = id[i+2:]
	}
	return strings.ReplaceAll(id, ".", `\.`)
}

// strongPattern joins the item number and a title fragment, tolerating
// variable whitespace and optional punctuation after the number.
// Per R3.1-R3.3.
func strongPattern(id, title string) string {
	return `(?i)\bitem\s*` + itemNumber(id) + `\s*[.:()\-–—]*\s*` + title
}

// weakPattern matches the bare item number. The trailing \b keeps
// "item 1" from matching "item 1A" or "item 15".
func weakPattern(id string) string {
	return `(?i)\bitem\s*` + itemNumber(id) + `\b`
}
