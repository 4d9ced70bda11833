// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs the section extraction pipeline for one
// document and drives batch runs over a filings directory.
// Implements: prd004-extraction (R1-R5);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/filing-engine/internal/clean"
	"github.com/pdiddy/filing-engine/internal/locate"
	"github.com/pdiddy/filing-engine/internal/normalize"
	"github.com/pdiddy/filing-engine/internal/resolve"
	"github.com/pdiddy/filing-engine/internal/schema"
	"github.com/pdiddy/filing-engine/pkg/types"
)

// Request describes one extraction call: the filing type selecting the
// schema, the filed date (for the 8-K renumbering), and the items to
// report. An empty Items reports every item of the schema.
type Request struct {
	FilingType types.FilingType
	Filed      time.Time
	Items      []string
	Normalize  types.NormalizeConfig
}

// UnknownItemsError reports requested item ids that do not exist in
// the filing type's schema. Results for the valid ids are returned
// alongside it.
type UnknownItemsError struct {
	FilingType types.FilingType
	Items      []string
}

func (e *UnknownItemsError) Error() string {
	return fmt.Sprintf("unknown %s items: %s", e.FilingType, strings.Join(e.Items, ", "))
}

// Engine runs extractions against a schema registry. Stateless and
// safe for concurrent use; it performs no I/O.
type Engine struct {
	reg *schema.Registry
}

// NewEngine returns an engine over the given registry; nil uses the
// built-in schemas.
func NewEngine(reg *schema.Registry) *Engine {
	if reg == nil {
		reg = schema.Default()
	}
	return &Engine{reg: reg}
}

// ExtractDocument extracts the requested items from one raw document.
//
// Boundaries are always resolved against the full schema, whatever
// subset was requested: a neighboring heading is what ends a section,
// so dropping it from consideration would corrupt the requested
// items' spans.
//
// A document-level defect (undecodable, empty) is not an error here;
// every requested item comes back StatusMalformed. The only error
// conditions are an unknown filing type and unknown item ids; with
// unknown ids, results for the valid ids are still returned.
func (e *Engine) ExtractDocument(raw []byte, req Request) (map[string]types.ItemResult, error) {
	sch, err := e.reg.Lookup(req.FilingType, req.Filed)
	if err != nil {
		return nil, err
	}

	requested, unknown := partitionItems(sch, req.Items)
	var unknownErr error
	if len(unknown) > 0 {
		unknownErr = &UnknownItemsError{FilingType: req.FilingType, Items: unknown}
	}
	if len(requested) == 0 {
		return map[string]types.ItemResult{}, unknownErr
	}

	doc, err := normalize.Normalize(raw, req.Normalize)
	if err != nil {
		if errors.Is(err, normalize.ErrUnsupportedEncoding) || errors.Is(err, normalize.ErrEmptyDocument) {
			return allMalformed(requested), unknownErr
		}
		return nil, err
	}

	res := resolve.Resolve(locate.Locate(doc, sch), sch, doc.Len())

	out := make(map[string]types.ItemResult, len(requested))
	for _, id := range requested {
		spec, _ := sch.Spec(id)
		if b, ok := res.Boundary(id); ok {
			out[id] = clean.Section(doc, spec, b.Start, b.End)
			continue
		}
		out[id] = types.ItemResult{ItemID: id, Status: res.Status[id]}
	}
	return out, unknownErr
}

// Results converts an extraction map to a slice in schema order, for
// serialization.
func (e *Engine) Results(req Request, results map[string]types.ItemResult) []types.ItemResult {
	sch, err := e.reg.Lookup(req.FilingType, req.Filed)
	if err != nil {
		// Fall back to lexical order; the caller already saw the error.
		out := make([]types.ItemResult, 0, len(results))
		for _, r := range results {
			out = append(out, r)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
		return out
	}

	out := make([]types.ItemResult, 0, len(results))
	for _, id := range sch.IDs() {
		if r, ok := results[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// partitionItems validates requested ids against the schema. Empty
// means all items, in schema order.
func partitionItems(sch *schema.ItemSchema, items []string) (requested, unknown []string) {
	if len(items) == 0 {
		return sch.IDs(), nil
	}
	seen := make(map[string]bool, len(items))
	for _, id := range items {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := sch.Spec(id); ok {
			requested = append(requested, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return requested, unknown
}

func allMalformed(ids []string) map[string]types.ItemResult {
	out := make(map[string]types.ItemResult, len(ids))
	for _, id := range ids {
		out[id] = types.ItemResult{ItemID: id, Status: types.StatusMalformed}
	}
	return out
}
