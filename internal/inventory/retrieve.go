// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/filing-engine/pkg/types"
)

// excerptLen bounds the stored section text returned for structured
// queries, in bytes.
const excerptLen = 300

// QueryOptions holds parameters for inventory queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over section text.
	Query string

	// ItemID filters by schema item.
	ItemID string

	// FilingType filters by filing type.
	FilingType types.FilingType

	// CIK filters by registrant.
	CIK string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.ItemID == "" && q.FilingType == "" && q.CIK == ""
}

// QueryResult is one matching section with its filing metadata.
type QueryResult struct {
	Accession  string           `json:"accession" yaml:"accession"`
	CIK        string           `json:"cik" yaml:"cik"`
	Company    string           `json:"company" yaml:"company"`
	FilingType types.FilingType `json:"filing_type" yaml:"filing_type"`
	Filed      string           `json:"filed" yaml:"filed"`
	ItemID     string           `json:"item_id" yaml:"item_id"`
	Status     types.ItemStatus `json:"status" yaml:"status"`
	WordCount  int              `json:"word_count" yaml:"word_count"`

	// Excerpt is an FTS match snippet for full-text queries, or the
	// head of the section text otherwise.
	Excerpt string `json:"excerpt" yaml:"excerpt"`
}

// Retrieve queries the inventory with optional full-text search and
// structured filters. Full-text results come back by relevance;
// structured-only results by filed date, accession, item.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT f.accession, f.cik, f.company, f.filing_type, f.filed,
				sec.item_id, sec.status, sec.word_count,
				snippet(sections_fts, 0, '[', ']', '…', 16)
			FROM sections_fts
			JOIN sections sec ON sec.rowid = sections_fts.rowid
			JOIN filings f ON f.accession = sec.accession
			WHERE sections_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT f.accession, f.cik, f.company, f.filing_type, f.filed,
				sec.item_id, sec.status, sec.word_count,
				substr(coalesce(sec.content, ''), 1, ` + fmt.Sprint(excerptLen) + `)
			FROM sections sec
			JOIN filings f ON f.accession = sec.accession
			WHERE 1=1`)
	}

	if opts.ItemID != "" {
		qb.WriteString(` AND sec.item_id = ?`)
		args = append(args, opts.ItemID)
	}

	if opts.FilingType != "" {
		qb.WriteString(` AND f.filing_type = ?`)
		args = append(args, string(opts.FilingType))
	}

	if opts.CIK != "" {
		qb.WriteString(` AND f.cik = ?`)
		args = append(args, opts.CIK)
	}

	if useFTS {
		qb.WriteString(` ORDER BY sections_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY f.filed, f.accession, sec.item_id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr         QueryResult
			filingType string
			status     string
			filed      sql.NullString
			excerpt    sql.NullString
		)

		if err := rows.Scan(
			&qr.Accession, &qr.CIK, &qr.Company, &filingType, &filed,
			&qr.ItemID, &status, &qr.WordCount, &excerpt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		qr.FilingType = types.FilingType(filingType)
		qr.Status = types.ItemStatus(status)
		if filed.Valid {
			qr.Filed = filed.String
		}
		if excerpt.Valid {
			qr.Excerpt = excerpt.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}

// Section returns the full stored text of one section.
func (s *Store) Section(ctx context.Context, accession, itemID string) (string, error) {
	var content sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM sections WHERE accession = ? AND item_id = ?`,
		accession, itemID,
	).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("section %s of %s not found", itemID, accession)
		}
		return "", fmt.Errorf("looking up section: %w", err)
	}
	return content.String, nil
}
