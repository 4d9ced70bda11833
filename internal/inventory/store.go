// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inventory persists extracted filing records and builds a
// retrieval index over section text.
// Implements: prd006-inventory (R1-R5);
//
//	docs/ARCHITECTURE § Inventory.
package inventory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/filing-engine/pkg/types"
)

const (
	extractedDir = "extracted"
	indexDir     = "index"
	dbFile       = "filings.db"
)

// Store manages the filing inventory SQLite database.
type Store struct {
	db         *sql.DB
	filingsDir string
	maxResults int
}

// NewStore opens or creates the inventory database at
// filingsDir/index/filings.db, creating the schema if needed.
func NewStore(cfg types.InventoryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.FilingsDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		filingsDir: cfg.FilingsDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS filings (
			accession TEXT PRIMARY KEY,
			cik TEXT,
			company TEXT,
			filing_type TEXT,
			filed TEXT,
			period TEXT,
			sic TEXT,
			fiscal_year_end TEXT,
			filename TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			accession TEXT NOT NULL REFERENCES filings(accession),
			item_id TEXT NOT NULL,
			status TEXT NOT NULL,
			word_count INTEGER,
			content TEXT,
			UNIQUE(accession, item_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_accession ON sections(accession)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_item_id ON sections(item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_filings_cik ON filings(cik)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			accession TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='sections_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE sections_fts USING fts5(content, content=sections, content_rowid=rowid)`,
			`CREATE TRIGGER sections_ai AFTER INSERT ON sections BEGIN
				INSERT INTO sections_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
			`CREATE TRIGGER sections_ad AFTER DELETE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, content) VALUES('delete', old.rowid, old.content);
			END`,
			`CREATE TRIGGER sections_au AFTER UPDATE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, content) VALUES('delete', old.rowid, old.content);
				INSERT INTO sections_fts(rowid, content) VALUES (new.rowid, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an inventory indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads extracted JSON records from filingsDir/extracted/ and
// populates the database incrementally: new records are indexed,
// changed ones replaced, unchanged ones skipped on file mod time.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	baseDir := filepath.Join(s.filingsDir, extractedDir)

	typeDirs, err := os.ReadDir(baseDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading extracted directory %s: %w", baseDir, err)
	}

	var summary IngestSummary

	for _, typeDir := range typeDirs {
		if !typeDir.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(baseDir, typeDir.Name()))
		if err != nil {
			return summary, fmt.Errorf("reading %s: %w", typeDir.Name(), err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}

			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			s.ingestFile(ctx, filepath.Join(baseDir, typeDir.Name(), entry.Name()), entry, &summary, w)
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestFile(ctx context.Context, path string, entry os.DirEntry, summary *IngestSummary, w io.Writer) {
	name := strings.TrimSuffix(entry.Name(), ".json")

	info, err := entry.Info()
	if err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", name, err)
		summary.Failed++
		return
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", name, err)
		summary.Failed++
		return
	}

	var record types.FilingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		fmt.Fprintf(w, "failed  %s: parse error: %v\n", name, err)
		summary.Failed++
		return
	}

	// Records missing an accession (no submission header in the raw
	// file) key on their filename instead.
	accession := record.Accession
	if accession == "" {
		accession = name
	}

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM indexing_status WHERE accession = ?`, accession,
	).Scan(&storedModTime)

	if err == nil && storedModTime == modTime {
		fmt.Fprintf(w, "skipped %s\n", name)
		summary.Skipped++
		return
	}
	isUpdate := err == nil

	if err := s.ingestRecord(ctx, accession, &record, modTime, isUpdate); err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", name, err)
		summary.Failed++
		return
	}

	if isUpdate {
		fmt.Fprintf(w, "updated %s (%d sections)\n", name, len(record.Items))
		summary.Updated++
	} else {
		fmt.Fprintf(w, "indexing %s (%d sections)\n", name, len(record.Items))
		summary.Indexed++
	}
}

func (s *Store) ingestRecord(ctx context.Context, accession string, record *types.FilingRecord, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE accession = ?`, accession); err != nil {
			return fmt.Errorf("deleting old sections: %w", err)
		}
	}

	filedStr := ""
	if !record.Filed.IsZero() {
		filedStr = record.Filed.Format(time.RFC3339)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO filings (accession, cik, company, filing_type, filed, period, sic, fiscal_year_end, filename)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(accession) DO UPDATE SET
			cik=excluded.cik, company=excluded.company, filing_type=excluded.filing_type,
			filed=excluded.filed, period=excluded.period, sic=excluded.sic,
			fiscal_year_end=excluded.fiscal_year_end, filename=excluded.filename`,
		accession, record.CIK, record.Company, string(record.FilingType),
		filedStr, record.Period, record.SIC, record.FiscalYearEnd, record.Filename,
	)
	if err != nil {
		return fmt.Errorf("upserting filing: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO sections (accession, item_id, status, word_count, content)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range record.Items {
		_, err := stmt.ExecContext(ctx,
			accession, item.ItemID, string(item.Status), item.WordCount(), item.Text,
		)
		if err != nil {
			return fmt.Errorf("inserting section %s: %w", item.ItemID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (accession, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(accession) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		accession, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}
