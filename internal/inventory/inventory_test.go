package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, extractedDir, "10-K"), 0o755); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(types.InventoryConfig{FilingsDir: tmpDir, MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func writeRecord(t *testing.T, tmpDir string, record types.FilingRecord) {
	t.Helper()
	data, err := json.Marshal(&record)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(tmpDir, extractedDir, string(record.FilingType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	name := strings.TrimSuffix(record.Filename, filepath.Ext(record.Filename)) + ".json"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleRecord(accession, company string) types.FilingRecord {
	return types.FilingRecord{
		FilingMetadata: types.FilingMetadata{
			Accession:  accession,
			CIK:        "123456",
			Company:    company,
			FilingType: types.Filing10K,
			Filed:      time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC),
			Period:     "20221231",
		},
		Filename: company + "-10k.txt",
		Items: []types.ItemResult{
			{ItemID: "1", Status: types.StatusFound,
				Text: "We design and manufacture semiconductor equipment for global markets."},
			{ItemID: "1A", Status: types.StatusFound,
				Text: "Supply chain disruption could materially harm operating results."},
			{ItemID: "7A", Status: types.StatusNotFound},
		},
	}
}

func ingest(t *testing.T, store *Store) IngestSummary {
	t.Helper()
	var out bytes.Buffer
	summary, err := store.Ingest(context.Background(), &out)
	if err != nil {
		t.Fatalf("Ingest: %v\n%s", err, out.String())
	}
	return summary
}

// --- tests ---

func TestIngestAndRetrieve(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))

	summary := ingest(t, store)
	if summary.Indexed != 1 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "semiconductor"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, want one", results)
	}
	r := results[0]
	if r.Accession != "0001-23-000001" || r.ItemID != "1" {
		t.Errorf("result = %+v", r)
	}
	if r.Company != "acme" || r.FilingType != types.Filing10K {
		t.Errorf("metadata = %+v", r)
	}
	if !strings.Contains(r.Excerpt, "[semiconductor]") {
		t.Errorf("Excerpt = %q, want match highlighting", r.Excerpt)
	}
}

func TestIngestSkipsUnchanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))

	ingest(t, store)
	summary := ingest(t, store)
	if summary.Skipped != 1 || summary.Indexed != 0 {
		t.Fatalf("second run summary = %+v", summary)
	}
}

func TestIngestUpdatesChanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	record := sampleRecord("0001-23-000001", "acme")
	writeRecord(t, tmpDir, record)
	ingest(t, store)

	record.Items[0].Text = "We now sell cloud software subscriptions."
	writeRecord(t, tmpDir, record)
	// Ensure a distinct mtime.
	path := filepath.Join(tmpDir, extractedDir, "10-K", "acme-10k.json")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	summary := ingest(t, store)
	if summary.Updated != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "subscriptions"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("updated text not searchable: %+v", results)
	}
	stale, err := store.Retrieve(context.Background(), QueryOptions{Query: "semiconductor"})
	if err != nil {
		t.Fatal(err)
	}
	if len(stale) != 0 {
		t.Errorf("old text still indexed: %+v", stale)
	}
}

func TestRetrieveStructuredFilters(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))

	other := sampleRecord("0002-23-000002", "globex")
	other.CIK = "999999"
	writeRecord(t, tmpDir, other)
	ingest(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{ItemID: "1A", CIK: "123456"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].ItemID != "1A" || results[0].Accession != "0001-23-000001" {
		t.Errorf("result = %+v", results[0])
	}
	if results[0].Status != types.StatusFound {
		t.Errorf("status = %s", results[0].Status)
	}
}

func TestRetrieveCombinedQueryAndFilter(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))
	ingest(t, store)

	// The term appears in item 1A, so filtering to item 1 must drop it.
	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "supply", ItemID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want none", results)
	}
}

func TestSectionFullText(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))
	ingest(t, store)

	text, err := store.Section(context.Background(), "0001-23-000001", "1A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Supply chain disruption") {
		t.Errorf("Section text = %q", text)
	}

	if _, err := store.Section(context.Background(), "0001-23-000001", "99"); err == nil {
		t.Error("want error for missing section")
	}
}

func TestRetrieveMaxResults(t *testing.T) {
	store, tmpDir := testSetup(t)
	writeRecord(t, tmpDir, sampleRecord("0001-23-000001", "acme"))
	writeRecord(t, tmpDir, sampleRecord("0002-23-000002", "globex"))
	ingest(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{FilingType: types.Filing10K, MaxResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want capped at 2", len(results))
	}
}
