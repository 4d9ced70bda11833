package consolidate

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

func writeRecord(t *testing.T, filingsDir string, rec types.FilingRecord) {
	t.Helper()
	dir := filepath.Join(filingsDir, extractedDir, string(rec.FilingType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		t.Fatal(err)
	}
	name := strings.TrimSuffix(rec.Filename, filepath.Ext(rec.Filename)) + ".json"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func record(accession, company string, items []types.ItemResult) types.FilingRecord {
	return types.FilingRecord{
		FilingMetadata: types.FilingMetadata{
			Accession:  accession,
			CIK:        "123456",
			Company:    company,
			FilingType: types.Filing10K,
			Filed:      time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		Filename: company + ".txt",
		Items:    items,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestConsolidate(t *testing.T) {
	filingsDir := t.TempDir()
	writeRecord(t, filingsDir, record("0002", "globex", []types.ItemResult{
		{ItemID: "1", Status: types.StatusFound, Text: "Globex operates worldwide."},
		{ItemID: "7", Status: types.StatusNotFound},
	}))
	writeRecord(t, filingsDir, record("0001", "acme", []types.ItemResult{
		{ItemID: "1", Status: types.StatusFound, Text: "Acme makes widgets."},
		{ItemID: "7", Status: types.StatusFound, Text: "Revenue grew, as discussed below."},
	}))

	outPath := filepath.Join(filingsDir, "consolidated", "10-K.csv")
	var out bytes.Buffer
	n, err := Consolidate(types.ConsolidateConfig{
		FilingsDir: filingsDir,
		FilingType: types.Filing10K,
		OutputFile: outPath,
	}, &out)
	if err != nil {
		t.Fatalf("Consolidate: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}

	rows := readCSV(t, outPath)
	if len(rows) != 3 {
		t.Fatalf("CSV rows = %d, want header + 2", len(rows))
	}

	header := rows[0]
	want := []string{
		"accession", "cik", "company", "filing_type", "filed", "period", "filename",
		"item_1_status", "item_1_words", "item_1_text",
		"item_7_status", "item_7_words", "item_7_text",
	}
	if strings.Join(header, ",") != strings.Join(want, ",") {
		t.Errorf("header = %v", header)
	}

	// Sorted by accession: acme first.
	if rows[1][0] != "0001" || rows[1][2] != "acme" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[1][4] != "2023-02-15" {
		t.Errorf("filed = %q", rows[1][4])
	}
	if rows[1][8] != "3" || rows[1][9] != "Acme makes widgets." {
		t.Errorf("item 1 = %q/%q", rows[1][8], rows[1][9])
	}
	if rows[2][10] != string(types.StatusNotFound) || rows[2][11] != "0" || rows[2][12] != "" {
		t.Errorf("globex item 7 = %v", rows[2][10:])
	}
}

func TestConsolidateSelectedItems(t *testing.T) {
	filingsDir := t.TempDir()
	writeRecord(t, filingsDir, record("0001", "acme", []types.ItemResult{
		{ItemID: "1", Status: types.StatusFound, Text: "Business text."},
		{ItemID: "1A", Status: types.StatusFound, Text: "Risk text."},
	}))

	outPath := filepath.Join(filingsDir, "out.csv")
	var out bytes.Buffer
	if _, err := Consolidate(types.ConsolidateConfig{
		FilingsDir: filingsDir,
		OutputFile: outPath,
		Items:      []string{"1A"},
	}, &out); err != nil {
		t.Fatal(err)
	}

	rows := readCSV(t, outPath)
	if got := strings.Join(rows[0], ","); strings.Contains(got, "item_1_status") {
		t.Errorf("unselected item leaked into header: %v", rows[0])
	}
	if rows[1][9] != "Risk text." {
		t.Errorf("row = %v", rows[1])
	}
}

func TestConsolidateUnknownItem(t *testing.T) {
	filingsDir := t.TempDir()
	if _, err := Consolidate(types.ConsolidateConfig{
		FilingsDir: filingsDir,
		OutputFile: filepath.Join(filingsDir, "out.csv"),
		Items:      []string{"nope"},
	}, &bytes.Buffer{}); err == nil {
		t.Fatal("want error for unknown item id")
	}
}

func TestConsolidateMinWords(t *testing.T) {
	filingsDir := t.TempDir()
	writeRecord(t, filingsDir, record("0001", "acme", []types.ItemResult{
		{ItemID: "1", Status: types.StatusFound,
			Text: "A reasonably long business description with more than five words."},
	}))
	writeRecord(t, filingsDir, record("0002", "globex", []types.ItemResult{
		{ItemID: "1", Status: types.StatusFound, Text: "Too short."},
	}))

	outPath := filepath.Join(filingsDir, "out.csv")
	var out bytes.Buffer
	n, err := Consolidate(types.ConsolidateConfig{
		FilingsDir: filingsDir,
		OutputFile: outPath,
		MinWords:   5,
	}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("rows = %d, want 1 (short filing dropped)", n)
	}
	if !strings.Contains(out.String(), "dropped globex.txt") {
		t.Errorf("progress output = %q", out.String())
	}
}

func TestConsolidateEmptyDirectory(t *testing.T) {
	filingsDir := t.TempDir()
	outPath := filepath.Join(filingsDir, "out.csv")
	n, err := Consolidate(types.ConsolidateConfig{
		FilingsDir: filingsDir,
		OutputFile: outPath,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
	rows := readCSV(t, outPath)
	if len(rows) != 1 {
		t.Errorf("CSV = %v, want header only", rows)
	}
}
