// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package measure scores extracted section text against a term
// lexicon, producing a per-filing disclosure intensity measure.
// Implements: prd008-measure (R1-R3);
//
//	docs/ARCHITECTURE § Disclosure Measure.
package measure

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/filing-engine/pkg/types"
)

const extractedDir = "extracted"

// defaultItem is the section scored when the config names none: the
// MD&A, where macroeconomic discussion concentrates.
const defaultItem = "7"

// Lexicon is a scoring vocabulary: exact word matches, word-substring
// matches, and two-word phrases.
type Lexicon struct {
	Exact      []string `yaml:"exact"`
	Substrings []string `yaml:"substrings"`
	Bigrams    []string `yaml:"bigrams"`

	exact map[string]bool
	subs  []string
	bigr  map[string]bool
}

// DefaultLexicon returns the built-in macroeconomic vocabulary.
func DefaultLexicon() Lexicon {
	l := Lexicon{
		Exact: []string{
			"gdp", "inflation", "inflationary", "deflation", "recession",
			"unemployment", "macroeconomic", "tariff", "tariffs",
		},
		Substrings: []string{
			"econom",
		},
		Bigrams: []string{
			"interest rate", "interest rates", "exchange rate", "exchange rates",
			"monetary policy", "fiscal policy", "consumer spending",
			"commodity prices", "labor market", "economic conditions",
			"economic downturn",
		},
	}
	l.compile()
	return l
}

// LoadLexicon reads a YAML lexicon file. The file replaces the
// built-in vocabulary entirely.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	var l Lexicon
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Lexicon{}, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	if len(l.Exact) == 0 && len(l.Substrings) == 0 && len(l.Bigrams) == 0 {
		return Lexicon{}, fmt.Errorf("lexicon %s defines no terms", path)
	}
	l.compile()
	return l, nil
}

func (l *Lexicon) compile() {
	l.exact = make(map[string]bool, len(l.Exact))
	for _, w := range l.Exact {
		l.exact[strings.ToLower(w)] = true
	}
	l.subs = make([]string, len(l.Substrings))
	for i, s := range l.Substrings {
		l.subs[i] = strings.ToLower(s)
	}
	l.bigr = make(map[string]bool, len(l.Bigrams))
	for _, b := range l.Bigrams {
		l.bigr[strings.ToLower(b)] = true
	}
}

// Score is the lexicon measure for one text.
type Score struct {
	// Words is the token count of the scored text.
	Words int

	// Hits is the number of lexicon matches.
	Hits int

	// PerThousand is Hits normalized per thousand words.
	PerThousand float64
}

// Score tokenizes text and counts lexicon matches. A token matching
// both an exact term and a substring counts once; bigram matches count
// in addition to their constituent words.
func (l Lexicon) Score(text string) Score {
	tokens := tokenize(text)
	s := Score{Words: len(tokens)}
	if len(tokens) == 0 {
		return s
	}

	for i, tok := range tokens {
		if l.exact[tok] || matchesSubstring(tok, l.subs) {
			s.Hits++
		}
		if i+1 < len(tokens) && l.bigr[tok+" "+tokens[i+1]] {
			s.Hits++
		}
	}

	s.PerThousand = float64(s.Hits) / float64(s.Words) * 1000
	return s
}

func matchesSubstring(tok string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(tok, sub) {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits on non-letter boundaries, keeping
// digits inside tokens ("10-k" becomes "10", "k").
func tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// Measure scores one section across every extracted record of the
// configured filing type and writes a CSV of per-filing scores. It
// returns the number of data rows written.
func Measure(cfg types.MeasureConfig, w io.Writer) (int, error) {
	ft := cfg.FilingType
	if ft == "" {
		ft = types.Filing10K
	}
	item := cfg.Item
	if item == "" {
		item = defaultItem
	}

	lex := DefaultLexicon()
	if cfg.LexiconPath != "" {
		var err error
		lex, err = LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return 0, err
		}
	}

	dir := filepath.Join(cfg.FilingsDir, extractedDir, string(ft))
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("reading extracted directory %s: %w", dir, err)
	}

	type row struct {
		rec   types.FilingRecord
		score Score
	}
	var rows []row

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		var rec types.FilingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return 0, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}

		r, ok := rec.Item(item)
		if !ok || r.Status != types.StatusFound {
			fmt.Fprintf(w, "skipped %s (item %s %s)\n", rec.Filename, item, statusOr(r.Status))
			continue
		}
		rows = append(rows, row{rec: rec, score: lex.Score(r.Text)})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].rec.Accession != rows[j].rec.Accession {
			return rows[i].rec.Accession < rows[j].rec.Accession
		}
		return rows[i].rec.Filename < rows[j].rec.Filename
	})

	if cfg.OutputFile == "" {
		return 0, fmt.Errorf("no output file configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", cfg.OutputFile, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{
		"accession", "cik", "company", "filed", "item", "words", "hits", "score_per_1000",
	}); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, r := range rows {
		filed := ""
		if !r.rec.Filed.IsZero() {
			filed = r.rec.Filed.Format("2006-01-02")
		}
		err := cw.Write([]string{
			r.rec.Accession, r.rec.CIK, r.rec.Company, filed, item,
			strconv.Itoa(r.score.Words), strconv.Itoa(r.score.Hits),
			strconv.FormatFloat(r.score.PerThousand, 'f', 3, 64),
		})
		if err != nil {
			return 0, fmt.Errorf("writing row for %s: %w", r.rec.Filename, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing CSV: %w", err)
	}

	fmt.Fprintf(w, "scored %d filings to %s\n", len(rows), cfg.OutputFile)
	return len(rows), nil
}

func statusOr(s types.ItemStatus) types.ItemStatus {
	if s == "" {
		return types.StatusNotFound
	}
	return s
}
