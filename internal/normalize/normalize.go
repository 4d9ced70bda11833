// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts raw filing markup into a canonical plain
// text stream with a position map back to the original bytes.
// Implements: prd002-normalization (R1-R5);
//
//	docs/ARCHITECTURE § Normalization.
//
// The stripper is a rune-level state machine rather than a stack of
// destructive regex replacements: every character it emits carries the
// raw offset it came from, so resolved section spans remain meaningful
// against the original document.
package normalize

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/filing-engine/pkg/types"
)

var (
	// ErrUnsupportedEncoding reports a byte stream that cannot be
	// decoded under the declared or auto-detected encoding.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrEmptyDocument reports input that normalized to no usable text.
	ErrEmptyDocument = errors.New("document contains no usable text")
)

// Document is the normalized form of one raw filing. Owned exclusively
// by the extraction call that created it; never shared across calls.
type Document struct {
	// Text is the normalized plain text: tags stripped, entities
	// decoded, runs of spaces collapsed, block boundaries reduced to
	// at most two newlines.
	Text string

	rawOff []int32
}

// Len returns the length of the normalized text in bytes.
func (d *Document) Len() int { return len(d.Text) }

// RawOffset maps a normalized text offset back to the raw input.
// Offsets past the end map to one past the last raw byte.
func (d *Document) RawOffset(n int) int {
	if len(d.rawOff) == 0 {
		return 0
	}
	if n < 0 {
		n = 0
	}
	if n >= len(d.rawOff) {
		return int(d.rawOff[len(d.rawOff)-1]) + 1
	}
	return int(d.rawOff[n])
}

// RawSpan maps a half-open normalized range to a raw byte range.
func (d *Document) RawSpan(start, end int) (int, int) {
	if end <= start {
		return d.RawOffset(start), d.RawOffset(start)
	}
	return d.RawOffset(start), d.RawOffset(end-1) + 1
}

// Normalize decodes and strips a raw document. It fails with
// ErrUnsupportedEncoding or ErrEmptyDocument; both mark the document
// malformed for every requested item downstream.
func Normalize(raw []byte, cfg types.NormalizeConfig) (*Document, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDocument
	}

	decoded, offs, err := decode(raw, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	p := &parser{
		src:          decoded,
		offs:         offs,
		removeTables: cfg.RemoveTables,
		out:          &builder{},
	}
	p.run()

	if !usable(p.out.text) {
		return nil, ErrEmptyDocument
	}

	return &Document{Text: string(p.out.text), rawOff: p.out.offs}, nil
}

// usable reports whether normalized text contains at least one letter
// or digit. A document of pure punctuation or whitespace is garbage.
func usable(text []byte) bool {
	for _, b := range text {
		if b >= '0' && b <= '9' || b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' {
			return true
		}
	}
	return false
}

// --- output builder ---

// builder accumulates normalized text with per-byte raw offsets,
// collapsing whitespace as it goes: runs of spaces become one space,
// runs of blank lines become one blank line, and leading/trailing
// whitespace never reaches the output.
type builder struct {
	text []byte
	offs []int32

	pendingNL  int
	pendingSP  bool
	pendingOff int32
}

func (b *builder) space(off int32) {
	if len(b.text) == 0 || b.pendingNL > 0 {
		return
	}
	if !b.pendingSP {
		b.pendingSP = true
		b.pendingOff = off
	}
}

func (b *builder) newline(off int32) {
	if len(b.text) == 0 {
		return
	}
	if b.pendingNL == 0 && !b.pendingSP {
		b.pendingOff = off
	}
	b.pendingSP = false
	if b.pendingNL < 2 {
		b.pendingNL++
	}
}

func (b *builder) rune(r rune, off int32) {
	switch {
	case r == ' ' || r == '\t' || r == '\r' || r == '\u00a0' || r == '\v':
		b.space(off)
		return
	case r == '\n' || r == '\f':
		b.newline(off)
		return
	case r < 0x20 || r == utf8.RuneError:
		// Control characters and replacement runes are noise.
		return
	}

	for b.pendingNL > 0 {
		b.text = append(b.text, '\n')
		b.offs = append(b.offs, b.pendingOff)
		b.pendingNL--
	}
	if b.pendingSP {
		b.text = append(b.text, ' ')
		b.offs = append(b.offs, b.pendingOff)
		b.pendingSP = false
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for i := 0; i < n; i++ {
		b.text = append(b.text, buf[i])
		b.offs = append(b.offs, off)
	}
}

// --- markup parser ---

// containerTags are elements whose entire content is dropped. The
// sec-header and ix:header entries cover the SGML submission header
// and the hidden inline-XBRL block of modern filings.
var containerTags = map[string]bool{
	"script":     true,
	"style":      true,
	"noscript":   true,
	"svg":        true,
	"head":       true,
	"sec-header": true,
	"ix:header":  true,
}

// blockTags are elements whose open or close marks a paragraph break.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "tr": true,
	"blockquote": true, "pre": true, "section": true, "article": true,
	"center": true, "table": true,
}

// cellTags separate table cells with a space so adjacent cell text
// does not run together.
var cellTags = map[string]bool{"td": true, "th": true}

type parser struct {
	src          string
	offs         []int32
	removeTables bool

	out *builder

	// tableBuf is non-nil while buffering a candidate-for-removal
	// table; tableDepth tracks nesting so only the outermost close
	// finalizes the decision.
	tableBuf   *builder
	tableDepth int
}

// cur returns the builder writes currently target.
func (p *parser) cur() *builder {
	if p.tableBuf != nil {
		return p.tableBuf
	}
	return p.out
}

func (p *parser) run() {
	i := 0
	for i < len(p.src) {
		switch p.src[i] {
		case '<':
			i = p.tag(i)
		case '&':
			i = p.entity(i)
		default:
			r, size := utf8.DecodeRuneInString(p.src[i:])
			p.cur().rune(r, p.offs[i])
			i += size
		}
	}
}

// tag consumes one markup construct starting at the '<' and returns
// the index of the first byte after it. A '<' that does not open a
// well-formed tag is emitted as literal text.
func (p *parser) tag(i int) int {
	off := p.offs[i]

	if strings.HasPrefix(p.src[i:], "<!--") {
		if end := strings.Index(p.src[i+4:], "-->"); end >= 0 {
			return i + 4 + end + 3
		}
		return len(p.src)
	}

	j := i + 1
	closing := false
	if j < len(p.src) && p.src[j] == '/' {
		closing = true
		j++
	}

	nameStart := j
	for j < len(p.src) && isTagNameByte(p.src[j]) {
		j++
	}
	name := strings.ToLower(p.src[nameStart:j])

	end := strings.IndexByte(p.src[j:], '>')
	if name == "" || end < 0 {
		p.cur().rune('<', off)
		return i + 1
	}
	after := j + end + 1

	switch {
	case containerTags[name] && !closing:
		return p.skipContainer(name, after)

	case name == "table" && p.removeTables:
		if closing {
			if p.tableDepth > 0 {
				p.tableDepth--
			}
			if p.tableDepth == 0 && p.tableBuf != nil {
				p.finishTable(off)
			}
		} else {
			if p.tableDepth == 0 {
				p.out.newline(off)
				p.tableBuf = &builder{}
			}
			p.tableDepth++
		}
		return after

	case blockTags[name]:
		p.cur().newline(off)
		return after

	case cellTags[name]:
		p.cur().space(off)
		return after
	}

	return after
}

// skipContainer drops everything up to the matching close tag. An
// unterminated container runs to end of input.
func (p *parser) skipContainer(name string, from int) int {
	closeTag := "</" + name
	idx := indexFold(p.src, closeTag, from)
	if idx < 0 {
		return len(p.src)
	}
	if end := strings.IndexByte(p.src[idx:], '>'); end >= 0 {
		return idx + end + 1
	}
	return len(p.src)
}

// finishTable decides whether a fully buffered table is content or a
// numeric exhibit. Numeric-dominated tables (financial data) are
// dropped; tables whose text mentions an item are kept, since filers
// sometimes wrap real section headings in layout tables.
func (p *parser) finishTable(off int32) {
	buf := p.tableBuf
	p.tableBuf = nil

	if keepTable(buf.text) {
		for k := 0; k < len(buf.text); {
			r, size := utf8.DecodeRune(buf.text[k:])
			p.out.rune(r, buf.offs[k])
			k += size
		}
	}
	p.out.newline(off)
}

func keepTable(text []byte) bool {
	var letters, digits int
	for _, b := range text {
		switch {
		case b >= '0' && b <= '9':
			digits++
		case b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z':
			letters++
		}
	}
	if letters == 0 && digits == 0 {
		return false
	}
	if digits >= letters {
		return indexFold(string(text), "item", 0) >= 0
	}
	return true
}

// entity consumes one character reference. Unrecognized ampersands are
// literal text.
func (p *parser) entity(i int) int {
	limit := i + 12
	if limit > len(p.src) {
		limit = len(p.src)
	}
	for j := i + 1; j < limit; j++ {
		c := p.src[j]
		if c == ';' {
			token := p.src[i : j+1]
			decoded := html.UnescapeString(token)
			if decoded != token {
				for _, r := range decoded {
					p.cur().rune(r, p.offs[i])
				}
				return j + 1
			}
			break
		}
		if !isEntityByte(c) {
			break
		}
	}
	p.cur().rune('&', p.offs[i])
	return i + 1
}

func isTagNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == ':' || b == '-' || b == '!'
}

func isEntityByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '#'
}

// indexFold is a case-insensitive ASCII substring search. Tags are
// ASCII, and lowering the whole document would break the offset map.
func indexFold(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	n := len(sub)
	for i := from; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
