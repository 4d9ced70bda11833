// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decode converts raw bytes to a UTF-8 string plus a per-byte map from
// decoded offsets back to raw offsets. The declared encoding names the
// charset the caller believes the document uses; empty means UTF-8
// with a windows-1252 fallback for byte streams that are not valid
// UTF-8 (the common case for older filings). Per prd002-normalization
// R2.1-R2.3.
func decode(raw []byte, declared string) (string, []int32, error) {
	switch normalizeEncodingName(declared) {
	case "utf-8":
		if !utf8.Valid(raw) {
			return "", nil, fmt.Errorf("%w: declared utf-8 but byte stream is not valid UTF-8", ErrUnsupportedEncoding)
		}
		return string(raw), identityOffsets(len(raw)), nil

	case "":
		if utf8.Valid(raw) {
			return string(raw), identityOffsets(len(raw)), nil
		}
		s, offs := decodeCharmap(raw, charmap.Windows1252)
		return s, offs, nil

	case "windows-1252":
		s, offs := decodeCharmap(raw, charmap.Windows1252)
		return s, offs, nil

	case "iso-8859-1":
		s, offs := decodeCharmap(raw, charmap.ISO8859_1)
		return s, offs, nil

	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, declared)
	}
}

// normalizeEncodingName folds the common aliases of supported charsets.
func normalizeEncodingName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return ""
	case "utf-8", "utf8", "ascii", "us-ascii":
		return "utf-8"
	case "windows-1252", "cp1252", "cp-1252":
		return "windows-1252"
	case "iso-8859-1", "iso8859-1", "latin-1", "latin1":
		return "iso-8859-1"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

func identityOffsets(n int) []int32 {
	offs := make([]int32, n)
	for i := range offs {
		offs[i] = int32(i)
	}
	return offs
}

// decodeCharmap decodes a single-byte charset. Every UTF-8 byte of a
// decoded rune maps back to the raw offset of the source byte.
func decodeCharmap(raw []byte, cm *charmap.Charmap) (string, []int32) {
	var sb strings.Builder
	sb.Grow(len(raw))
	offs := make([]int32, 0, len(raw))

	var buf [utf8.UTFMax]byte
	for i, b := range raw {
		r := cm.DecodeByte(b)
		n := utf8.EncodeRune(buf[:], r)
		sb.Write(buf[:n])
		for j := 0; j < n; j++ {
			offs = append(offs, int32(i))
		}
	}
	return sb.String(), offs
}
