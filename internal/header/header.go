// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package header parses the SGML submission header that prefixes raw
// EDGAR filings. Implements: prd006-inventory (R2);
//
//	docs/ARCHITECTURE § Submission Header.
package header

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

// ErrNoHeader is returned when the input carries no recognizable
// submission header fields.
var ErrNoHeader = errors.New("no submission header found")

// scanLimit bounds how far into a document the parser looks. The
// header always precedes the body; a multi-megabyte filing should not
// be scanned end to end for it.
const scanLimit = 64 * 1024

// Parse extracts filing metadata from the submission header. Fields
// absent from the header stay zero; a parse succeeds as long as at
// least one recognized field is present.
func Parse(raw []byte) (types.FilingMetadata, error) {
	var md types.FilingMetadata

	if len(raw) > scanLimit {
		raw = raw[:scanLimit]
	}
	if end := bytes.Index(raw, []byte("</SEC-HEADER>")); end >= 0 {
		raw = raw[:end]
	}

	found := false
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		key, value, ok := splitField(sc.Text())
		if !ok {
			continue
		}
		switch key {
		case "ACCESSION NUMBER":
			md.Accession = value
		case "CONFORMED SUBMISSION TYPE":
			md.FilingType = types.FilingType(value)
		case "CENTRAL INDEX KEY":
			md.CIK = strings.TrimLeft(value, "0")
		case "COMPANY CONFORMED NAME":
			md.Company = value
		case "FILED AS OF DATE":
			if t, err := time.Parse("20060102", value); err == nil {
				md.Filed = t
			}
		case "CONFORMED PERIOD OF REPORT":
			md.Period = value
		case "STANDARD INDUSTRIAL CLASSIFICATION":
			md.SIC = value
		case "FISCAL YEAR END":
			md.FiscalYearEnd = value
		default:
			continue
		}
		found = true
	}

	if !found {
		return types.FilingMetadata{}, ErrNoHeader
	}
	return md, nil
}

// splitField parses one "KEY:  value" header line. Header keys are
// upper-case with spaces; anything else (body text, markup) is not a
// field.
func splitField(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" || value == "" {
		return "", "", false
	}
	for _, r := range key {
		if !(r >= 'A' && r <= 'Z' || r == ' ' || r >= '0' && r <= '9') {
			return "", "", false
		}
	}
	return key, value, true
}
