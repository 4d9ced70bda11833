package header

import (
	"errors"
	"testing"
	"time"

	"github.com/pdiddy/filing-engine/pkg/types"
)

const sample = `<SEC-HEADER>0000320193-23-000106.hdr.sgml : 20231103
ACCESSION NUMBER:		0000320193-23-000106
CONFORMED SUBMISSION TYPE:	10-K
PUBLIC DOCUMENT COUNT:		89
CONFORMED PERIOD OF REPORT:	20230930
FILED AS OF DATE:		20231103
FILER:
	COMPANY DATA:
		COMPANY CONFORMED NAME:			APPLE INC
		CENTRAL INDEX KEY:			0000320193
		STANDARD INDUSTRIAL CLASSIFICATION:	ELECTRONIC COMPUTERS [3571]
		FISCAL YEAR END:			0930
</SEC-HEADER>
<html><body>Item 1. Business</body></html>`

func TestParse(t *testing.T) {
	md, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if md.Accession != "0000320193-23-000106" {
		t.Errorf("Accession = %q", md.Accession)
	}
	if md.FilingType != types.Filing10K {
		t.Errorf("FilingType = %q", md.FilingType)
	}
	if md.CIK != "320193" {
		t.Errorf("CIK = %q, want leading zeros stripped", md.CIK)
	}
	if md.Company != "APPLE INC" {
		t.Errorf("Company = %q", md.Company)
	}
	want := time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC)
	if !md.Filed.Equal(want) {
		t.Errorf("Filed = %v, want %v", md.Filed, want)
	}
	if md.Period != "20230930" {
		t.Errorf("Period = %q", md.Period)
	}
	if md.SIC != "ELECTRONIC COMPUTERS [3571]" {
		t.Errorf("SIC = %q", md.SIC)
	}
	if md.FiscalYearEnd != "0930" {
		t.Errorf("FiscalYearEnd = %q", md.FiscalYearEnd)
	}
}

func TestParsePartialHeader(t *testing.T) {
	raw := "ACCESSION NUMBER: 0001234567-20-000001\nCONFORMED SUBMISSION TYPE: 8-K\n\nbody text"
	md, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if md.Accession != "0001234567-20-000001" || md.FilingType != types.Filing8K {
		t.Errorf("md = %+v", md)
	}
	if !md.Filed.IsZero() {
		t.Errorf("Filed = %v, want zero", md.Filed)
	}
}

func TestParseNoHeader(t *testing.T) {
	_, err := Parse([]byte("<html><body>Just a document with no header.</body></html>"))
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("err = %v, want ErrNoHeader", err)
	}
}

func TestParseBodyColonLinesIgnored(t *testing.T) {
	raw := "ACCESSION NUMBER: 0001-23-000001\n" +
		"Note: this body line has a colon but is not a header field\n"
	md, err := Parse([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if md.Accession != "0001-23-000001" {
		t.Errorf("Accession = %q", md.Accession)
	}
}

func TestParseIgnoresFieldsPastHeaderClose(t *testing.T) {
	raw := "ACCESSION NUMBER: 0001-23-000001\n</SEC-HEADER>\nFILED AS OF DATE: 20200101\n"
	md, err := Parse([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !md.Filed.IsZero() {
		t.Errorf("Filed = %v, want zero (field after header close)", md.Filed)
	}
}
