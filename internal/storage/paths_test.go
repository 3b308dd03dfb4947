package storage

import (
	"testing"

	"github.com/talentform/docextract/constants"
)

func TestPathSchemeIsDeterministic(t *testing.T) {
	a := RawExtractKey(constants.DocumentTypeCV, "owner-1", "doc-1")
	b := RawExtractKey(constants.DocumentTypeCV, "owner-1", "doc-1")
	if a != b {
		t.Fatalf("same inputs must yield the same path: %q vs %q", a, b)
	}
	if a != "Textract/CV_extract/owner-1/doc-1.txt" {
		t.Fatalf("unexpected raw extract path %q", a)
	}
}

func TestPathSchemePerType(t *testing.T) {
	if got := RawExtractKey(constants.DocumentTypeJD, "o", "d"); got != "Textract/JD_extract/o/d.txt" {
		t.Fatalf("unexpected jd raw path %q", got)
	}
	if got := StructuredJSONKey(constants.DocumentTypeCV, "o", "d"); got != "Processed/CV_Json/o/d.json" {
		t.Fatalf("unexpected cv json path %q", got)
	}
	if got := StructuredJSONKey(constants.DocumentTypeJD, "o", "d"); got != "Processed/JD_Json/o/d.json" {
		t.Fatalf("unexpected jd json path %q", got)
	}
}
