package constants

import "testing"

func TestParseDocumentType(t *testing.T) {
	cases := []struct {
		in   string
		want DocumentType
		ok   bool
	}{
		{"cv", DocumentTypeCV, true},
		{"CV", DocumentTypeCV, true},
		{"resume", DocumentTypeCV, true},
		{" jd ", DocumentTypeJD, true},
		{"job_description", DocumentTypeJD, true},
		{"invoice", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDocumentType(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseDocumentType(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestContentTypeForExt(t *testing.T) {
	if got := ContentTypeForExt(".PDF"); got != "application/pdf" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := ContentTypeForExt("weird"); got != "application/octet-stream" {
		t.Fatalf("unknown extensions must fall back, got %q", got)
	}
}

func TestOCRJobStatusTerminal(t *testing.T) {
	if OCRJobSubmitted.Terminal() || OCRJobInProgress.Terminal() {
		t.Fatalf("non-terminal statuses reported terminal")
	}
	if !OCRJobSucceeded.Terminal() || !OCRJobFailed.Terminal() {
		t.Fatalf("terminal statuses not reported terminal")
	}
}
