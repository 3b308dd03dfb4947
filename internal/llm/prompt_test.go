package llm

import (
	"strings"
	"testing"

	"github.com/talentform/docextract/constants"
)

func TestBuildInstructionDiffersByType(t *testing.T) {
	cv := BuildInstruction(constants.DocumentTypeCV)
	jd := BuildInstruction(constants.DocumentTypeJD)
	if cv == jd {
		t.Fatalf("cv and jd instructions must differ")
	}
	if !strings.Contains(cv, "resume text") {
		t.Fatalf("cv instruction should reference resume text")
	}
	if !strings.Contains(jd, "job description text") {
		t.Fatalf("jd instruction should reference job description text")
	}
}

func TestValidateCVDocument(t *testing.T) {
	doc := []byte(`{
		"full_name": "Jane Doe",
		"email_address": "jane@example.com",
		"skills": ["python", "go"],
		"linkedin_profile": null,
		"work_experience": [{"job_title": "Engineer", "company": "Acme", "duration": "2019-2021", "description": "Built things"}]
	}`)
	if err := ValidateJSONAgainstSchema(BuildSchema(constants.DocumentTypeCV), doc); err != nil {
		t.Fatalf("valid cv document rejected: %v", err)
	}
}

func TestValidateCVDocumentMissingName(t *testing.T) {
	doc := []byte(`{"email_address": "jane@example.com"}`)
	if err := ValidateJSONAgainstSchema(BuildSchema(constants.DocumentTypeCV), doc); err == nil {
		t.Fatalf("document without full_name must be rejected")
	}
}

func TestValidateJDDocument(t *testing.T) {
	doc := []byte(`{
		"job_title": "Backend Engineer",
		"company_name": "Acme",
		"responsibilities": ["build services"],
		"company_website": null
	}`)
	if err := ValidateJSONAgainstSchema(BuildSchema(constants.DocumentTypeJD), doc); err != nil {
		t.Fatalf("valid jd document rejected: %v", err)
	}
}

func TestValidateRejectsWrongShape(t *testing.T) {
	doc := []byte(`{"job_title": "Backend Engineer", "responsibilities": "not an array"}`)
	if err := ValidateJSONAgainstSchema(BuildSchema(constants.DocumentTypeJD), doc); err == nil {
		t.Fatalf("wrong-shaped document must be rejected")
	}
}
