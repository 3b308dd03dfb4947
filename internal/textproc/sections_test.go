package textproc

import "testing"

func TestExtractSections(t *testing.T) {
	text := "Contact Information jane@example.com " +
		"Work Experience Senior Engineer at Acme Corp " +
		"Education BSc Computer Science " +
		"Skills python go sql"

	sections := ExtractSections(text)

	if got := sections["personal_info"]; got != "jane@example.com" {
		t.Fatalf("unexpected personal_info: %q", got)
	}
	if got := sections["experience"]; got != "Senior Engineer at Acme Corp" {
		t.Fatalf("unexpected experience: %q", got)
	}
	if got := sections["education"]; got != "BSc Computer Science" {
		t.Fatalf("unexpected education: %q", got)
	}
	if got := sections["skills"]; got != "python go sql" {
		t.Fatalf("unexpected skills: %q", got)
	}
}

func TestExtractSectionsNoHeaders(t *testing.T) {
	sections := ExtractSections("just a plain paragraph with no headers at all")
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %v", sections)
	}
}

func TestExtractSectionsFirstMatchWins(t *testing.T) {
	// "languages" appears before "language skills" in the table; the body must
	// start after the first header occurrence.
	text := "Languages English Spanish"
	sections := ExtractSections(text)
	if got := sections["languages"]; got != "English Spanish" {
		t.Fatalf("unexpected languages body: %q", got)
	}
}

func TestExtractSectionsEmptyBodyOmitted(t *testing.T) {
	sections := ExtractSections("Skills")
	if _, ok := sections["skills"]; ok {
		t.Fatalf("a header with no body must be omitted")
	}
}
