package textproc

import "testing"

func TestCleanNormalizesWhitespace(t *testing.T) {
	got := Clean("John   Doe\n\nSoftware\tEngineer")
	if got != "John Doe Software Engineer" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestCleanPipeBecomesI(t *testing.T) {
	got := Clean("|ntroduction")
	if got != "Introduction" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestCleanZeroSubstitutionIsLetterAdjacentOnly(t *testing.T) {
	got := Clean("J0hn worked from 2019 to 2020")
	if got != "JOhn worked from 2019 to 2020" {
		t.Fatalf("years must survive the 0->O substitution: %q", got)
	}
}

func TestCleanStripsDisallowedCharacters(t *testing.T) {
	got := Clean("Name½: John✓ Doe")
	if got != "Name: John Doe" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}

func TestCleanZeroRunsCollapseInOneCall(t *testing.T) {
	got := Clean("Project A00 delivered")
	if got != "Project AOO delivered" {
		t.Fatalf("a letter-adjacent zero run must be rewritten whole: %q", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	for _, raw := range []string{
		"J0hn   Doe | Engineer\n2020",
		"Project A00 delivered in 2020",
		"Room 00B opened 2019",
	} {
		once := Clean(raw)
		twice := Clean(once)
		if once != twice {
			t.Fatalf("cleaning must be idempotent for %q: %q vs %q", raw, once, twice)
		}
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	raw := "Work Experience Senior Engineer at Acme 2019\nSkills python, go"
	a := Process(raw)
	b := Process(raw)
	if a.Text != b.Text {
		t.Fatalf("text differs across runs")
	}
	if len(a.Sections) != len(b.Sections) {
		t.Fatalf("sections differ across runs")
	}
	if a.Quality != b.Quality {
		t.Fatalf("quality metrics differ across runs")
	}
}
