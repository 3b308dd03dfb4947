package textproc

import (
	"regexp"
	"sort"
	"strings"
)

type sectionPattern struct {
	name string
	re   *regexp.Regexp
}

// sectionTable is ordered; when two headers overlap, the earlier entry wins.
var sectionTable = []sectionPattern{
	{"personal_info", regexp.MustCompile(`personal\s+information|contact\s+information|about\s+me`)},
	{"experience", regexp.MustCompile(`work\s+experience|professional\s+experience|employment\s+history`)},
	{"education", regexp.MustCompile(`education|academic\s+background|qualifications`)},
	{"skills", regexp.MustCompile(`skills|technical\s+skills|competencies`)},
	{"projects", regexp.MustCompile(`projects|portfolio|key\s+projects`)},
	{"certifications", regexp.MustCompile(`certifications|certificates|licenses`)},
	{"languages", regexp.MustCompile(`languages|language\s+skills`)},
	{"interests", regexp.MustCompile(`interests|hobbies|activities`)},
}

// ExtractSections maps named sections to their body text. Each pattern's first
// match marks a section start; a section's body runs from the end of its
// header match to the start of the nearest following header (first match wins
// on overlapping headers).
func ExtractSections(text string) map[string]string {
	lower := strings.ToLower(text)

	type hit struct {
		name       string
		start, end int
	}
	var hits []hit
	claimed := make(map[string]bool)
	for _, sp := range sectionTable {
		loc := sp.re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		if claimed[sp.name] {
			continue
		}
		claimed[sp.name] = true
		hits = append(hits, hit{name: sp.name, start: loc[0], end: loc[1]})
	}
	if len(hits) == 0 {
		return map[string]string{}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	sections := make(map[string]string, len(hits))
	for i, h := range hits {
		bodyEnd := len(text)
		if i+1 < len(hits) {
			bodyEnd = hits[i+1].start
		}
		body := strings.TrimSpace(text[h.end:bodyEnd])
		if body != "" {
			sections[h.name] = body
		}
	}
	return sections
}
