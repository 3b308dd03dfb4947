package textproc

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/talentform/docextract/constants"
)

// KeyInformation holds the independent regex-scan results over cleaned text.
type KeyInformation struct {
	Emails          []string `json:"emails,omitempty"`
	Phones          []string `json:"phones,omitempty"`
	YearsMentioned  []int    `json:"years_mentioned,omitempty"`
	SkillsMentioned []string `json:"skills_mentioned,omitempty"`
}

var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	rePhone = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	reYear  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// Word-bounded so short keywords like "go" do not fire inside
	// "Google" or "ongoing".
	skillPatterns = compileSkillPatterns()
)

func compileSkillPatterns() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(constants.SkillVocabulary))
	for i, skill := range constants.SkillVocabulary {
		pats[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return pats
}

// ExtractKeyInformation runs the independent scans: emails, phone numbers,
// four-digit years (1950-2030), and the fixed skill vocabulary.
func ExtractKeyInformation(text string) KeyInformation {
	var info KeyInformation

	seen := make(map[string]bool)
	for _, m := range reEmail.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			info.Emails = append(info.Emails, m)
		}
	}

	seenPhone := make(map[string]bool)
	for _, m := range rePhone.FindAllStringSubmatch(text, -1) {
		p := fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
		if !seenPhone[p] {
			seenPhone[p] = true
			info.Phones = append(info.Phones, p)
		}
	}

	seenYear := make(map[int]bool)
	for _, m := range reYear.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || y < 1950 || y > 2030 || seenYear[y] {
			continue
		}
		seenYear[y] = true
		info.YearsMentioned = append(info.YearsMentioned, y)
	}
	sort.Ints(info.YearsMentioned)

	lower := strings.ToLower(text)
	for i, skill := range constants.SkillVocabulary {
		if skillPatterns[i].MatchString(lower) {
			info.SkillsMentioned = append(info.SkillsMentioned, skill)
		}
	}

	return info
}
