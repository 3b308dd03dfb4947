// Package textproc turns raw OCR output into cleaned text plus derived
// metadata. Everything here is deterministic and pure given the input text.
package textproc

import (
	"regexp"
	"strings"
)

// Result bundles the post-processing outputs for one document.
type Result struct {
	Text           string            `json:"text"`
	Sections       map[string]string `json:"sections"`
	KeyInformation KeyInformation    `json:"key_information"`
	Quality        QualityMetrics    `json:"quality_metrics"`
}

// Process cleans the raw text and derives sections, key info, and quality
// metrics from the cleaned form.
func Process(raw string) Result {
	cleaned := Clean(raw)
	return Result{
		Text:           cleaned,
		Sections:       ExtractSections(cleaned),
		KeyInformation: ExtractKeyInformation(cleaned),
		Quality:        CalculateQuality(cleaned),
	}
}

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	// allow-listed punctuation; anything else is treated as an OCR artifact
	reDisallowed = regexp.MustCompile("[^\\w\\s.,;:!?\\-()\\[\\]{}@#$%&*+=<>|~`'\"]")
	// a zero between letters is almost always a misread capital O
	reZeroAfterLetter  = regexp.MustCompile(`([A-Za-z])0`)
	reZeroBeforeLetter = regexp.MustCompile(`0([A-Za-z])`)
)

// Clean normalizes whitespace, strips non-allow-listed characters, and applies
// two narrow OCR-artifact substitutions: '|' -> 'I' and a letter-adjacent
// '0' -> 'O'. Digits elsewhere (years, phone numbers) are left alone.
func Clean(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	text = reDisallowed.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "|", "I")
	// Each substituted O is itself a letter, so a run like "A00" exposes a
	// new letter-adjacent zero; iterate until no zero moves.
	for {
		next := reZeroAfterLetter.ReplaceAllString(text, "${1}O")
		next = reZeroBeforeLetter.ReplaceAllString(next, "O${1}")
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(text)
}
