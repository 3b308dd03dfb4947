package textproc

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// QualityMetrics summarizes the cleaned text. EstimatedConfidence is a 0-100
// heuristic derived from word-length and capitalization regularity; it is
// never the OCR backend's reported confidence.
type QualityMetrics struct {
	WordCount           int     `json:"word_count"`
	CharCount           int     `json:"char_count"`
	LineCount           int     `json:"line_count"`
	SentenceCount       int     `json:"sentence_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord     float64 `json:"avg_chars_per_word"`
	EstimatedConfidence float64 `json:"estimated_confidence"`
}

var reSentenceSplit = regexp.MustCompile(`[.!?]+`)

// CalculateQuality computes counts, averages, and the heuristic confidence.
func CalculateQuality(text string) QualityMetrics {
	words := strings.Fields(text)
	wordCount := len(words)
	charCount := len(text)
	lineCount := len(strings.Split(text, "\n"))

	sentenceCount := 0
	for _, s := range reSentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	var avgWords, avgChars float64
	if sentenceCount > 0 {
		avgWords = round2(float64(wordCount) / float64(sentenceCount))
	}
	if wordCount > 0 {
		avgChars = round2(float64(charCount) / float64(wordCount))
	}

	return QualityMetrics{
		WordCount:           wordCount,
		CharCount:           charCount,
		LineCount:           lineCount,
		SentenceCount:       sentenceCount,
		AvgWordsPerSentence: avgWords,
		AvgCharsPerWord:     avgChars,
		EstimatedConfidence: estimateConfidence(text, words),
	}
}

// estimateConfidence averages three indicators: the text contains letters at
// all, the share of words with a plausible length (2-20 runes), and the share
// of words with regular capitalization (initial capital, lowercase tail).
func estimateConfidence(text string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	var score float64
	if strings.IndexFunc(text, unicode.IsLetter) >= 0 {
		score += 1
	}

	reasonable := 0
	properCaps := 0
	for _, w := range words {
		runes := []rune(w)
		if len(runes) >= 2 && len(runes) <= 20 {
			reasonable++
		}
		if len(runes) >= 2 && unicode.IsUpper(runes[0]) && strings.ToLower(string(runes[1:])) == string(runes[1:]) {
			properCaps++
		}
	}
	score += float64(reasonable) / float64(len(words))
	score += float64(properCaps) / float64(len(words))

	return round2(score / 3 * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
