package pipeline

import (
	"github.com/talentform/docextract/internal/entity"
)

// cacheLookup is the result of the cache decision: a hit carries the persisted
// cleaned text and the index record it came from; a miss carries nothing.
type cacheLookup struct {
	hit    bool
	text   string
	record *entity.ExtractionRecord
}

func cacheHit(text string, rec *entity.ExtractionRecord) cacheLookup {
	return cacheLookup{hit: true, text: text, record: rec}
}

func cacheMiss() cacheLookup {
	return cacheLookup{}
}

type ocrOutcomeKind int

const (
	ocrSucceeded ocrOutcomeKind = iota
	ocrFailed
	ocrTimedOut
)

// ocrOutcome is the terminal state of one OCR run, sync or async.
type ocrOutcome struct {
	kind       ocrOutcomeKind
	text       string
	confidence float64
	message    string // backend status message, FAILED only
}

func ocrSuccess(text string, confidence float64) ocrOutcome {
	return ocrOutcome{kind: ocrSucceeded, text: text, confidence: confidence}
}

func ocrFailure(message string) ocrOutcome {
	return ocrOutcome{kind: ocrFailed, message: message}
}

func ocrTimeout() ocrOutcome {
	return ocrOutcome{kind: ocrTimedOut}
}
