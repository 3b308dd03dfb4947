package textproc

import "testing"

func TestCalculateQualityCounts(t *testing.T) {
	q := CalculateQuality("Jane is an engineer. She writes Go code.")
	if q.WordCount != 8 {
		t.Fatalf("expected 8 words, got %d", q.WordCount)
	}
	if q.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", q.SentenceCount)
	}
	if q.AvgWordsPerSentence != 4 {
		t.Fatalf("expected 4 words per sentence, got %v", q.AvgWordsPerSentence)
	}
	if q.LineCount != 1 {
		t.Fatalf("expected 1 line, got %d", q.LineCount)
	}
}

func TestCalculateQualityEmptyText(t *testing.T) {
	q := CalculateQuality("")
	if q.WordCount != 0 || q.SentenceCount != 0 {
		t.Fatalf("unexpected counts: %+v", q)
	}
	if q.EstimatedConfidence != 0 {
		t.Fatalf("no words must mean estimated confidence 0, got %v", q.EstimatedConfidence)
	}
}

func TestEstimatedConfidenceRange(t *testing.T) {
	q := CalculateQuality("Jane Doe is a Senior Software Engineer based in Boston.")
	if q.EstimatedConfidence <= 0 || q.EstimatedConfidence > 100 {
		t.Fatalf("estimated confidence out of range: %v", q.EstimatedConfidence)
	}
}

func TestEstimatedConfidencePrefersRegularText(t *testing.T) {
	clean := CalculateQuality("Jane Doe Works At Acme Corp As Lead Engineer")
	garbled := CalculateQuality("x q z 9 @ # ~ qqqqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	if clean.EstimatedConfidence <= garbled.EstimatedConfidence {
		t.Fatalf("regular text must score higher: %v vs %v",
			clean.EstimatedConfidence, garbled.EstimatedConfidence)
	}
}
