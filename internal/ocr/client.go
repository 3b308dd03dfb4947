package ocr

import (
	"context"

	"github.com/talentform/docextract/constants"
)

// Line is one detected line of text with the backend's confidence for it.
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// JobState is a snapshot of an asynchronous detection job.
// Lines is populated only once Status is SUCCEEDED.
type JobState struct {
	JobID         string                 `json:"job_id"`
	Status        constants.OCRJobStatus `json:"status"`
	StatusMessage string                 `json:"status_message,omitempty"`
	Lines         []Line                 `json:"lines,omitempty"`
}

// Client talks to the external OCR backend. Detect is the single-call path;
// Submit/Poll drive an asynchronous job. Poll interval and wall-clock budget
// are the caller's policy, not the client's.
type Client interface {
	Detect(ctx context.Context, storeKey string) ([]Line, error)
	Submit(ctx context.Context, storeKey string) (string, error)
	Poll(ctx context.Context, jobID string) (*JobState, error)
}

// Collate concatenates line text (newline-separated) and averages line
// confidences. Zero detected lines is a valid outcome (a blank page): empty
// text and confidence 0, not an error.
func Collate(lines []Line) (string, float64) {
	if len(lines) == 0 {
		return "", 0
	}
	var sum float64
	text := make([]byte, 0, 64*len(lines))
	for i, l := range lines {
		if i > 0 {
			text = append(text, '\n')
		}
		text = append(text, l.Text...)
		sum += l.Confidence
	}
	return string(text), sum / float64(len(lines))
}
