package pipeline

import (
	"context"
	"time"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/internal/ocr"
)

// pollJob drives an asynchronous OCR job to a terminal status. It suspends
// between polls on a ticker (never busy-spins) and is bounded by the
// wall-clock budget independent of how many polls were taken: the worst case
// is the budget plus one interval. Transient poll errors are logged and the
// loop continues; only a terminal status or the deadline ends it. Context
// cancellation counts against the caller as a timeout.
func (o *Orchestrator) pollJob(ctx context.Context, jobID string) ocrOutcome {
	deadline := time.Now().Add(o.cfg.PollTimeout)
	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ocrTimeout()
		case <-ticker.C:
		}
		if time.Now().After(deadline) {
			return ocrTimeout()
		}

		state, err := o.ocr.Poll(ctx, jobID)
		if err != nil {
			o.logger.Warn("pipeline.ocr.poll_error", "job_id", jobID, "error", err)
			continue
		}
		switch state.Status {
		case constants.OCRJobSucceeded:
			text, conf := ocr.Collate(state.Lines)
			return ocrSuccess(text, conf)
		case constants.OCRJobFailed:
			return ocrFailure(state.StatusMessage)
		}
		o.logger.Debug("pipeline.ocr.polling", "job_id", jobID, "status", string(state.Status))
	}
}
