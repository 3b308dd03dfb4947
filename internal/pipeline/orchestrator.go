// Package pipeline implements the extraction orchestrator: it turns a stored
// document into extracted text and structured data exactly once per content
// version, driving the OCR backend, the text post-processor, and the
// structured extractor, and maintaining the durable cache index.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/internal/entity"
	"github.com/talentform/docextract/internal/llm"
	"github.com/talentform/docextract/internal/ocr"
	"github.com/talentform/docextract/internal/storage"
	"github.com/talentform/docextract/internal/textproc"
)

// Config carries the polling policy. It lives here rather than in the OCR
// client so it is visible and independently testable.
type Config struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
}

const (
	defaultPollInterval = 5 * time.Second
	defaultPollTimeout  = 300 * time.Second
)

// Orchestrator coordinates one extraction call end to end. All collaborators
// are injected at construction time; there is no hidden global state.
type Orchestrator struct {
	store     storage.Gateway
	ocr       ocr.Client
	extractor llm.StructuredExtractor
	index     ExtractionIndex
	cfg       Config
	logger    *slog.Logger
}

func NewOrchestrator(store storage.Gateway, ocrClient ocr.Client, extractor llm.StructuredExtractor, index ExtractionIndex, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:     store,
		ocr:       ocrClient,
		extractor: extractor,
		index:     index,
		cfg:       cfg,
		logger:    logger,
	}
}

// Extract runs the full pipeline for one stored document. force bypasses all
// cache checks and re-runs OCR unconditionally.
//
// Only three error kinds are returned: ErrSourceNotFound, ErrExtractionFailed,
// ErrExtractionTimeout. Failures in the structured-extraction and persistence
// steps are logged and swallowed; the caller still receives the computed text.
func (o *Orchestrator) Extract(ctx context.Context, sourceKey string, docType constants.DocumentType, force bool) (*ExtractionResult, error) {
	src, err := o.store.Head(ctx, sourceKey)
	if err != nil {
		o.logger.Warn("pipeline.head.miss", "source_key", sourceKey, "error", err)
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceKey)
	}
	o.logger.Info("pipeline.extract.start",
		"owner_id", src.OwnerID,
		"document_id", src.DocumentID,
		"document_type", string(docType),
		"fingerprint", src.Fingerprint,
		"force", force)

	lookup := cacheMiss()
	if !force {
		lookup = o.checkCache(ctx, src, docType)
	}

	var (
		rawText    string
		confidence float64
		method     constants.ExtractionMethod
	)
	if lookup.hit {
		rawText = lookup.text
		confidence = lookup.record.OCRConfidence
		method = constants.MethodCache
		o.logger.Info("pipeline.cache.hit", "document_id", src.DocumentID)
	} else {
		var outcome ocrOutcome
		outcome, method = o.runOCR(ctx, src)
		switch outcome.kind {
		case ocrFailed:
			o.logger.Error("pipeline.ocr.failed", "document_id", src.DocumentID, "message", outcome.message)
			return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, outcome.message)
		case ocrTimedOut:
			o.logger.Error("pipeline.ocr.timeout", "document_id", src.DocumentID, "budget", o.cfg.PollTimeout)
			return nil, fmt.Errorf("%w after %s", ErrExtractionTimeout, o.cfg.PollTimeout)
		}
		rawText = outcome.text
		confidence = outcome.confidence
		o.logger.Info("pipeline.ocr.ok",
			"document_id", src.DocumentID,
			"method", string(method),
			"confidence", confidence,
			"chars", len(rawText))
	}

	processed := textproc.Process(rawText)
	structured := o.extractStructured(ctx, docType, processed.Text, src.DocumentID)

	rawKey := storage.RawExtractKey(docType, src.OwnerID, src.DocumentID)
	rawDurable := lookup.hit
	if !lookup.hit {
		if err := o.store.Put(ctx, rawKey, []byte(processed.Text), "text/plain"); err != nil {
			o.logger.Warn("pipeline.persist.raw_failed", "document_id", src.DocumentID, "key", rawKey, "error", err)
		} else {
			rawDurable = true
		}
	}

	var structuredKey string
	if structured != nil {
		key := storage.StructuredJSONKey(docType, src.OwnerID, src.DocumentID)
		if err := o.store.Put(ctx, key, structured, "application/json"); err != nil {
			o.logger.Warn("pipeline.persist.json_failed", "document_id", src.DocumentID, "key", key, "error", err)
		} else {
			structuredKey = key
		}
	}

	// Storage before index: a record must never reference a raw blob that was
	// not durably written.
	if rawDurable {
		rec := &entity.ExtractionRecord{
			DocumentID:        src.DocumentID,
			OwnerID:           src.OwnerID,
			DocumentType:      string(docType),
			SourceFingerprint: src.Fingerprint,
			RawExtractKey:     rawKey,
			OCRConfidence:     confidence,
			LastExtractedAt:   time.Now().UTC(),
		}
		if structuredKey != "" {
			rec.StructuredJSONKey = &structuredKey
		}
		if err := o.index.Upsert(ctx, rec); err != nil {
			o.logger.Warn("pipeline.index.upsert_failed", "document_id", src.DocumentID, "error", err)
		}
	} else {
		o.logger.Warn("pipeline.index.skipped", "document_id", src.DocumentID)
	}

	o.logger.Info("pipeline.extract.done",
		"document_id", src.DocumentID,
		"method", string(method),
		"structured", structured != nil)

	return &ExtractionResult{
		OwnerID:           src.OwnerID,
		DocumentID:        src.DocumentID,
		Text:              processed.Text,
		Confidence:        confidence,
		Sections:          processed.Sections,
		KeyInformation:    processed.KeyInformation,
		QualityMetrics:    processed.Quality,
		StructuredJSON:    structured,
		StructuredJSONKey: structuredKey,
		Method:            method,
	}, nil
}

// checkCache decides hit vs. miss. Any index or blob-read failure degrades to
// a miss; the cache is never a correctness dependency.
func (o *Orchestrator) checkCache(ctx context.Context, src *entity.SourceDocument, docType constants.DocumentType) cacheLookup {
	rec, err := o.index.Get(ctx, src.DocumentID)
	if err != nil {
		o.logger.Warn("pipeline.cache.index_unavailable", "document_id", src.DocumentID, "error", err)
		return cacheMiss()
	}
	if rec == nil {
		return cacheMiss()
	}
	// An empty recorded fingerprint means we cannot tell the versions apart,
	// so the cache is trusted.
	if rec.SourceFingerprint != "" && rec.SourceFingerprint != src.Fingerprint {
		o.logger.Info("pipeline.cache.stale",
			"document_id", src.DocumentID,
			"recorded", rec.SourceFingerprint,
			"probed", src.Fingerprint)
		return cacheMiss()
	}
	data, err := o.store.Get(ctx, storage.RawExtractKey(docType, src.OwnerID, src.DocumentID))
	if err != nil {
		o.logger.Warn("pipeline.cache.read_failed", "document_id", src.DocumentID, "error", err)
		return cacheMiss()
	}
	return cacheHit(string(data), rec)
}

// runOCR picks the single-call path for image uploads and the submit/poll job
// path for everything else (PDFs and office documents need the async backend).
func (o *Orchestrator) runOCR(ctx context.Context, src *entity.SourceDocument) (ocrOutcome, constants.ExtractionMethod) {
	if isImage(src) {
		lines, err := o.ocr.Detect(ctx, src.StoreKey)
		if err != nil {
			return ocrFailure(err.Error()), constants.MethodSync
		}
		text, conf := ocr.Collate(lines)
		return ocrSuccess(text, conf), constants.MethodSync
	}

	jobID, err := o.ocr.Submit(ctx, src.StoreKey)
	if err != nil {
		return ocrFailure(err.Error()), constants.MethodAsync
	}
	o.logger.Info("pipeline.ocr.submitted", "document_id", src.DocumentID, "job_id", jobID)
	return o.pollJob(ctx, jobID), constants.MethodAsync
}

func isImage(src *entity.SourceDocument) bool {
	if strings.HasPrefix(src.ContentType, "image/") {
		return true
	}
	switch constants.NormalizeExt(path.Ext(src.StoreKey)) {
	case "jpg", "jpeg", "png":
		return true
	}
	return false
}

// extractStructured is best-effort end to end: any failure is logged and the
// pipeline continues with a nil structured document.
func (o *Orchestrator) extractStructured(ctx context.Context, docType constants.DocumentType, text, documentID string) json.RawMessage {
	if o.extractor == nil || text == "" {
		return nil
	}
	structured, err := o.extractor.ExtractStructured(ctx, docType, text)
	if err != nil {
		o.logger.Warn("pipeline.structured.skipped", "document_id", documentID, "error", err)
		return nil
	}
	return structured
}
