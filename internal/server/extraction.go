package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/talentform/docextract/constants"
	extractionpb "github.com/talentform/docextract/gen/proto/extraction/v1"
	"github.com/talentform/docextract/internal/common"
	"github.com/talentform/docextract/internal/entity"
	"github.com/talentform/docextract/internal/pipeline"
	"github.com/talentform/docextract/internal/repository"
	"github.com/talentform/docextract/internal/storage"
)

// ExtractionService exposes the extraction pipeline and its records over gRPC.
type ExtractionService struct {
	extractionpb.UnimplementedExtractionServiceServer
	orchestrator *pipeline.Orchestrator
	records      repository.ExtractionRecordRepository
	store        storage.Gateway
	logger       *slog.Logger
}

func NewExtractionService(orchestrator *pipeline.Orchestrator, records repository.ExtractionRecordRepository, store storage.Gateway, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		orchestrator: orchestrator,
		records:      records,
		store:        store,
		logger:       logger,
	}
}

func (s *ExtractionService) Extract(ctx context.Context, req *extractionpb.ExtractRequest) (*extractionpb.ExtractResponse, error) {
	v := common.NewValidator().
		Field("source_key", req.GetSourceKey(), common.Required, common.MaxLength(1024)).
		Field("document_type", req.GetDocumentType(), common.Required, common.DocumentType)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	sourceKey := strings.TrimSpace(req.GetSourceKey())
	docType, _ := constants.ParseDocumentType(req.GetDocumentType())

	result, err := s.orchestrator.Extract(ctx, sourceKey, docType, req.GetForce())
	if err != nil {
		s.logger.Error("extract failed",
			"source_key", sourceKey,
			"req_id", common.RequestIDFromContext(ctx),
			"error", err)
		switch {
		case errors.Is(err, pipeline.ErrSourceNotFound):
			return nil, common.NotFoundError(err.Error())
		case errors.Is(err, pipeline.ErrExtractionTimeout):
			return nil, common.DeadlineExceededError(err.Error())
		default:
			return nil, common.InternalError(err.Error())
		}
	}

	return &extractionpb.ExtractResponse{Result: toPBResult(result)}, nil
}

func (s *ExtractionService) GetExtraction(ctx context.Context, req *extractionpb.GetExtractionRequest) (*extractionpb.GetExtractionResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, common.InvalidArgumentError("document_id is required")
	}

	rec, err := s.records.Get(ctx, documentID)
	if err != nil {
		s.logger.Error("get extraction failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("get extraction: %v", err)
	}
	if rec == nil {
		return nil, common.NotFoundError("no extraction record for document")
	}
	return &extractionpb.GetExtractionResponse{Record: toPBRecord(rec)}, nil
}

func (s *ExtractionService) ListExtractions(ctx context.Context, req *extractionpb.ListExtractionsRequest) (*extractionpb.ListExtractionsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		// Authenticated callers may omit owner_id; the interceptor carries it.
		ownerID = common.OwnerIDFromContext(ctx)
	}
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	docTypeFilter := ""
	if dt := strings.TrimSpace(req.GetDocumentType()); dt != "" {
		parsed, ok := constants.ParseDocumentType(dt)
		if !ok {
			return nil, common.InvalidArgumentErrorf("document_type must be one of cv, jd; got %q", dt)
		}
		docTypeFilter = string(parsed)
	}

	recs, err := s.records.ListByOwner(ctx, ownerID, docTypeFilter, int(req.GetPageSize()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("list extractions failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalErrorf("list extractions: %v", err)
	}

	out := make([]*extractionpb.ExtractionRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toPBRecord(rec))
	}
	return &extractionpb.ListExtractionsResponse{Records: out}, nil
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, req *extractionpb.DeleteExtractionRequest) (*extractionpb.DeleteExtractionResponse, error) {
	documentID := strings.TrimSpace(req.GetDocumentId())
	if documentID == "" {
		return nil, common.InvalidArgumentError("document_id is required")
	}

	rec, err := s.records.Get(ctx, documentID)
	if err != nil {
		s.logger.Error("delete extraction lookup failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("delete extraction: %v", err)
	}
	if rec == nil {
		return nil, common.NotFoundError("no extraction record for document")
	}

	// Blob removal is best-effort: a stale blob without an index record is
	// harmless, an index record pointing at nothing is not.
	if req.GetDeleteBlobs() {
		if err := s.store.Delete(ctx, rec.RawExtractKey); err != nil {
			s.logger.Warn("raw extract blob delete failed", "key", rec.RawExtractKey, "error", err)
		}
		if rec.StructuredJSONKey != nil {
			if err := s.store.Delete(ctx, *rec.StructuredJSONKey); err != nil {
				s.logger.Warn("structured json blob delete failed", "key", *rec.StructuredJSONKey, "error", err)
			}
		}
	}

	if err := s.records.Delete(ctx, documentID); err != nil {
		return nil, common.InternalErrorf("delete extraction: %v", err)
	}
	return &extractionpb.DeleteExtractionResponse{Deleted: true}, nil
}

func toPBResult(r *pipeline.ExtractionResult) *extractionpb.ExtractionResult {
	years := make([]int32, 0, len(r.KeyInformation.YearsMentioned))
	for _, y := range r.KeyInformation.YearsMentioned {
		years = append(years, int32(y))
	}
	return &extractionpb.ExtractionResult{
		OwnerId:    r.OwnerID,
		DocumentId: r.DocumentID,
		Text:       r.Text,
		Confidence: r.Confidence,
		Sections:   r.Sections,
		KeyInformation: &extractionpb.KeyInformation{
			Emails:          r.KeyInformation.Emails,
			Phones:          r.KeyInformation.Phones,
			YearsMentioned:  years,
			SkillsMentioned: r.KeyInformation.SkillsMentioned,
		},
		QualityMetrics: &extractionpb.QualityMetrics{
			WordCount:           int32(r.QualityMetrics.WordCount),
			CharCount:           int32(r.QualityMetrics.CharCount),
			LineCount:           int32(r.QualityMetrics.LineCount),
			SentenceCount:       int32(r.QualityMetrics.SentenceCount),
			AvgWordsPerSentence: r.QualityMetrics.AvgWordsPerSentence,
			AvgCharsPerWord:     r.QualityMetrics.AvgCharsPerWord,
			EstimatedConfidence: r.QualityMetrics.EstimatedConfidence,
		},
		StructuredJson:    string(r.StructuredJSON),
		StructuredJsonKey: r.StructuredJSONKey,
		Method:            string(r.Method),
	}
}

func toPBRecord(rec *entity.ExtractionRecord) *extractionpb.ExtractionRecord {
	jsonKey := ""
	if rec.StructuredJSONKey != nil {
		jsonKey = *rec.StructuredJSONKey
	}
	return &extractionpb.ExtractionRecord{
		DocumentId:        rec.DocumentID,
		OwnerId:           rec.OwnerID,
		DocumentType:      rec.DocumentType,
		SourceFingerprint: rec.SourceFingerprint,
		RawExtractKey:     rec.RawExtractKey,
		StructuredJsonKey: jsonKey,
		OcrConfidence:     rec.OCRConfidence,
		LastExtractedAt:   rec.LastExtractedAt.UTC().Format(time.RFC3339Nano),
	}
}
