package repository

import (
	"context"
	"log/slog"

	"github.com/talentform/docextract/gen/ent"
	"github.com/talentform/docextract/gen/ent/extractionrecord"
	"github.com/talentform/docextract/internal/entity"
)

// ExtractionRecordRepository is the cache-index store. Get returns (nil, nil)
// when no record exists for the document; Upsert keeps exactly one live
// record per document ID, last write wins.
type ExtractionRecordRepository interface {
	Get(ctx context.Context, documentID string) (*entity.ExtractionRecord, error)
	Upsert(ctx context.Context, rec *entity.ExtractionRecord) error
	ListByOwner(ctx context.Context, ownerID string, documentType string, limit, offset int) ([]*entity.ExtractionRecord, error)
	Delete(ctx context.Context, documentID string) error
}

type extractionRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRecordRepository(entc *ent.Client, log *slog.Logger) ExtractionRecordRepository {
	return &extractionRecordRepo{ent: entc, log: log}
}

func (r *extractionRecordRepo) Get(ctx context.Context, documentID string) (*entity.ExtractionRecord, error) {
	row, err := r.ent.ExtractionRecord.
		Query().
		Where(extractionrecord.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.log.Error("extraction_record get failed", "document_id", documentID, "err", err)
		return nil, err
	}
	return toEntity(row), nil
}

// Upsert is a single INSERT .. ON CONFLICT so concurrent misses on the same
// document cannot race a read-then-write; the later writer wins.
func (r *extractionRecordRepo) Upsert(ctx context.Context, rec *entity.ExtractionRecord) error {
	create := r.ent.ExtractionRecord.
		Create().
		SetDocumentID(rec.DocumentID).
		SetOwnerID(rec.OwnerID).
		SetDocumentType(rec.DocumentType).
		SetSourceFingerprint(rec.SourceFingerprint).
		SetRawExtractKey(rec.RawExtractKey).
		SetOcrConfidence(rec.OCRConfidence).
		SetLastExtractedAt(rec.LastExtractedAt)
	if rec.StructuredJSONKey != nil {
		create.SetStructuredJSONKey(*rec.StructuredJSONKey)
	}

	err := create.
		OnConflictColumns(extractionrecord.FieldDocumentID).
		Update(func(u *ent.ExtractionRecordUpsert) {
			u.SetOwnerID(rec.OwnerID)
			u.SetDocumentType(rec.DocumentType)
			u.SetSourceFingerprint(rec.SourceFingerprint)
			u.SetRawExtractKey(rec.RawExtractKey)
			u.SetOcrConfidence(rec.OCRConfidence)
			u.SetLastExtractedAt(rec.LastExtractedAt)
			if rec.StructuredJSONKey != nil {
				u.SetStructuredJSONKey(*rec.StructuredJSONKey)
			} else {
				u.ClearStructuredJSONKey()
			}
		}).
		Exec(ctx)
	if err != nil {
		r.log.Error("extraction_record upsert failed", "document_id", rec.DocumentID, "err", err)
		return err
	}
	r.log.Info("extraction_record upserted", "document_id", rec.DocumentID, "fingerprint", rec.SourceFingerprint)
	return nil
}

func (r *extractionRecordRepo) ListByOwner(ctx context.Context, ownerID string, documentType string, limit, offset int) ([]*entity.ExtractionRecord, error) {
	q := r.ent.ExtractionRecord.
		Query().
		Where(extractionrecord.OwnerID(ownerID))
	if documentType != "" {
		q = q.Where(extractionrecord.DocumentType(documentType))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.
		Order(ent.Desc(extractionrecord.FieldLastExtractedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("extraction_record list failed", "owner_id", ownerID, "err", err)
		return nil, err
	}
	out := make([]*entity.ExtractionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out, nil
}

func (r *extractionRecordRepo) Delete(ctx context.Context, documentID string) error {
	n, err := r.ent.ExtractionRecord.
		Delete().
		Where(extractionrecord.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.log.Error("extraction_record delete failed", "document_id", documentID, "err", err)
		return err
	}
	r.log.Info("extraction_record deleted", "document_id", documentID, "count", n)
	return nil
}

func toEntity(row *ent.ExtractionRecord) *entity.ExtractionRecord {
	return &entity.ExtractionRecord{
		DocumentID:        row.DocumentID,
		OwnerID:           row.OwnerID,
		DocumentType:      row.DocumentType,
		SourceFingerprint: row.SourceFingerprint,
		RawExtractKey:     row.RawExtractKey,
		StructuredJSONKey: row.StructuredJSONKey,
		OCRConfidence:     row.OcrConfidence,
		LastExtractedAt:   row.LastExtractedAt,
	}
}
