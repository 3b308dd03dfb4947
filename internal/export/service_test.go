package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/talentform/docextract/internal/entity"
)

type fakeRecords struct {
	recs []*entity.ExtractionRecord
}

func (f *fakeRecords) Get(context.Context, string) (*entity.ExtractionRecord, error) {
	return nil, nil
}

func (f *fakeRecords) Upsert(context.Context, *entity.ExtractionRecord) error { return nil }

func (f *fakeRecords) ListByOwner(context.Context, string, string, int, int) ([]*entity.ExtractionRecord, error) {
	return f.recs, nil
}

func (f *fakeRecords) Delete(context.Context, string) error { return nil }

func TestExportRecordsXLSX(t *testing.T) {
	jsonKey := "Processed/CV_Json/owner-1/doc-1.json"
	repo := &fakeRecords{recs: []*entity.ExtractionRecord{
		{
			DocumentID:        "doc-1",
			OwnerID:           "owner-1",
			DocumentType:      "cv",
			SourceFingerprint: "etag-1",
			RawExtractKey:     "Textract/CV_extract/owner-1/doc-1.txt",
			StructuredJSONKey: &jsonKey,
			OCRConfidence:     97.5,
			LastExtractedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			DocumentID:        "doc-2",
			OwnerID:           "owner-1",
			DocumentType:      "jd",
			SourceFingerprint: "etag-7",
			RawExtractKey:     "Textract/JD_extract/owner-1/doc-2.txt",
			OCRConfidence:     88.25,
		},
	}}

	svc := NewService(repo, nil)
	out, err := svc.ExportRecordsXLSX(context.Background(), "owner-1", "")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records

	require.Equal(t, "Document ID", rows[0][0])
	require.Equal(t, "doc-1", rows[1][0])
	require.Equal(t, "cv", rows[1][1])
	require.Equal(t, "etag-1", rows[1][2])
	require.Equal(t, jsonKey, rows[1][4])
	require.Equal(t, "97.50", rows[1][5])

	require.Equal(t, "doc-2", rows[2][0])
	require.Equal(t, "", rows[2][4]) // no structured blob for this record
}
