package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"modernc.org/sqlite"

	"github.com/talentform/docextract/gen/ent/enttest"
	"github.com/talentform/docextract/internal/entity"
)

// Ent's sqlite dialect expects the driver under the mattn name.
func init() {
	sql.Register("sqlite3", &sqlite.Driver{})
}

func newTestRepo(t *testing.T) ExtractionRecordRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return NewExtractionRecordRepository(client, slog.Default())
}

func testRecord(documentID, fingerprint string) *entity.ExtractionRecord {
	return &entity.ExtractionRecord{
		DocumentID:        documentID,
		OwnerID:           "owner-1",
		DocumentType:      "cv",
		SourceFingerprint: fingerprint,
		RawExtractKey:     "Textract/CV_extract/owner-1/" + documentID + ".txt",
		OCRConfidence:     97.5,
		LastExtractedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestUpsertThenGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := testRecord("resume_id", "etag-1")
	jsonKey := "Processed/CV_Json/owner-1/resume_id.json"
	want.StructuredJSONKey = &jsonKey
	if err := repo.Upsert(ctx, want); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := repo.Get(ctx, "resume_id")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a record")
	}
	if got.SourceFingerprint != "etag-1" || got.OwnerID != "owner-1" || got.DocumentType != "cv" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.StructuredJSONKey == nil || *got.StructuredJSONKey != jsonKey {
		t.Fatalf("structured key not persisted: %v", got.StructuredJSONKey)
	}
	if got.OCRConfidence != 97.5 {
		t.Fatalf("unexpected confidence: %v", got.OCRConfidence)
	}

	missing, err := repo.Get(ctx, "no_such_document")
	if err != nil || missing != nil {
		t.Fatalf("missing record must be (nil, nil), got %+v / %v", missing, err)
	}
}

func TestUpsertLaterWriteWinsAndClearsStructuredKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testRecord("resume_id", "etag-1")
	jsonKey := "Processed/CV_Json/owner-1/resume_id.json"
	first.StructuredJSONKey = &jsonKey
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// A re-upload with a new fingerprint whose structured extraction failed:
	// the key must be cleared, not left pointing at the stale blob.
	second := testRecord("resume_id", "etag-2")
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := repo.Get(ctx, "resume_id")
	if err != nil || got == nil {
		t.Fatalf("get failed: %+v / %v", got, err)
	}
	if got.SourceFingerprint != "etag-2" {
		t.Fatalf("later upsert must win, got fingerprint %q", got.SourceFingerprint)
	}
	if got.StructuredJSONKey != nil {
		t.Fatalf("structured key must be cleared, got %q", *got.StructuredJSONKey)
	}

	all, err := repo.ListByOwner(ctx, "owner-1", "", 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one live record per document, got %d", len(all))
	}
}

func TestUpsertConcurrentMissesAllSucceed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Concurrent cache misses on the same document must all land without a
	// unique-constraint error; one of them ends up as the live record.
	const writers = 4
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = repo.Upsert(ctx, testRecord("resume_id", fmt.Sprintf("etag-%d", n)))
		}(i)
	}
	wg.Wait()

	for n, err := range errs {
		if err != nil {
			t.Fatalf("writer %d failed: %v", n, err)
		}
	}

	got, err := repo.Get(ctx, "resume_id")
	if err != nil || got == nil {
		t.Fatalf("get failed: %+v / %v", got, err)
	}
	seen := false
	for n := 0; n < writers; n++ {
		if got.SourceFingerprint == fmt.Sprintf("etag-%d", n) {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("fingerprint %q written by no contender", got.SourceFingerprint)
	}

	all, err := repo.ListByOwner(ctx, "owner-1", "cv", 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one live record per document, got %d", len(all))
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Upsert(ctx, testRecord("resume_id", "etag-1")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Delete(ctx, "resume_id"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err := repo.Get(ctx, "resume_id")
	if err != nil || got != nil {
		t.Fatalf("record must be gone, got %+v / %v", got, err)
	}
}
