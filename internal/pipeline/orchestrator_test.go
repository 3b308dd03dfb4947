package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/internal/entity"
	"github.com/talentform/docextract/internal/ocr"
	"github.com/talentform/docextract/internal/storage"
)

type fakeStore struct {
	mu          sync.Mutex
	docs        map[string]*entity.SourceDocument
	blobs       map[string][]byte
	failPutKeys map[string]bool
	failGetKeys map[string]bool
	puts        []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:        map[string]*entity.SourceDocument{},
		blobs:       map[string][]byte{},
		failPutKeys: map[string]bool{},
		failGetKeys: map[string]bool{},
	}
}

func (s *fakeStore) Head(_ context.Context, key string) (*entity.SourceDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	cp := *doc
	return &cp, nil
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGetKeys[key] {
		return nil, errors.New("read failure")
	}
	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (s *fakeStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPutKeys[key] {
		return errors.New("write failure")
	}
	s.blobs[key] = data
	s.puts = append(s.puts, key)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// fakeOCR walks a scripted sequence of job states and counts backend calls.
type fakeOCR struct {
	mu          sync.Mutex
	detectLines []ocr.Line
	states      []*ocr.JobState
	cursor      int
	detects     int
	submits     int
	polls       int
	submitErr   error
}

func (c *fakeOCR) Detect(context.Context, string) ([]ocr.Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detects++
	return c.detectLines, nil
}

func (c *fakeOCR) Submit(context.Context, string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submits++
	if c.submitErr != nil {
		return "", c.submitErr
	}
	return "job-1", nil
}

func (c *fakeOCR) Poll(context.Context, string) (*ocr.JobState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.polls++
	if len(c.states) == 0 {
		return &ocr.JobState{JobID: "job-1", Status: constants.OCRJobInProgress}, nil
	}
	st := c.states[c.cursor]
	if c.cursor < len(c.states)-1 {
		c.cursor++
	}
	return st, nil
}

func (c *fakeOCR) backendCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detects + c.submits
}

type fakeIndex struct {
	mu      sync.Mutex
	records map[string]*entity.ExtractionRecord
	getErr  error
	upserts int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{records: map[string]*entity.ExtractionRecord{}}
}

func (i *fakeIndex) Get(_ context.Context, documentID string) (*entity.ExtractionRecord, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.getErr != nil {
		return nil, i.getErr
	}
	rec, ok := i.records[documentID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (i *fakeIndex) Upsert(_ context.Context, rec *entity.ExtractionRecord) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	cp := *rec
	i.records[rec.DocumentID] = &cp
	i.upserts++
	return nil
}

type fakeExtractor struct {
	out json.RawMessage
	err error
}

func (e *fakeExtractor) ExtractStructured(context.Context, constants.DocumentType, string) (json.RawMessage, error) {
	return e.out, e.err
}

func succeededAfter(lines []ocr.Line, inProgress int) []*ocr.JobState {
	states := []*ocr.JobState{{JobID: "job-1", Status: constants.OCRJobSubmitted}}
	for n := 0; n < inProgress; n++ {
		states = append(states, &ocr.JobState{JobID: "job-1", Status: constants.OCRJobInProgress})
	}
	return append(states, &ocr.JobState{JobID: "job-1", Status: constants.OCRJobSucceeded, Lines: lines})
}

func resumeLines(n int, confidence float64) []ocr.Line {
	lines := make([]ocr.Line, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, ocr.Line{Text: fmt.Sprintf("Experience item %d", i+1), Confidence: confidence})
	}
	return lines
}

func testOrchestrator(store *fakeStore, ocrClient ocr.Client, extractor *fakeExtractor, index ExtractionIndex) *Orchestrator {
	var ext *fakeExtractor
	if extractor != nil {
		ext = extractor
	} else {
		ext = &fakeExtractor{out: json.RawMessage(`{"full_name":"Jane Doe"}`)}
	}
	return NewOrchestrator(store, ocrClient, ext, index, Config{
		PollInterval: 2 * time.Millisecond,
		PollTimeout:  200 * time.Millisecond,
	}, nil)
}

func seedSource(store *fakeStore, key, owner, docID, contentType, etag string) {
	store.docs[key] = &entity.SourceDocument{
		StoreKey:    key,
		OwnerID:     owner,
		DocumentID:  docID,
		ContentType: contentType,
		Size:        1024,
		Fingerprint: etag,
	}
}

func TestExtractAsyncScenarioThenCacheHit(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	// One line carries a letter-adjacent zero run, so the byte-identical
	// assertion below also covers re-cleaning the cached blob on a hit.
	lines := append(resumeLines(41, 97.5), ocr.Line{Text: "Delivered project A00 on schedule", Confidence: 97.5})
	ocrClient := &fakeOCR{states: succeededAfter(lines, 1)}
	index := newFakeIndex()
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if res.Method != constants.MethodAsync {
		t.Fatalf("expected method async, got %s", res.Method)
	}
	if res.Confidence < 97.49 || res.Confidence > 97.51 {
		t.Fatalf("expected confidence ~97.5, got %v", res.Confidence)
	}
	if res.Text == "" {
		t.Fatalf("expected non-empty text")
	}

	rec := index.records["resume_id"]
	if rec == nil {
		t.Fatalf("expected an index record after extraction")
	}
	if rec.SourceFingerprint != "etag-1" {
		t.Fatalf("expected fingerprint etag-1, got %q", rec.SourceFingerprint)
	}
	if !strings.HasSuffix(rec.RawExtractKey, "/resume_id.txt") {
		t.Fatalf("unexpected raw extract key %q", rec.RawExtractKey)
	}

	callsBefore := ocrClient.backendCalls()
	res2, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("second extract failed: %v", err)
	}
	if res2.Method != constants.MethodCache {
		t.Fatalf("expected method cache, got %s", res2.Method)
	}
	if res2.Text != res.Text {
		t.Fatalf("cache hit text differs from original")
	}
	if res2.Confidence != res.Confidence {
		t.Fatalf("cache hit should echo recorded confidence: %v vs %v", res2.Confidence, res.Confidence)
	}
	if ocrClient.backendCalls() != callsBefore {
		t.Fatalf("cache hit must make zero OCR backend calls")
	}
}

func TestExtractForcedBypassRefreshesFingerprint(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-2")
	rawKey := storage.RawExtractKey(constants.DocumentTypeCV, "owner-1", "resume_id")
	store.blobs[rawKey] = []byte("cached text")
	index := newFakeIndex()
	index.records["resume_id"] = &entity.ExtractionRecord{
		DocumentID:        "resume_id",
		OwnerID:           "owner-1",
		DocumentType:      "cv",
		SourceFingerprint: "etag-2",
		RawExtractKey:     rawKey,
	}
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(3, 90), 0)}
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, true)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if res.Method != constants.MethodAsync {
		t.Fatalf("force=true must re-run OCR, got method %s", res.Method)
	}
	if ocrClient.backendCalls() == 0 {
		t.Fatalf("force=true must call the OCR backend")
	}
	if index.records["resume_id"].SourceFingerprint != "etag-2" {
		t.Fatalf("index fingerprint not refreshed")
	}
}

func TestExtractFingerprintStalenessTriggersMiss(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-2")
	rawKey := storage.RawExtractKey(constants.DocumentTypeCV, "owner-1", "resume_id")
	store.blobs[rawKey] = []byte("old cached text")
	index := newFakeIndex()
	index.records["resume_id"] = &entity.ExtractionRecord{
		DocumentID:        "resume_id",
		OwnerID:           "owner-1",
		DocumentType:      "cv",
		SourceFingerprint: "etag-1",
		RawExtractKey:     rawKey,
	}
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(2, 88), 0)}
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if res.Method != constants.MethodAsync {
		t.Fatalf("changed fingerprint must be a miss, got method %s", res.Method)
	}
	if index.records["resume_id"].SourceFingerprint != "etag-2" {
		t.Fatalf("index fingerprint not refreshed after re-extraction")
	}
}

func TestExtractCacheReadFailureDegradesToMiss(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	rawKey := storage.RawExtractKey(constants.DocumentTypeCV, "owner-1", "resume_id")
	store.failGetKeys[rawKey] = true
	index := newFakeIndex()
	index.records["resume_id"] = &entity.ExtractionRecord{
		DocumentID:        "resume_id",
		OwnerID:           "owner-1",
		DocumentType:      "cv",
		SourceFingerprint: "etag-1",
		RawExtractKey:     rawKey,
	}
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(1, 80), 0)}
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("cache-read failure must never raise: %v", err)
	}
	if res.Method != constants.MethodAsync {
		t.Fatalf("cache-read failure must degrade to a miss, got %s", res.Method)
	}
}

func TestExtractIndexUnavailableDegradesToMiss(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	index := newFakeIndex()
	index.getErr = errors.New("connection refused")
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(1, 80), 0)}
	o := testOrchestrator(store, ocrClient, nil, index)

	if _, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false); err != nil {
		t.Fatalf("index unavailability must never raise: %v", err)
	}
}

func TestExtractSourceNotFound(t *testing.T) {
	o := testOrchestrator(newFakeStore(), &fakeOCR{}, nil, newFakeIndex())
	_, err := o.Extract(context.Background(), "uploads/missing.pdf", constants.DocumentTypeCV, false)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestExtractBackendFailureCarriesMessage(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	ocrClient := &fakeOCR{states: []*ocr.JobState{{
		JobID:         "job-1",
		Status:        constants.OCRJobFailed,
		StatusMessage: "UNSUPPORTED_DOCUMENT",
	}}}
	o := testOrchestrator(store, ocrClient, nil, newFakeIndex())

	_, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "UNSUPPORTED_DOCUMENT") {
		t.Fatalf("backend status message not preserved: %v", err)
	}
}

func TestExtractTimeoutBound(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	ocrClient := &fakeOCR{} // never reaches a terminal status
	index := newFakeIndex()
	o := NewOrchestrator(store, ocrClient, &fakeExtractor{}, index, Config{
		PollInterval: 2 * time.Millisecond,
		PollTimeout:  20 * time.Millisecond,
	}, nil)

	start := time.Now()
	_, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrExtractionTimeout) {
		t.Fatalf("expected ErrExtractionTimeout, got %v", err)
	}
	// Ceiling plus at most one interval, with generous scheduling slack.
	if elapsed > 500*time.Millisecond {
		t.Fatalf("timeout took %v, expected bounded by ceiling + one interval", elapsed)
	}
	if index.upserts != 0 {
		t.Fatalf("a failed extraction must not touch the index")
	}
}

func TestExtractBestEffortStructuredData(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(5, 92), 0)}
	extractor := &fakeExtractor{err: errors.New("backend unreachable")}
	index := newFakeIndex()
	o := testOrchestrator(store, ocrClient, extractor, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("structured-extraction failure must never raise: %v", err)
	}
	if res.StructuredJSON != nil {
		t.Fatalf("expected nil structured json, got %s", res.StructuredJSON)
	}
	if res.StructuredJSONKey != "" {
		t.Fatalf("no structured key expected, got %q", res.StructuredJSONKey)
	}
	if res.Text == "" {
		t.Fatalf("text must still be populated")
	}
	rec := index.records["resume_id"]
	if rec == nil || rec.StructuredJSONKey != nil {
		t.Fatalf("record must exist with no structured key, got %+v", rec)
	}
}

func TestExtractStructuredKeyPopulatedOnlyWhenPersisted(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	jsonKey := storage.StructuredJSONKey(constants.DocumentTypeCV, "owner-1", "resume_id")
	store.failPutKeys[jsonKey] = true
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(5, 92), 0)}
	index := newFakeIndex()
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if res.StructuredJSONKey != "" {
		t.Fatalf("structured key must be empty when the blob write failed")
	}
	if rec := index.records["resume_id"]; rec == nil || rec.StructuredJSONKey != nil {
		t.Fatalf("record must not reference an unwritten structured blob")
	}
}

func TestExtractRawPersistFailureSkipsIndex(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	rawKey := storage.RawExtractKey(constants.DocumentTypeCV, "owner-1", "resume_id")
	store.failPutKeys[rawKey] = true
	ocrClient := &fakeOCR{states: succeededAfter(resumeLines(5, 92), 0)}
	index := newFakeIndex()
	o := testOrchestrator(store, ocrClient, nil, index)

	res, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("persistence failure must never raise: %v", err)
	}
	if res.Text == "" {
		t.Fatalf("text must still be returned")
	}
	if index.upserts != 0 {
		t.Fatalf("index must not reference a raw blob that was not durably written")
	}
}

func TestExtractBlankPage(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/blank.png", "owner-1", "blank_id", "image/png", "etag-9")
	ocrClient := &fakeOCR{detectLines: nil}
	o := testOrchestrator(store, ocrClient, &fakeExtractor{}, newFakeIndex())

	res, err := o.Extract(context.Background(), "uploads/blank.png", constants.DocumentTypeCV, false)
	if err != nil {
		t.Fatalf("a blank page is not an error: %v", err)
	}
	if res.Method != constants.MethodSync {
		t.Fatalf("image uploads use the sync path, got %s", res.Method)
	}
	if res.Text != "" || res.Confidence != 0 {
		t.Fatalf("expected empty text and confidence 0, got %q / %v", res.Text, res.Confidence)
	}
}

func TestExtractSubmitErrorIsExtractionFailed(t *testing.T) {
	store := newFakeStore()
	seedSource(store, "uploads/resume.pdf", "owner-1", "resume_id", "application/pdf", "etag-1")
	ocrClient := &fakeOCR{submitErr: errors.New("503 service unavailable")}
	o := testOrchestrator(store, ocrClient, nil, newFakeIndex())

	_, err := o.Extract(context.Background(), "uploads/resume.pdf", constants.DocumentTypeCV, false)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}
