package entity

import (
	"time"
)

// ExtractionRecord is the durable cache-index entry for one logical document.
// Exactly one live record exists per document ID; it is overwritten
// (last-write-wins) on each successful extraction.
type ExtractionRecord struct {
	DocumentID        string    `json:"document_id"`
	OwnerID           string    `json:"owner_id"`
	DocumentType      string    `json:"document_type"`
	SourceFingerprint string    `json:"source_fingerprint"`
	RawExtractKey     string    `json:"raw_extract_key"`
	StructuredJSONKey *string   `json:"structured_json_key,omitempty"`
	OCRConfidence     float64   `json:"ocr_confidence"`
	LastExtractedAt   time.Time `json:"last_extracted_at"`
}
