package pipeline

import (
	"context"
	"encoding/json"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/internal/entity"
	"github.com/talentform/docextract/internal/textproc"
)

// ExtractionResult is what a caller gets back from Extract. Confidence is the
// OCR backend's mean line confidence; the post-processor's own estimate lives
// inside QualityMetrics and is never substituted for it.
type ExtractionResult struct {
	OwnerID           string                     `json:"owner_id"`
	DocumentID        string                     `json:"document_id"`
	Text              string                     `json:"text"`
	Confidence        float64                    `json:"confidence"`
	Sections          map[string]string          `json:"sections"`
	KeyInformation    textproc.KeyInformation    `json:"key_information"`
	QualityMetrics    textproc.QualityMetrics    `json:"quality_metrics"`
	StructuredJSON    json.RawMessage            `json:"structured_json,omitempty"`
	StructuredJSONKey string                     `json:"structured_json_key,omitempty"`
	Method            constants.ExtractionMethod `json:"method"`
}

// ExtractionIndex is the durable cache index the orchestrator consults and
// maintains. Get returns (nil, nil) for a missing record; backend errors are
// returned as-is and the orchestrator degrades them to a miss. Upsert is
// last-write-wins with exactly one live record per document ID.
type ExtractionIndex interface {
	Get(ctx context.Context, documentID string) (*entity.ExtractionRecord, error)
	Upsert(ctx context.Context, rec *entity.ExtractionRecord) error
}
