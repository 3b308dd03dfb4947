package llm

import (
	"context"
	"encoding/json"

	"github.com/talentform/docextract/constants"
)

// StructuredExtractor is the best-effort text -> structured JSON step.
// Implementations return the parsed JSON document, or an error the caller is
// expected to log and discard; this step must never abort the pipeline.
type StructuredExtractor interface {
	ExtractStructured(ctx context.Context, docType constants.DocumentType, text string) (json.RawMessage, error)
}
