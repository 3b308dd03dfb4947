package storage

import (
	"fmt"

	"github.com/talentform/docextract/constants"
)

// Blob paths are a pure function of (document_type, owner_id, document_id) and
// never of the content fingerprint: the path stays stable across re-uploads
// while the blob's content and the index's fingerprint field jointly determine
// freshness.

func typePrefix(dt constants.DocumentType) string {
	if dt == constants.DocumentTypeJD {
		return "JD"
	}
	return "CV"
}

// RawExtractKey returns the object key for the cleaned raw-text extract.
func RawExtractKey(dt constants.DocumentType, ownerID, documentID string) string {
	return fmt.Sprintf("Textract/%s_extract/%s/%s.txt", typePrefix(dt), ownerID, documentID)
}

// StructuredJSONKey returns the object key for the structured-JSON extract.
func StructuredJSONKey(dt constants.DocumentType, ownerID, documentID string) string {
	return fmt.Sprintf("Processed/%s_Json/%s/%s.json", typePrefix(dt), ownerID, documentID)
}
