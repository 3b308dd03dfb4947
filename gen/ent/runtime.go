// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/talentform/docextract/db/ent/schema"
	"github.com/talentform/docextract/gen/ent/extractionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionrecordFields := schema.ExtractionRecord{}.Fields()
	_ = extractionrecordFields
	// extractionrecordDescDocumentID is the schema descriptor for document_id field.
	extractionrecordDescDocumentID := extractionrecordFields[0].Descriptor()
	// extractionrecord.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	extractionrecord.DocumentIDValidator = extractionrecordDescDocumentID.Validators[0].(func(string) error)
	// extractionrecordDescOwnerID is the schema descriptor for owner_id field.
	extractionrecordDescOwnerID := extractionrecordFields[1].Descriptor()
	// extractionrecord.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	extractionrecord.OwnerIDValidator = extractionrecordDescOwnerID.Validators[0].(func(string) error)
	// extractionrecordDescDocumentType is the schema descriptor for document_type field.
	extractionrecordDescDocumentType := extractionrecordFields[2].Descriptor()
	// extractionrecord.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	extractionrecord.DocumentTypeValidator = func() func(string) error {
		validators := extractionrecordDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionrecordDescSourceFingerprint is the schema descriptor for source_fingerprint field.
	extractionrecordDescSourceFingerprint := extractionrecordFields[3].Descriptor()
	// extractionrecord.SourceFingerprintValidator is a validator for the "source_fingerprint" field. It is called by the builders before save.
	extractionrecord.SourceFingerprintValidator = extractionrecordDescSourceFingerprint.Validators[0].(func(string) error)
	// extractionrecordDescRawExtractKey is the schema descriptor for raw_extract_key field.
	extractionrecordDescRawExtractKey := extractionrecordFields[4].Descriptor()
	// extractionrecord.RawExtractKeyValidator is a validator for the "raw_extract_key" field. It is called by the builders before save.
	extractionrecord.RawExtractKeyValidator = extractionrecordDescRawExtractKey.Validators[0].(func(string) error)
	// extractionrecordDescOcrConfidence is the schema descriptor for ocr_confidence field.
	extractionrecordDescOcrConfidence := extractionrecordFields[6].Descriptor()
	// extractionrecord.DefaultOcrConfidence holds the default value on creation for the ocr_confidence field.
	extractionrecord.DefaultOcrConfidence = extractionrecordDescOcrConfidence.Default.(float64)
	// extractionrecordDescLastExtractedAt is the schema descriptor for last_extracted_at field.
	extractionrecordDescLastExtractedAt := extractionrecordFields[7].Descriptor()
	// extractionrecord.DefaultLastExtractedAt holds the default value on creation for the last_extracted_at field.
	extractionrecord.DefaultLastExtractedAt = extractionrecordDescLastExtractedAt.Default.(func() time.Time)
	// extractionrecord.UpdateDefaultLastExtractedAt holds the default value on update for the last_extracted_at field.
	extractionrecord.UpdateDefaultLastExtractedAt = extractionrecordDescLastExtractedAt.UpdateDefault.(func() time.Time)
}
