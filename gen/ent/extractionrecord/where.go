// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/talentform/docextract/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOwnerID, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentType, v))
}

// SourceFingerprint applies equality check predicate on the "source_fingerprint" field. It's identical to SourceFingerprintEQ.
func SourceFingerprint(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldSourceFingerprint, v))
}

// RawExtractKey applies equality check predicate on the "raw_extract_key" field. It's identical to RawExtractKeyEQ.
func RawExtractKey(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRawExtractKey, v))
}

// StructuredJSONKey applies equality check predicate on the "structured_json_key" field. It's identical to StructuredJSONKeyEQ.
func StructuredJSONKey(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldStructuredJSONKey, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOcrConfidence, v))
}

// LastExtractedAt applies equality check predicate on the "last_extracted_at" field. It's identical to LastExtractedAtEQ.
func LastExtractedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldLastExtractedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldDocumentID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldOwnerID, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldDocumentType, v))
}

// SourceFingerprintEQ applies the EQ predicate on the "source_fingerprint" field.
func SourceFingerprintEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldSourceFingerprint, v))
}

// SourceFingerprintNEQ applies the NEQ predicate on the "source_fingerprint" field.
func SourceFingerprintNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldSourceFingerprint, v))
}

// SourceFingerprintIn applies the In predicate on the "source_fingerprint" field.
func SourceFingerprintIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldSourceFingerprint, vs...))
}

// SourceFingerprintNotIn applies the NotIn predicate on the "source_fingerprint" field.
func SourceFingerprintNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldSourceFingerprint, vs...))
}

// SourceFingerprintGT applies the GT predicate on the "source_fingerprint" field.
func SourceFingerprintGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldSourceFingerprint, v))
}

// SourceFingerprintGTE applies the GTE predicate on the "source_fingerprint" field.
func SourceFingerprintGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldSourceFingerprint, v))
}

// SourceFingerprintLT applies the LT predicate on the "source_fingerprint" field.
func SourceFingerprintLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldSourceFingerprint, v))
}

// SourceFingerprintLTE applies the LTE predicate on the "source_fingerprint" field.
func SourceFingerprintLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldSourceFingerprint, v))
}

// SourceFingerprintContains applies the Contains predicate on the "source_fingerprint" field.
func SourceFingerprintContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldSourceFingerprint, v))
}

// SourceFingerprintHasPrefix applies the HasPrefix predicate on the "source_fingerprint" field.
func SourceFingerprintHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldSourceFingerprint, v))
}

// SourceFingerprintHasSuffix applies the HasSuffix predicate on the "source_fingerprint" field.
func SourceFingerprintHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldSourceFingerprint, v))
}

// SourceFingerprintEqualFold applies the EqualFold predicate on the "source_fingerprint" field.
func SourceFingerprintEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldSourceFingerprint, v))
}

// SourceFingerprintContainsFold applies the ContainsFold predicate on the "source_fingerprint" field.
func SourceFingerprintContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldSourceFingerprint, v))
}

// RawExtractKeyEQ applies the EQ predicate on the "raw_extract_key" field.
func RawExtractKeyEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRawExtractKey, v))
}

// RawExtractKeyNEQ applies the NEQ predicate on the "raw_extract_key" field.
func RawExtractKeyNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldRawExtractKey, v))
}

// RawExtractKeyIn applies the In predicate on the "raw_extract_key" field.
func RawExtractKeyIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldRawExtractKey, vs...))
}

// RawExtractKeyNotIn applies the NotIn predicate on the "raw_extract_key" field.
func RawExtractKeyNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldRawExtractKey, vs...))
}

// RawExtractKeyGT applies the GT predicate on the "raw_extract_key" field.
func RawExtractKeyGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldRawExtractKey, v))
}

// RawExtractKeyGTE applies the GTE predicate on the "raw_extract_key" field.
func RawExtractKeyGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldRawExtractKey, v))
}

// RawExtractKeyLT applies the LT predicate on the "raw_extract_key" field.
func RawExtractKeyLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldRawExtractKey, v))
}

// RawExtractKeyLTE applies the LTE predicate on the "raw_extract_key" field.
func RawExtractKeyLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldRawExtractKey, v))
}

// RawExtractKeyContains applies the Contains predicate on the "raw_extract_key" field.
func RawExtractKeyContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldRawExtractKey, v))
}

// RawExtractKeyHasPrefix applies the HasPrefix predicate on the "raw_extract_key" field.
func RawExtractKeyHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldRawExtractKey, v))
}

// RawExtractKeyHasSuffix applies the HasSuffix predicate on the "raw_extract_key" field.
func RawExtractKeyHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldRawExtractKey, v))
}

// RawExtractKeyEqualFold applies the EqualFold predicate on the "raw_extract_key" field.
func RawExtractKeyEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldRawExtractKey, v))
}

// RawExtractKeyContainsFold applies the ContainsFold predicate on the "raw_extract_key" field.
func RawExtractKeyContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldRawExtractKey, v))
}

// StructuredJSONKeyEQ applies the EQ predicate on the "structured_json_key" field.
func StructuredJSONKeyEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyNEQ applies the NEQ predicate on the "structured_json_key" field.
func StructuredJSONKeyNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyIn applies the In predicate on the "structured_json_key" field.
func StructuredJSONKeyIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldStructuredJSONKey, vs...))
}

// StructuredJSONKeyNotIn applies the NotIn predicate on the "structured_json_key" field.
func StructuredJSONKeyNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldStructuredJSONKey, vs...))
}

// StructuredJSONKeyGT applies the GT predicate on the "structured_json_key" field.
func StructuredJSONKeyGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyGTE applies the GTE predicate on the "structured_json_key" field.
func StructuredJSONKeyGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyLT applies the LT predicate on the "structured_json_key" field.
func StructuredJSONKeyLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyLTE applies the LTE predicate on the "structured_json_key" field.
func StructuredJSONKeyLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyContains applies the Contains predicate on the "structured_json_key" field.
func StructuredJSONKeyContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyHasPrefix applies the HasPrefix predicate on the "structured_json_key" field.
func StructuredJSONKeyHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyHasSuffix applies the HasSuffix predicate on the "structured_json_key" field.
func StructuredJSONKeyHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyIsNil applies the IsNil predicate on the "structured_json_key" field.
func StructuredJSONKeyIsNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIsNull(FieldStructuredJSONKey))
}

// StructuredJSONKeyNotNil applies the NotNil predicate on the "structured_json_key" field.
func StructuredJSONKeyNotNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotNull(FieldStructuredJSONKey))
}

// StructuredJSONKeyEqualFold applies the EqualFold predicate on the "structured_json_key" field.
func StructuredJSONKeyEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldStructuredJSONKey, v))
}

// StructuredJSONKeyContainsFold applies the ContainsFold predicate on the "structured_json_key" field.
func StructuredJSONKeyContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldStructuredJSONKey, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float64) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldOcrConfidence, v))
}

// LastExtractedAtEQ applies the EQ predicate on the "last_extracted_at" field.
func LastExtractedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldLastExtractedAt, v))
}

// LastExtractedAtNEQ applies the NEQ predicate on the "last_extracted_at" field.
func LastExtractedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldLastExtractedAt, v))
}

// LastExtractedAtIn applies the In predicate on the "last_extracted_at" field.
func LastExtractedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldLastExtractedAt, vs...))
}

// LastExtractedAtNotIn applies the NotIn predicate on the "last_extracted_at" field.
func LastExtractedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldLastExtractedAt, vs...))
}

// LastExtractedAtGT applies the GT predicate on the "last_extracted_at" field.
func LastExtractedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldLastExtractedAt, v))
}

// LastExtractedAtGTE applies the GTE predicate on the "last_extracted_at" field.
func LastExtractedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldLastExtractedAt, v))
}

// LastExtractedAtLT applies the LT predicate on the "last_extracted_at" field.
func LastExtractedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldLastExtractedAt, v))
}

// LastExtractedAtLTE applies the LTE predicate on the "last_extracted_at" field.
func LastExtractedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldLastExtractedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.NotPredicates(p))
}
