// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractionrecord type in the database.
	Label = "extraction_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldSourceFingerprint holds the string denoting the source_fingerprint field in the database.
	FieldSourceFingerprint = "source_fingerprint"
	// FieldRawExtractKey holds the string denoting the raw_extract_key field in the database.
	FieldRawExtractKey = "raw_extract_key"
	// FieldStructuredJSONKey holds the string denoting the structured_json_key field in the database.
	FieldStructuredJSONKey = "structured_json_key"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldLastExtractedAt holds the string denoting the last_extracted_at field in the database.
	FieldLastExtractedAt = "last_extracted_at"
	// Table holds the table name of the extractionrecord in the database.
	Table = "extraction_records"
)

// Columns holds all SQL columns for extractionrecord fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldOwnerID,
	FieldDocumentType,
	FieldSourceFingerprint,
	FieldRawExtractKey,
	FieldStructuredJSONKey,
	FieldOcrConfidence,
	FieldLastExtractedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	DocumentIDValidator func(string) error
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// SourceFingerprintValidator is a validator for the "source_fingerprint" field. It is called by the builders before save.
	SourceFingerprintValidator func(string) error
	// RawExtractKeyValidator is a validator for the "raw_extract_key" field. It is called by the builders before save.
	RawExtractKeyValidator func(string) error
	// DefaultOcrConfidence holds the default value on creation for the "ocr_confidence" field.
	DefaultOcrConfidence float64
	// DefaultLastExtractedAt holds the default value on creation for the "last_extracted_at" field.
	DefaultLastExtractedAt func() time.Time
	// UpdateDefaultLastExtractedAt holds the default value on update for the "last_extracted_at" field.
	UpdateDefaultLastExtractedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// BySourceFingerprint orders the results by the source_fingerprint field.
func BySourceFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFingerprint, opts...).ToFunc()
}

// ByRawExtractKey orders the results by the raw_extract_key field.
func ByRawExtractKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawExtractKey, opts...).ToFunc()
}

// ByStructuredJSONKey orders the results by the structured_json_key field.
func ByStructuredJSONKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructuredJSONKey, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByLastExtractedAt orders the results by the last_extracted_at field.
func ByLastExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExtractedAt, opts...).ToFunc()
}
