// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talentform/docextract/gen/ent/extractionrecord"
)

// ExtractionRecord is the model entity for the ExtractionRecord schema.
type ExtractionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// SourceFingerprint holds the value of the "source_fingerprint" field.
	SourceFingerprint string `json:"source_fingerprint,omitempty"`
	// RawExtractKey holds the value of the "raw_extract_key" field.
	RawExtractKey string `json:"raw_extract_key,omitempty"`
	// StructuredJSONKey holds the value of the "structured_json_key" field.
	StructuredJSONKey *string `json:"structured_json_key,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence float64 `json:"ocr_confidence,omitempty"`
	// LastExtractedAt holds the value of the "last_extracted_at" field.
	LastExtractedAt time.Time `json:"last_extracted_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case extractionrecord.FieldDocumentID, extractionrecord.FieldOwnerID, extractionrecord.FieldDocumentType, extractionrecord.FieldSourceFingerprint, extractionrecord.FieldRawExtractKey, extractionrecord.FieldStructuredJSONKey:
			values[i] = new(sql.NullString)
		case extractionrecord.FieldLastExtractedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRecord fields.
func (_m *ExtractionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractionrecord.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractionrecord.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case extractionrecord.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case extractionrecord.FieldSourceFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_fingerprint", values[i])
			} else if value.Valid {
				_m.SourceFingerprint = value.String
			}
		case extractionrecord.FieldRawExtractKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_extract_key", values[i])
			} else if value.Valid {
				_m.RawExtractKey = value.String
			}
		case extractionrecord.FieldStructuredJSONKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field structured_json_key", values[i])
			} else if value.Valid {
				_m.StructuredJSONKey = new(string)
				*_m.StructuredJSONKey = value.String
			}
		case extractionrecord.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = value.Float64
			}
		case extractionrecord.FieldLastExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_extracted_at", values[i])
			} else if value.Valid {
				_m.LastExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionRecord.
// Note that you need to call ExtractionRecord.Unwrap() before calling this method if this ExtractionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRecord) Update() *ExtractionRecordUpdateOne {
	return NewExtractionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRecord) Unwrap() *ExtractionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("source_fingerprint=")
	builder.WriteString(_m.SourceFingerprint)
	builder.WriteString(", ")
	builder.WriteString("raw_extract_key=")
	builder.WriteString(_m.RawExtractKey)
	builder.WriteString(", ")
	if v := _m.StructuredJSONKey; v != nil {
		builder.WriteString("structured_json_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ocr_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrConfidence))
	builder.WriteString(", ")
	builder.WriteString("last_extracted_at=")
	builder.WriteString(_m.LastExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRecords is a parsable slice of ExtractionRecord.
type ExtractionRecords []*ExtractionRecord
