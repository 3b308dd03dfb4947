// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionRecordsColumns holds the columns for the "extraction_records" table.
	ExtractionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "source_fingerprint", Type: field.TypeString},
		{Name: "raw_extract_key", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_json_key", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "last_extracted_at", Type: field.TypeTime},
	}
	// ExtractionRecordsTable holds the schema information for the "extraction_records" table.
	ExtractionRecordsTable = &schema.Table{
		Name:       "extraction_records",
		Columns:    ExtractionRecordsColumns,
		PrimaryKey: []*schema.Column{ExtractionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrecord_owner_id_document_type",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRecordsColumns[2], ExtractionRecordsColumns[3]},
			},
			{
				Name:    "extractionrecord_owner_id_last_extracted_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRecordsColumns[2], ExtractionRecordsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionRecordsTable,
	}
)

func init() {
	ExtractionRecordsTable.Annotation = &entsql.Annotation{
		Table: "extraction_records",
	}
}
