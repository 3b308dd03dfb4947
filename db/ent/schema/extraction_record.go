package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/db/ent/schema/utils"
)

type ExtractionRecord struct{ ent.Schema }

func (ExtractionRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_records"},
	}
}

func (ExtractionRecord) Fields() []ent.Field {
	return []ent.Field{
		// document_id is the stable identity of the logical upload, so it is
		// the primary lookup key; one live record per document.
		field.String("document_id").NotEmpty().Unique().Immutable(),
		field.String("owner_id").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("source_fingerprint").NotEmpty(),
		field.String("raw_extract_key").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("structured_json_key").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("ocr_confidence").Default(0),
		field.Time("last_extracted_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "document_type"),
		index.Fields("owner_id", "last_extracted_at"),
	}
}
