// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talentform/docextract/gen/ent/extractionrecord"
	"github.com/talentform/docextract/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionRecord = "ExtractionRecord"
)

// ExtractionRecordMutation represents an operation that mutates the ExtractionRecord nodes in the graph.
type ExtractionRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	document_id         *string
	owner_id            *string
	document_type       *string
	source_fingerprint  *string
	raw_extract_key     *string
	structured_json_key *string
	ocr_confidence      *float64
	addocr_confidence   *float64
	last_extracted_at   *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ExtractionRecord, error)
	predicates          []predicate.ExtractionRecord
}

var _ ent.Mutation = (*ExtractionRecordMutation)(nil)

// extractionrecordOption allows management of the mutation configuration using functional options.
type extractionrecordOption func(*ExtractionRecordMutation)

// newExtractionRecordMutation creates new mutation for the ExtractionRecord entity.
func newExtractionRecordMutation(c config, op Op, opts ...extractionrecordOption) *ExtractionRecordMutation {
	m := &ExtractionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRecordID sets the ID field of the mutation.
func withExtractionRecordID(id int) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRecord
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRecord sets the old ExtractionRecord of the mutation.
func withExtractionRecord(node *ExtractionRecord) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		m.oldValue = func(context.Context) (*ExtractionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionRecordMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionRecordMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionRecordMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ExtractionRecordMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ExtractionRecordMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ExtractionRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ExtractionRecordMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ExtractionRecordMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ExtractionRecordMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (m *ExtractionRecordMutation) SetSourceFingerprint(s string) {
	m.source_fingerprint = &s
}

// SourceFingerprint returns the value of the "source_fingerprint" field in the mutation.
func (m *ExtractionRecordMutation) SourceFingerprint() (r string, exists bool) {
	v := m.source_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFingerprint returns the old "source_fingerprint" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldSourceFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFingerprint: %w", err)
	}
	return oldValue.SourceFingerprint, nil
}

// ResetSourceFingerprint resets all changes to the "source_fingerprint" field.
func (m *ExtractionRecordMutation) ResetSourceFingerprint() {
	m.source_fingerprint = nil
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (m *ExtractionRecordMutation) SetRawExtractKey(s string) {
	m.raw_extract_key = &s
}

// RawExtractKey returns the value of the "raw_extract_key" field in the mutation.
func (m *ExtractionRecordMutation) RawExtractKey() (r string, exists bool) {
	v := m.raw_extract_key
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExtractKey returns the old "raw_extract_key" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldRawExtractKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExtractKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExtractKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExtractKey: %w", err)
	}
	return oldValue.RawExtractKey, nil
}

// ResetRawExtractKey resets all changes to the "raw_extract_key" field.
func (m *ExtractionRecordMutation) ResetRawExtractKey() {
	m.raw_extract_key = nil
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (m *ExtractionRecordMutation) SetStructuredJSONKey(s string) {
	m.structured_json_key = &s
}

// StructuredJSONKey returns the value of the "structured_json_key" field in the mutation.
func (m *ExtractionRecordMutation) StructuredJSONKey() (r string, exists bool) {
	v := m.structured_json_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredJSONKey returns the old "structured_json_key" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldStructuredJSONKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredJSONKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredJSONKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredJSONKey: %w", err)
	}
	return oldValue.StructuredJSONKey, nil
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (m *ExtractionRecordMutation) ClearStructuredJSONKey() {
	m.structured_json_key = nil
	m.clearedFields[extractionrecord.FieldStructuredJSONKey] = struct{}{}
}

// StructuredJSONKeyCleared returns if the "structured_json_key" field was cleared in this mutation.
func (m *ExtractionRecordMutation) StructuredJSONKeyCleared() bool {
	_, ok := m.clearedFields[extractionrecord.FieldStructuredJSONKey]
	return ok
}

// ResetStructuredJSONKey resets all changes to the "structured_json_key" field.
func (m *ExtractionRecordMutation) ResetStructuredJSONKey() {
	m.structured_json_key = nil
	delete(m.clearedFields, extractionrecord.FieldStructuredJSONKey)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ExtractionRecordMutation) SetOcrConfidence(f float64) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ExtractionRecordMutation) OcrConfidence() (r float64, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldOcrConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ExtractionRecordMutation) AddOcrConfidence(f float64) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ExtractionRecordMutation) AddedOcrConfidence() (r float64, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ExtractionRecordMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (m *ExtractionRecordMutation) SetLastExtractedAt(t time.Time) {
	m.last_extracted_at = &t
}

// LastExtractedAt returns the value of the "last_extracted_at" field in the mutation.
func (m *ExtractionRecordMutation) LastExtractedAt() (r time.Time, exists bool) {
	v := m.last_extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExtractedAt returns the old "last_extracted_at" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldLastExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExtractedAt: %w", err)
	}
	return oldValue.LastExtractedAt, nil
}

// ResetLastExtractedAt resets all changes to the "last_extracted_at" field.
func (m *ExtractionRecordMutation) ResetLastExtractedAt() {
	m.last_extracted_at = nil
}

// Where appends a list predicates to the ExtractionRecordMutation builder.
func (m *ExtractionRecordMutation) Where(ps ...predicate.ExtractionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRecord).
func (m *ExtractionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document_id != nil {
		fields = append(fields, extractionrecord.FieldDocumentID)
	}
	if m.owner_id != nil {
		fields = append(fields, extractionrecord.FieldOwnerID)
	}
	if m.document_type != nil {
		fields = append(fields, extractionrecord.FieldDocumentType)
	}
	if m.source_fingerprint != nil {
		fields = append(fields, extractionrecord.FieldSourceFingerprint)
	}
	if m.raw_extract_key != nil {
		fields = append(fields, extractionrecord.FieldRawExtractKey)
	}
	if m.structured_json_key != nil {
		fields = append(fields, extractionrecord.FieldStructuredJSONKey)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, extractionrecord.FieldOcrConfidence)
	}
	if m.last_extracted_at != nil {
		fields = append(fields, extractionrecord.FieldLastExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrecord.FieldDocumentID:
		return m.DocumentID()
	case extractionrecord.FieldOwnerID:
		return m.OwnerID()
	case extractionrecord.FieldDocumentType:
		return m.DocumentType()
	case extractionrecord.FieldSourceFingerprint:
		return m.SourceFingerprint()
	case extractionrecord.FieldRawExtractKey:
		return m.RawExtractKey()
	case extractionrecord.FieldStructuredJSONKey:
		return m.StructuredJSONKey()
	case extractionrecord.FieldOcrConfidence:
		return m.OcrConfidence()
	case extractionrecord.FieldLastExtractedAt:
		return m.LastExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionrecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case extractionrecord.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case extractionrecord.FieldSourceFingerprint:
		return m.OldSourceFingerprint(ctx)
	case extractionrecord.FieldRawExtractKey:
		return m.OldRawExtractKey(ctx)
	case extractionrecord.FieldStructuredJSONKey:
		return m.OldStructuredJSONKey(ctx)
	case extractionrecord.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case extractionrecord.FieldLastExtractedAt:
		return m.OldLastExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrecord.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionrecord.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case extractionrecord.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case extractionrecord.FieldSourceFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFingerprint(v)
		return nil
	case extractionrecord.FieldRawExtractKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExtractKey(v)
		return nil
	case extractionrecord.FieldStructuredJSONKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredJSONKey(v)
		return nil
	case extractionrecord.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case extractionrecord.FieldLastExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, extractionrecord.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionrecord.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionrecord.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrecord.FieldStructuredJSONKey) {
		fields = append(fields, extractionrecord.FieldStructuredJSONKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ClearField(name string) error {
	switch name {
	case extractionrecord.FieldStructuredJSONKey:
		m.ClearStructuredJSONKey()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ResetField(name string) error {
	switch name {
	case extractionrecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionrecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case extractionrecord.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case extractionrecord.FieldSourceFingerprint:
		m.ResetSourceFingerprint()
		return nil
	case extractionrecord.FieldRawExtractKey:
		m.ResetRawExtractKey()
		return nil
	case extractionrecord.FieldStructuredJSONKey:
		m.ResetStructuredJSONKey()
		return nil
	case extractionrecord.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case extractionrecord.FieldLastExtractedAt:
		m.ResetLastExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRecord edge %s", name)
}
