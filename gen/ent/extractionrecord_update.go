// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talentform/docextract/gen/ent/extractionrecord"
	"github.com/talentform/docextract/gen/ent/predicate"
)

// ExtractionRecordUpdate is the builder for updating ExtractionRecord entities.
type ExtractionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdate) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExtractionRecordUpdate) SetOwnerID(v string) *ExtractionRecordUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableOwnerID(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionRecordUpdate) SetDocumentType(v string) *ExtractionRecordUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableDocumentType(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (_u *ExtractionRecordUpdate) SetSourceFingerprint(v string) *ExtractionRecordUpdate {
	_u.mutation.SetSourceFingerprint(v)
	return _u
}

// SetNillableSourceFingerprint sets the "source_fingerprint" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableSourceFingerprint(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetSourceFingerprint(*v)
	}
	return _u
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (_u *ExtractionRecordUpdate) SetRawExtractKey(v string) *ExtractionRecordUpdate {
	_u.mutation.SetRawExtractKey(v)
	return _u
}

// SetNillableRawExtractKey sets the "raw_extract_key" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableRawExtractKey(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetRawExtractKey(*v)
	}
	return _u
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (_u *ExtractionRecordUpdate) SetStructuredJSONKey(v string) *ExtractionRecordUpdate {
	_u.mutation.SetStructuredJSONKey(v)
	return _u
}

// SetNillableStructuredJSONKey sets the "structured_json_key" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableStructuredJSONKey(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetStructuredJSONKey(*v)
	}
	return _u
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (_u *ExtractionRecordUpdate) ClearStructuredJSONKey() *ExtractionRecordUpdate {
	_u.mutation.ClearStructuredJSONKey()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExtractionRecordUpdate) SetOcrConfidence(v float64) *ExtractionRecordUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableOcrConfidence(v *float64) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExtractionRecordUpdate) AddOcrConfidence(v float64) *ExtractionRecordUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (_u *ExtractionRecordUpdate) SetLastExtractedAt(v time.Time) *ExtractionRecordUpdate {
	_u.mutation.SetLastExtractedAt(v)
	return _u
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdate) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdate) defaults() {
	if _, ok := _u.mutation.LastExtractedAt(); !ok {
		v := extractionrecord.UpdateDefaultLastExtractedAt()
		_u.mutation.SetLastExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := extractionrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFingerprint(); ok {
		if err := extractionrecord.SourceFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "source_fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.source_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawExtractKey(); ok {
		if err := extractionrecord.RawExtractKeyValidator(v); err != nil {
			return &ValidationError{Name: "raw_extract_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.raw_extract_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(extractionrecord.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFingerprint(); ok {
		_spec.SetField(extractionrecord.FieldSourceFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExtractKey(); ok {
		_spec.SetField(extractionrecord.FieldRawExtractKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredJSONKey(); ok {
		_spec.SetField(extractionrecord.FieldStructuredJSONKey, field.TypeString, value)
	}
	if _u.mutation.StructuredJSONKeyCleared() {
		_spec.ClearField(extractionrecord.FieldStructuredJSONKey, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(extractionrecord.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(extractionrecord.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastExtractedAt(); ok {
		_spec.SetField(extractionrecord.FieldLastExtractedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRecordUpdateOne is the builder for updating a single ExtractionRecord entity.
type ExtractionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExtractionRecordUpdateOne) SetOwnerID(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableOwnerID(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionRecordUpdateOne) SetDocumentType(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableDocumentType(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (_u *ExtractionRecordUpdateOne) SetSourceFingerprint(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetSourceFingerprint(v)
	return _u
}

// SetNillableSourceFingerprint sets the "source_fingerprint" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableSourceFingerprint(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetSourceFingerprint(*v)
	}
	return _u
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (_u *ExtractionRecordUpdateOne) SetRawExtractKey(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetRawExtractKey(v)
	return _u
}

// SetNillableRawExtractKey sets the "raw_extract_key" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableRawExtractKey(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetRawExtractKey(*v)
	}
	return _u
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (_u *ExtractionRecordUpdateOne) SetStructuredJSONKey(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetStructuredJSONKey(v)
	return _u
}

// SetNillableStructuredJSONKey sets the "structured_json_key" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableStructuredJSONKey(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetStructuredJSONKey(*v)
	}
	return _u
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (_u *ExtractionRecordUpdateOne) ClearStructuredJSONKey() *ExtractionRecordUpdateOne {
	_u.mutation.ClearStructuredJSONKey()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExtractionRecordUpdateOne) SetOcrConfidence(v float64) *ExtractionRecordUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableOcrConfidence(v *float64) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExtractionRecordUpdateOne) AddOcrConfidence(v float64) *ExtractionRecordUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (_u *ExtractionRecordUpdateOne) SetLastExtractedAt(v time.Time) *ExtractionRecordUpdateOne {
	_u.mutation.SetLastExtractedAt(v)
	return _u
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdateOne) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdateOne) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRecordUpdateOne) Select(field string, fields ...string) *ExtractionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRecord entity.
func (_u *ExtractionRecordUpdateOne) Save(ctx context.Context) (*ExtractionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) SaveX(ctx context.Context) *ExtractionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.LastExtractedAt(); !ok {
		v := extractionrecord.UpdateDefaultLastExtractedAt()
		_u.mutation.SetLastExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := extractionrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFingerprint(); ok {
		if err := extractionrecord.SourceFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "source_fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.source_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawExtractKey(); ok {
		if err := extractionrecord.RawExtractKeyValidator(v); err != nil {
			return &ValidationError{Name: "raw_extract_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.raw_extract_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrecord.FieldID)
		for _, f := range fields {
			if !extractionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(extractionrecord.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFingerprint(); ok {
		_spec.SetField(extractionrecord.FieldSourceFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawExtractKey(); ok {
		_spec.SetField(extractionrecord.FieldRawExtractKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredJSONKey(); ok {
		_spec.SetField(extractionrecord.FieldStructuredJSONKey, field.TypeString, value)
	}
	if _u.mutation.StructuredJSONKeyCleared() {
		_spec.ClearField(extractionrecord.FieldStructuredJSONKey, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(extractionrecord.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(extractionrecord.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastExtractedAt(); ok {
		_spec.SetField(extractionrecord.FieldLastExtractedAt, field.TypeTime, value)
	}
	_node = &ExtractionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
