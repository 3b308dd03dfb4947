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
)

// ExtractionRecordCreate is the builder for creating a ExtractionRecord entity.
type ExtractionRecordCreate struct {
	config
	mutation *ExtractionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionRecordCreate) SetDocumentID(v string) *ExtractionRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ExtractionRecordCreate) SetOwnerID(v string) *ExtractionRecordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ExtractionRecordCreate) SetDocumentType(v string) *ExtractionRecordCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (_c *ExtractionRecordCreate) SetSourceFingerprint(v string) *ExtractionRecordCreate {
	_c.mutation.SetSourceFingerprint(v)
	return _c
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (_c *ExtractionRecordCreate) SetRawExtractKey(v string) *ExtractionRecordCreate {
	_c.mutation.SetRawExtractKey(v)
	return _c
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (_c *ExtractionRecordCreate) SetStructuredJSONKey(v string) *ExtractionRecordCreate {
	_c.mutation.SetStructuredJSONKey(v)
	return _c
}

// SetNillableStructuredJSONKey sets the "structured_json_key" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableStructuredJSONKey(v *string) *ExtractionRecordCreate {
	if v != nil {
		_c.SetStructuredJSONKey(*v)
	}
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *ExtractionRecordCreate) SetOcrConfidence(v float64) *ExtractionRecordCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableOcrConfidence(v *float64) *ExtractionRecordCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (_c *ExtractionRecordCreate) SetLastExtractedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetLastExtractedAt(v)
	return _c
}

// SetNillableLastExtractedAt sets the "last_extracted_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableLastExtractedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetLastExtractedAt(*v)
	}
	return _c
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_c *ExtractionRecordCreate) Mutation() *ExtractionRecordMutation {
	return _c.mutation
}

// Save creates the ExtractionRecord in the database.
func (_c *ExtractionRecordCreate) Save(ctx context.Context) (*ExtractionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRecordCreate) SaveX(ctx context.Context) *ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRecordCreate) defaults() {
	if _, ok := _c.mutation.OcrConfidence(); !ok {
		v := extractionrecord.DefaultOcrConfidence
		_c.mutation.SetOcrConfidence(v)
	}
	if _, ok := _c.mutation.LastExtractedAt(); !ok {
		v := extractionrecord.DefaultLastExtractedAt()
		_c.mutation.SetLastExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionRecord.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := extractionrecord.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ExtractionRecord.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := extractionrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "ExtractionRecord.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := extractionrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFingerprint(); !ok {
		return &ValidationError{Name: "source_fingerprint", err: errors.New(`ent: missing required field "ExtractionRecord.source_fingerprint"`)}
	}
	if v, ok := _c.mutation.SourceFingerprint(); ok {
		if err := extractionrecord.SourceFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "source_fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.source_fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawExtractKey(); !ok {
		return &ValidationError{Name: "raw_extract_key", err: errors.New(`ent: missing required field "ExtractionRecord.raw_extract_key"`)}
	}
	if v, ok := _c.mutation.RawExtractKey(); ok {
		if err := extractionrecord.RawExtractKeyValidator(v); err != nil {
			return &ValidationError{Name: "raw_extract_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.raw_extract_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrConfidence(); !ok {
		return &ValidationError{Name: "ocr_confidence", err: errors.New(`ent: missing required field "ExtractionRecord.ocr_confidence"`)}
	}
	if _, ok := _c.mutation.LastExtractedAt(); !ok {
		return &ValidationError{Name: "last_extracted_at", err: errors.New(`ent: missing required field "ExtractionRecord.last_extracted_at"`)}
	}
	return nil
}

func (_c *ExtractionRecordCreate) sqlSave(ctx context.Context) (*ExtractionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionRecordCreate) createSpec() (*ExtractionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrecord.Table, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractionrecord.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(extractionrecord.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(extractionrecord.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.SourceFingerprint(); ok {
		_spec.SetField(extractionrecord.FieldSourceFingerprint, field.TypeString, value)
		_node.SourceFingerprint = value
	}
	if value, ok := _c.mutation.RawExtractKey(); ok {
		_spec.SetField(extractionrecord.FieldRawExtractKey, field.TypeString, value)
		_node.RawExtractKey = value
	}
	if value, ok := _c.mutation.StructuredJSONKey(); ok {
		_spec.SetField(extractionrecord.FieldStructuredJSONKey, field.TypeString, value)
		_node.StructuredJSONKey = &value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(extractionrecord.FieldOcrConfidence, field.TypeFloat64, value)
		_node.OcrConfidence = value
	}
	if value, ok := _c.mutation.LastExtractedAt(); ok {
		_spec.SetField(extractionrecord.FieldLastExtractedAt, field.TypeTime, value)
		_node.LastExtractedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionRecord.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionRecordUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionRecordCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionRecordUpsertOne {
	_c.conflict = opts
	return &ExtractionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionRecordCreate) OnConflictColumns(columns ...string) *ExtractionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionRecordUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionRecordUpsertOne is the builder for "upsert"-ing
	//  one ExtractionRecord node.
	ExtractionRecordUpsertOne struct {
		create *ExtractionRecordCreate
	}

	// ExtractionRecordUpsert is the "OnConflict" setter.
	ExtractionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerID sets the "owner_id" field.
func (u *ExtractionRecordUpsert) SetOwnerID(v string) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateOwnerID() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldOwnerID)
	return u
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionRecordUpsert) SetDocumentType(v string) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldDocumentType, v)
	return u
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateDocumentType() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldDocumentType)
	return u
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (u *ExtractionRecordUpsert) SetSourceFingerprint(v string) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldSourceFingerprint, v)
	return u
}

// UpdateSourceFingerprint sets the "source_fingerprint" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateSourceFingerprint() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldSourceFingerprint)
	return u
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (u *ExtractionRecordUpsert) SetRawExtractKey(v string) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldRawExtractKey, v)
	return u
}

// UpdateRawExtractKey sets the "raw_extract_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateRawExtractKey() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldRawExtractKey)
	return u
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (u *ExtractionRecordUpsert) SetStructuredJSONKey(v string) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldStructuredJSONKey, v)
	return u
}

// UpdateStructuredJSONKey sets the "structured_json_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateStructuredJSONKey() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldStructuredJSONKey)
	return u
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (u *ExtractionRecordUpsert) ClearStructuredJSONKey() *ExtractionRecordUpsert {
	u.SetNull(extractionrecord.FieldStructuredJSONKey)
	return u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (u *ExtractionRecordUpsert) SetOcrConfidence(v float64) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldOcrConfidence, v)
	return u
}

// UpdateOcrConfidence sets the "ocr_confidence" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateOcrConfidence() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldOcrConfidence)
	return u
}

// AddOcrConfidence adds v to the "ocr_confidence" field.
func (u *ExtractionRecordUpsert) AddOcrConfidence(v float64) *ExtractionRecordUpsert {
	u.Add(extractionrecord.FieldOcrConfidence, v)
	return u
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (u *ExtractionRecordUpsert) SetLastExtractedAt(v time.Time) *ExtractionRecordUpsert {
	u.Set(extractionrecord.FieldLastExtractedAt, v)
	return u
}

// UpdateLastExtractedAt sets the "last_extracted_at" field to the value that was provided on create.
func (u *ExtractionRecordUpsert) UpdateLastExtractedAt() *ExtractionRecordUpsert {
	u.SetExcluded(extractionrecord.FieldLastExtractedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractionRecordUpsertOne) UpdateNewValues() *ExtractionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(extractionrecord.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionRecordUpsertOne) Ignore() *ExtractionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionRecordUpsertOne) DoNothing() *ExtractionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionRecordCreate.OnConflict
// documentation for more info.
func (u *ExtractionRecordUpsertOne) Update(set func(*ExtractionRecordUpsert)) *ExtractionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ExtractionRecordUpsertOne) SetOwnerID(v string) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateOwnerID() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateOwnerID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionRecordUpsertOne) SetDocumentType(v string) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateDocumentType() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateDocumentType()
	})
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (u *ExtractionRecordUpsertOne) SetSourceFingerprint(v string) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetSourceFingerprint(v)
	})
}

// UpdateSourceFingerprint sets the "source_fingerprint" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateSourceFingerprint() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateSourceFingerprint()
	})
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (u *ExtractionRecordUpsertOne) SetRawExtractKey(v string) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetRawExtractKey(v)
	})
}

// UpdateRawExtractKey sets the "raw_extract_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateRawExtractKey() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateRawExtractKey()
	})
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (u *ExtractionRecordUpsertOne) SetStructuredJSONKey(v string) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetStructuredJSONKey(v)
	})
}

// UpdateStructuredJSONKey sets the "structured_json_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateStructuredJSONKey() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateStructuredJSONKey()
	})
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (u *ExtractionRecordUpsertOne) ClearStructuredJSONKey() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.ClearStructuredJSONKey()
	})
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (u *ExtractionRecordUpsertOne) SetOcrConfidence(v float64) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetOcrConfidence(v)
	})
}

// AddOcrConfidence adds v to the "ocr_confidence" field.
func (u *ExtractionRecordUpsertOne) AddOcrConfidence(v float64) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.AddOcrConfidence(v)
	})
}

// UpdateOcrConfidence sets the "ocr_confidence" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateOcrConfidence() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateOcrConfidence()
	})
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (u *ExtractionRecordUpsertOne) SetLastExtractedAt(v time.Time) *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetLastExtractedAt(v)
	})
}

// UpdateLastExtractedAt sets the "last_extracted_at" field to the value that was provided on create.
func (u *ExtractionRecordUpsertOne) UpdateLastExtractedAt() *ExtractionRecordUpsertOne {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateLastExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionRecordCreateBulk is the builder for creating many ExtractionRecord entities in bulk.
type ExtractionRecordCreateBulk struct {
	config
	err      error
	builders []*ExtractionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractionRecord entities in the database.
func (_c *ExtractionRecordCreateBulk) Save(ctx context.Context) ([]*ExtractionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) SaveX(ctx context.Context) []*ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionRecordUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionRecordUpsertBulk {
	_c.conflict = opts
	return &ExtractionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionRecordCreateBulk) OnConflictColumns(columns ...string) *ExtractionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionRecordUpsertBulk{
		create: _c,
	}
}

// ExtractionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractionRecord nodes.
type ExtractionRecordUpsertBulk struct {
	create *ExtractionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractionRecordUpsertBulk) UpdateNewValues() *ExtractionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(extractionrecord.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionRecordUpsertBulk) Ignore() *ExtractionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionRecordUpsertBulk) DoNothing() *ExtractionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionRecordUpsertBulk) Update(set func(*ExtractionRecordUpsert)) *ExtractionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ExtractionRecordUpsertBulk) SetOwnerID(v string) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateOwnerID() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateOwnerID()
	})
}

// SetDocumentType sets the "document_type" field.
func (u *ExtractionRecordUpsertBulk) SetDocumentType(v string) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetDocumentType(v)
	})
}

// UpdateDocumentType sets the "document_type" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateDocumentType() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateDocumentType()
	})
}

// SetSourceFingerprint sets the "source_fingerprint" field.
func (u *ExtractionRecordUpsertBulk) SetSourceFingerprint(v string) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetSourceFingerprint(v)
	})
}

// UpdateSourceFingerprint sets the "source_fingerprint" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateSourceFingerprint() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateSourceFingerprint()
	})
}

// SetRawExtractKey sets the "raw_extract_key" field.
func (u *ExtractionRecordUpsertBulk) SetRawExtractKey(v string) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetRawExtractKey(v)
	})
}

// UpdateRawExtractKey sets the "raw_extract_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateRawExtractKey() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateRawExtractKey()
	})
}

// SetStructuredJSONKey sets the "structured_json_key" field.
func (u *ExtractionRecordUpsertBulk) SetStructuredJSONKey(v string) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetStructuredJSONKey(v)
	})
}

// UpdateStructuredJSONKey sets the "structured_json_key" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateStructuredJSONKey() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateStructuredJSONKey()
	})
}

// ClearStructuredJSONKey clears the value of the "structured_json_key" field.
func (u *ExtractionRecordUpsertBulk) ClearStructuredJSONKey() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.ClearStructuredJSONKey()
	})
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (u *ExtractionRecordUpsertBulk) SetOcrConfidence(v float64) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetOcrConfidence(v)
	})
}

// AddOcrConfidence adds v to the "ocr_confidence" field.
func (u *ExtractionRecordUpsertBulk) AddOcrConfidence(v float64) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.AddOcrConfidence(v)
	})
}

// UpdateOcrConfidence sets the "ocr_confidence" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateOcrConfidence() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateOcrConfidence()
	})
}

// SetLastExtractedAt sets the "last_extracted_at" field.
func (u *ExtractionRecordUpsertBulk) SetLastExtractedAt(v time.Time) *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.SetLastExtractedAt(v)
	})
}

// UpdateLastExtractedAt sets the "last_extracted_at" field to the value that was provided on create.
func (u *ExtractionRecordUpsertBulk) UpdateLastExtractedAt() *ExtractionRecordUpsertBulk {
	return u.Update(func(s *ExtractionRecordUpsert) {
		s.UpdateLastExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
