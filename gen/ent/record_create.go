// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/gen/ent/provider"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/google/uuid"
)

// RecordCreate is the builder for creating a Record entity.
type RecordCreate struct {
	config
	mutation *RecordMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *RecordCreate) SetPatientID(v uuid.UUID) *RecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *RecordCreate) SetProviderID(v uuid.UUID) *RecordCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_c *RecordCreate) SetNillableProviderID(v *uuid.UUID) *RecordCreate {
	if v != nil {
		_c.SetProviderID(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *RecordCreate) SetSourceFilename(v string) *RecordCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetSourceFormat sets the "source_format" field.
func (_c *RecordCreate) SetSourceFormat(v string) *RecordCreate {
	_c.mutation.SetSourceFormat(v)
	return _c
}

// SetSourceDocument sets the "source_document" field.
func (_c *RecordCreate) SetSourceDocument(v []byte) *RecordCreate {
	_c.mutation.SetSourceDocument(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecordCreate) SetStatus(v string) *RecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RecordCreate) SetErrorMessage(v string) *RecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RecordCreate) SetNillableErrorMessage(v *string) *RecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWeight sets the "weight" field.
func (_c *RecordCreate) SetWeight(v *entity.Measurement) *RecordCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *RecordCreate) SetHeight(v *entity.Measurement) *RecordCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetBmi sets the "bmi" field.
func (_c *RecordCreate) SetBmi(v *entity.Measurement) *RecordCreate {
	_c.mutation.SetBmi(v)
	return _c
}

// SetMedicalHistory sets the "medical_history" field.
func (_c *RecordCreate) SetMedicalHistory(v *entity.MedicalHistory) *RecordCreate {
	_c.mutation.SetMedicalHistory(v)
	return _c
}

// SetFamilyHistory sets the "family_history" field.
func (_c *RecordCreate) SetFamilyHistory(v *entity.FamilyHistory) *RecordCreate {
	_c.mutation.SetFamilyHistory(v)
	return _c
}

// SetSocialHistory sets the "social_history" field.
func (_c *RecordCreate) SetSocialHistory(v *entity.SocialHistory) *RecordCreate {
	_c.mutation.SetSocialHistory(v)
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *RecordCreate) SetAllergies(v []entity.Allergy) *RecordCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetMedications sets the "medications" field.
func (_c *RecordCreate) SetMedications(v []entity.Medication) *RecordCreate {
	_c.mutation.SetMedications(v)
	return _c
}

// SetVitals sets the "vitals" field.
func (_c *RecordCreate) SetVitals(v *entity.Vitals) *RecordCreate {
	_c.mutation.SetVitals(v)
	return _c
}

// SetTestsOrdered sets the "tests_ordered" field.
func (_c *RecordCreate) SetTestsOrdered(v []entity.TestOrder) *RecordCreate {
	_c.mutation.SetTestsOrdered(v)
	return _c
}

// SetTestResults sets the "test_results" field.
func (_c *RecordCreate) SetTestResults(v []entity.TestResult) *RecordCreate {
	_c.mutation.SetTestResults(v)
	return _c
}

// SetBillingInformation sets the "billing_information" field.
func (_c *RecordCreate) SetBillingInformation(v *entity.BillingInformation) *RecordCreate {
	_c.mutation.SetBillingInformation(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *RecordCreate) SetNotes(v string) *RecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *RecordCreate) SetNillableNotes(v *string) *RecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordCreate) SetCreatedAt(v time.Time) *RecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordCreate) SetNillableCreatedAt(v *time.Time) *RecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordCreate) SetID(v uuid.UUID) *RecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecordCreate) SetNillableID(v *uuid.UUID) *RecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *RecordCreate) SetPatient(v *Patient) *RecordCreate {
	return _c.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the Provider entity.
func (_c *RecordCreate) SetProvider(v *Provider) *RecordCreate {
	return _c.SetProviderID(v.ID)
}

// Mutation returns the RecordMutation object of the builder.
func (_c *RecordCreate) Mutation() *RecordMutation {
	return _c.mutation
}

// Save creates the Record in the database.
func (_c *RecordCreate) Save(ctx context.Context) (*Record, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordCreate) SaveX(ctx context.Context) *Record {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := record.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := record.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Record.patient_id"`)}
	}
	if _, ok := _c.mutation.SourceFilename(); !ok {
		return &ValidationError{Name: "source_filename", err: errors.New(`ent: missing required field "Record.source_filename"`)}
	}
	if v, ok := _c.mutation.SourceFilename(); ok {
		if err := record.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Record.source_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFormat(); !ok {
		return &ValidationError{Name: "source_format", err: errors.New(`ent: missing required field "Record.source_format"`)}
	}
	if v, ok := _c.mutation.SourceFormat(); ok {
		if err := record.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Record.source_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceDocument(); !ok {
		return &ValidationError{Name: "source_document", err: errors.New(`ent: missing required field "Record.source_document"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Record.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := record.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Record.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Record.created_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "Record.patient"`)}
	}
	return nil
}

func (_c *RecordCreate) sqlSave(ctx context.Context) (*Record, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordCreate) createSpec() (*Record, *sqlgraph.CreateSpec) {
	var (
		_node = &Record{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(record.Table, sqlgraph.NewFieldSpec(record.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(record.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.SourceFormat(); ok {
		_spec.SetField(record.FieldSourceFormat, field.TypeString, value)
		_node.SourceFormat = value
	}
	if value, ok := _c.mutation.SourceDocument(); ok {
		_spec.SetField(record.FieldSourceDocument, field.TypeBytes, value)
		_node.SourceDocument = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(record.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(record.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(record.FieldWeight, field.TypeJSON, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(record.FieldHeight, field.TypeJSON, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Bmi(); ok {
		_spec.SetField(record.FieldBmi, field.TypeJSON, value)
		_node.Bmi = value
	}
	if value, ok := _c.mutation.MedicalHistory(); ok {
		_spec.SetField(record.FieldMedicalHistory, field.TypeJSON, value)
		_node.MedicalHistory = value
	}
	if value, ok := _c.mutation.FamilyHistory(); ok {
		_spec.SetField(record.FieldFamilyHistory, field.TypeJSON, value)
		_node.FamilyHistory = value
	}
	if value, ok := _c.mutation.SocialHistory(); ok {
		_spec.SetField(record.FieldSocialHistory, field.TypeJSON, value)
		_node.SocialHistory = value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(record.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.Medications(); ok {
		_spec.SetField(record.FieldMedications, field.TypeJSON, value)
		_node.Medications = value
	}
	if value, ok := _c.mutation.Vitals(); ok {
		_spec.SetField(record.FieldVitals, field.TypeJSON, value)
		_node.Vitals = value
	}
	if value, ok := _c.mutation.TestsOrdered(); ok {
		_spec.SetField(record.FieldTestsOrdered, field.TypeJSON, value)
		_node.TestsOrdered = value
	}
	if value, ok := _c.mutation.TestResults(); ok {
		_spec.SetField(record.FieldTestResults, field.TypeJSON, value)
		_node.TestResults = value
	}
	if value, ok := _c.mutation.BillingInformation(); ok {
		_spec.SetField(record.FieldBillingInformation, field.TypeJSON, value)
		_node.BillingInformation = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(record.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(record.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   record.PatientTable,
			Columns: []string{record.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   record.ProviderTable,
			Columns: []string{record.ProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProviderID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecordCreateBulk is the builder for creating many Record entities in bulk.
type RecordCreateBulk struct {
	config
	err      error
	builders []*RecordCreate
}

// Save creates the Record entities in the database.
func (_c *RecordCreateBulk) Save(ctx context.Context) ([]*Record, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Record, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordMutation)
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
func (_c *RecordCreateBulk) SaveX(ctx context.Context) []*Record {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
