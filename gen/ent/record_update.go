// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/gen/ent/predicate"
	"github.com/bryankwang/EMR-Processing/gen/ent/provider"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/google/uuid"
)

// RecordUpdate is the builder for updating Record entities.
type RecordUpdate struct {
	config
	hooks    []Hook
	mutation *RecordMutation
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdate) Where(ps ...predicate.Record) *RecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *RecordUpdate) SetPatientID(v uuid.UUID) *RecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *RecordUpdate) SetNillablePatientID(v *uuid.UUID) *RecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *RecordUpdate) SetProviderID(v uuid.UUID) *RecordUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableProviderID(v *uuid.UUID) *RecordUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// ClearProviderID clears the value of the "provider_id" field.
func (_u *RecordUpdate) ClearProviderID() *RecordUpdate {
	_u.mutation.ClearProviderID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *RecordUpdate) SetSourceFilename(v string) *RecordUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableSourceFilename(v *string) *RecordUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *RecordUpdate) SetSourceFormat(v string) *RecordUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableSourceFormat(v *string) *RecordUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *RecordUpdate) SetSourceDocument(v []byte) *RecordUpdate {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordUpdate) SetStatus(v string) *RecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableStatus(v *string) *RecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordUpdate) SetErrorMessage(v string) *RecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableErrorMessage(v *string) *RecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordUpdate) ClearErrorMessage() *RecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *RecordUpdate) SetWeight(v *entity.Measurement) *RecordUpdate {
	_u.mutation.SetWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *RecordUpdate) ClearWeight() *RecordUpdate {
	_u.mutation.ClearWeight()
	return _u
}

// SetHeight sets the "height" field.
func (_u *RecordUpdate) SetHeight(v *entity.Measurement) *RecordUpdate {
	_u.mutation.SetHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *RecordUpdate) ClearHeight() *RecordUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *RecordUpdate) SetBmi(v *entity.Measurement) *RecordUpdate {
	_u.mutation.SetBmi(v)
	return _u
}

// ClearBmi clears the value of the "bmi" field.
func (_u *RecordUpdate) ClearBmi() *RecordUpdate {
	_u.mutation.ClearBmi()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *RecordUpdate) SetMedicalHistory(v *entity.MedicalHistory) *RecordUpdate {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *RecordUpdate) ClearMedicalHistory() *RecordUpdate {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *RecordUpdate) SetFamilyHistory(v *entity.FamilyHistory) *RecordUpdate {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *RecordUpdate) ClearFamilyHistory() *RecordUpdate {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetSocialHistory sets the "social_history" field.
func (_u *RecordUpdate) SetSocialHistory(v *entity.SocialHistory) *RecordUpdate {
	_u.mutation.SetSocialHistory(v)
	return _u
}

// ClearSocialHistory clears the value of the "social_history" field.
func (_u *RecordUpdate) ClearSocialHistory() *RecordUpdate {
	_u.mutation.ClearSocialHistory()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *RecordUpdate) SetAllergies(v []entity.Allergy) *RecordUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *RecordUpdate) AppendAllergies(v []entity.Allergy) *RecordUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *RecordUpdate) ClearAllergies() *RecordUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *RecordUpdate) SetMedications(v []entity.Medication) *RecordUpdate {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *RecordUpdate) AppendMedications(v []entity.Medication) *RecordUpdate {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *RecordUpdate) ClearMedications() *RecordUpdate {
	_u.mutation.ClearMedications()
	return _u
}

// SetVitals sets the "vitals" field.
func (_u *RecordUpdate) SetVitals(v *entity.Vitals) *RecordUpdate {
	_u.mutation.SetVitals(v)
	return _u
}

// ClearVitals clears the value of the "vitals" field.
func (_u *RecordUpdate) ClearVitals() *RecordUpdate {
	_u.mutation.ClearVitals()
	return _u
}

// SetTestsOrdered sets the "tests_ordered" field.
func (_u *RecordUpdate) SetTestsOrdered(v []entity.TestOrder) *RecordUpdate {
	_u.mutation.SetTestsOrdered(v)
	return _u
}

// AppendTestsOrdered appends value to the "tests_ordered" field.
func (_u *RecordUpdate) AppendTestsOrdered(v []entity.TestOrder) *RecordUpdate {
	_u.mutation.AppendTestsOrdered(v)
	return _u
}

// ClearTestsOrdered clears the value of the "tests_ordered" field.
func (_u *RecordUpdate) ClearTestsOrdered() *RecordUpdate {
	_u.mutation.ClearTestsOrdered()
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *RecordUpdate) SetTestResults(v []entity.TestResult) *RecordUpdate {
	_u.mutation.SetTestResults(v)
	return _u
}

// AppendTestResults appends value to the "test_results" field.
func (_u *RecordUpdate) AppendTestResults(v []entity.TestResult) *RecordUpdate {
	_u.mutation.AppendTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *RecordUpdate) ClearTestResults() *RecordUpdate {
	_u.mutation.ClearTestResults()
	return _u
}

// SetBillingInformation sets the "billing_information" field.
func (_u *RecordUpdate) SetBillingInformation(v *entity.BillingInformation) *RecordUpdate {
	_u.mutation.SetBillingInformation(v)
	return _u
}

// ClearBillingInformation clears the value of the "billing_information" field.
func (_u *RecordUpdate) ClearBillingInformation() *RecordUpdate {
	_u.mutation.ClearBillingInformation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RecordUpdate) SetNotes(v string) *RecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableNotes(v *string) *RecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RecordUpdate) ClearNotes() *RecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *RecordUpdate) SetPatient(v *Patient) *RecordUpdate {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the Provider entity.
func (_u *RecordUpdate) SetProvider(v *Provider) *RecordUpdate {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdate) Mutation() *RecordMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *RecordUpdate) ClearPatient() *RecordUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the Provider entity.
func (_u *RecordUpdate) ClearProvider() *RecordUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdate) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := record.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Record.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := record.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Record.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := record.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Record.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Record.patient"`)
	}
	return nil
}

func (_u *RecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(record.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(record.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(record.FieldSourceDocument, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(record.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(record.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(record.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(record.FieldWeight, field.TypeJSON, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(record.FieldWeight, field.TypeJSON)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(record.FieldHeight, field.TypeJSON, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(record.FieldHeight, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(record.FieldBmi, field.TypeJSON, value)
	}
	if _u.mutation.BmiCleared() {
		_spec.ClearField(record.FieldBmi, field.TypeJSON)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(record.FieldMedicalHistory, field.TypeJSON, value)
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(record.FieldMedicalHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(record.FieldFamilyHistory, field.TypeJSON, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(record.FieldFamilyHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialHistory(); ok {
		_spec.SetField(record.FieldSocialHistory, field.TypeJSON, value)
	}
	if _u.mutation.SocialHistoryCleared() {
		_spec.ClearField(record.FieldSocialHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(record.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(record.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(record.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(record.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vitals(); ok {
		_spec.SetField(record.FieldVitals, field.TypeJSON, value)
	}
	if _u.mutation.VitalsCleared() {
		_spec.ClearField(record.FieldVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestsOrdered(); ok {
		_spec.SetField(record.FieldTestsOrdered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestsOrdered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldTestsOrdered, value)
		})
	}
	if _u.mutation.TestsOrderedCleared() {
		_spec.ClearField(record.FieldTestsOrdered, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(record.FieldTestResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldTestResults, value)
		})
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(record.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.BillingInformation(); ok {
		_spec.SetField(record.FieldBillingInformation, field.TypeJSON, value)
	}
	if _u.mutation.BillingInformationCleared() {
		_spec.ClearField(record.FieldBillingInformation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(record.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(record.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordUpdateOne is the builder for updating a single Record entity.
type RecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *RecordUpdateOne) SetPatientID(v uuid.UUID) *RecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillablePatientID(v *uuid.UUID) *RecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *RecordUpdateOne) SetProviderID(v uuid.UUID) *RecordUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableProviderID(v *uuid.UUID) *RecordUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// ClearProviderID clears the value of the "provider_id" field.
func (_u *RecordUpdateOne) ClearProviderID() *RecordUpdateOne {
	_u.mutation.ClearProviderID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *RecordUpdateOne) SetSourceFilename(v string) *RecordUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableSourceFilename(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *RecordUpdateOne) SetSourceFormat(v string) *RecordUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableSourceFormat(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetSourceDocument sets the "source_document" field.
func (_u *RecordUpdateOne) SetSourceDocument(v []byte) *RecordUpdateOne {
	_u.mutation.SetSourceDocument(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordUpdateOne) SetStatus(v string) *RecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableStatus(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordUpdateOne) SetErrorMessage(v string) *RecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableErrorMessage(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordUpdateOne) ClearErrorMessage() *RecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWeight sets the "weight" field.
func (_u *RecordUpdateOne) SetWeight(v *entity.Measurement) *RecordUpdateOne {
	_u.mutation.SetWeight(v)
	return _u
}

// ClearWeight clears the value of the "weight" field.
func (_u *RecordUpdateOne) ClearWeight() *RecordUpdateOne {
	_u.mutation.ClearWeight()
	return _u
}

// SetHeight sets the "height" field.
func (_u *RecordUpdateOne) SetHeight(v *entity.Measurement) *RecordUpdateOne {
	_u.mutation.SetHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *RecordUpdateOne) ClearHeight() *RecordUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *RecordUpdateOne) SetBmi(v *entity.Measurement) *RecordUpdateOne {
	_u.mutation.SetBmi(v)
	return _u
}

// ClearBmi clears the value of the "bmi" field.
func (_u *RecordUpdateOne) ClearBmi() *RecordUpdateOne {
	_u.mutation.ClearBmi()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *RecordUpdateOne) SetMedicalHistory(v *entity.MedicalHistory) *RecordUpdateOne {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *RecordUpdateOne) ClearMedicalHistory() *RecordUpdateOne {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *RecordUpdateOne) SetFamilyHistory(v *entity.FamilyHistory) *RecordUpdateOne {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *RecordUpdateOne) ClearFamilyHistory() *RecordUpdateOne {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetSocialHistory sets the "social_history" field.
func (_u *RecordUpdateOne) SetSocialHistory(v *entity.SocialHistory) *RecordUpdateOne {
	_u.mutation.SetSocialHistory(v)
	return _u
}

// ClearSocialHistory clears the value of the "social_history" field.
func (_u *RecordUpdateOne) ClearSocialHistory() *RecordUpdateOne {
	_u.mutation.ClearSocialHistory()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *RecordUpdateOne) SetAllergies(v []entity.Allergy) *RecordUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *RecordUpdateOne) AppendAllergies(v []entity.Allergy) *RecordUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *RecordUpdateOne) ClearAllergies() *RecordUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *RecordUpdateOne) SetMedications(v []entity.Medication) *RecordUpdateOne {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *RecordUpdateOne) AppendMedications(v []entity.Medication) *RecordUpdateOne {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *RecordUpdateOne) ClearMedications() *RecordUpdateOne {
	_u.mutation.ClearMedications()
	return _u
}

// SetVitals sets the "vitals" field.
func (_u *RecordUpdateOne) SetVitals(v *entity.Vitals) *RecordUpdateOne {
	_u.mutation.SetVitals(v)
	return _u
}

// ClearVitals clears the value of the "vitals" field.
func (_u *RecordUpdateOne) ClearVitals() *RecordUpdateOne {
	_u.mutation.ClearVitals()
	return _u
}

// SetTestsOrdered sets the "tests_ordered" field.
func (_u *RecordUpdateOne) SetTestsOrdered(v []entity.TestOrder) *RecordUpdateOne {
	_u.mutation.SetTestsOrdered(v)
	return _u
}

// AppendTestsOrdered appends value to the "tests_ordered" field.
func (_u *RecordUpdateOne) AppendTestsOrdered(v []entity.TestOrder) *RecordUpdateOne {
	_u.mutation.AppendTestsOrdered(v)
	return _u
}

// ClearTestsOrdered clears the value of the "tests_ordered" field.
func (_u *RecordUpdateOne) ClearTestsOrdered() *RecordUpdateOne {
	_u.mutation.ClearTestsOrdered()
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *RecordUpdateOne) SetTestResults(v []entity.TestResult) *RecordUpdateOne {
	_u.mutation.SetTestResults(v)
	return _u
}

// AppendTestResults appends value to the "test_results" field.
func (_u *RecordUpdateOne) AppendTestResults(v []entity.TestResult) *RecordUpdateOne {
	_u.mutation.AppendTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *RecordUpdateOne) ClearTestResults() *RecordUpdateOne {
	_u.mutation.ClearTestResults()
	return _u
}

// SetBillingInformation sets the "billing_information" field.
func (_u *RecordUpdateOne) SetBillingInformation(v *entity.BillingInformation) *RecordUpdateOne {
	_u.mutation.SetBillingInformation(v)
	return _u
}

// ClearBillingInformation clears the value of the "billing_information" field.
func (_u *RecordUpdateOne) ClearBillingInformation() *RecordUpdateOne {
	_u.mutation.ClearBillingInformation()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RecordUpdateOne) SetNotes(v string) *RecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableNotes(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *RecordUpdateOne) ClearNotes() *RecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *RecordUpdateOne) SetPatient(v *Patient) *RecordUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetProvider sets the "provider" edge to the Provider entity.
func (_u *RecordUpdateOne) SetProvider(v *Provider) *RecordUpdateOne {
	return _u.SetProviderID(v.ID)
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdateOne) Mutation() *RecordMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *RecordUpdateOne) ClearPatient() *RecordUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearProvider clears the "provider" edge to the Provider entity.
func (_u *RecordUpdateOne) ClearProvider() *RecordUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdateOne) Where(ps ...predicate.Record) *RecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordUpdateOne) Select(field string, fields ...string) *RecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Record entity.
func (_u *RecordUpdateOne) Save(ctx context.Context) (*Record, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdateOne) SaveX(ctx context.Context) *Record {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := record.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Record.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := record.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Record.source_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := record.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Record.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Record.patient"`)
	}
	return nil
}

func (_u *RecordUpdateOne) sqlSave(ctx context.Context) (_node *Record, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Record.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, record.FieldID)
		for _, f := range fields {
			if !record.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != record.FieldID {
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
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(record.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(record.FieldSourceFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceDocument(); ok {
		_spec.SetField(record.FieldSourceDocument, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(record.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(record.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(record.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(record.FieldWeight, field.TypeJSON, value)
	}
	if _u.mutation.WeightCleared() {
		_spec.ClearField(record.FieldWeight, field.TypeJSON)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(record.FieldHeight, field.TypeJSON, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(record.FieldHeight, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(record.FieldBmi, field.TypeJSON, value)
	}
	if _u.mutation.BmiCleared() {
		_spec.ClearField(record.FieldBmi, field.TypeJSON)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(record.FieldMedicalHistory, field.TypeJSON, value)
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(record.FieldMedicalHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(record.FieldFamilyHistory, field.TypeJSON, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(record.FieldFamilyHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.SocialHistory(); ok {
		_spec.SetField(record.FieldSocialHistory, field.TypeJSON, value)
	}
	if _u.mutation.SocialHistoryCleared() {
		_spec.ClearField(record.FieldSocialHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(record.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(record.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(record.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(record.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vitals(); ok {
		_spec.SetField(record.FieldVitals, field.TypeJSON, value)
	}
	if _u.mutation.VitalsCleared() {
		_spec.ClearField(record.FieldVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestsOrdered(); ok {
		_spec.SetField(record.FieldTestsOrdered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestsOrdered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldTestsOrdered, value)
		})
	}
	if _u.mutation.TestsOrderedCleared() {
		_spec.ClearField(record.FieldTestsOrdered, field.TypeJSON)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(record.FieldTestResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, record.FieldTestResults, value)
		})
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(record.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.BillingInformation(); ok {
		_spec.SetField(record.FieldBillingInformation, field.TypeJSON, value)
	}
	if _u.mutation.BillingInformationCleared() {
		_spec.ClearField(record.FieldBillingInformation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(record.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(record.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProviderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProviderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Record{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
