// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/gen/ent/provider"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/google/uuid"
)

// Record is the model entity for the Record schema.
type Record struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// ProviderID holds the value of the "provider_id" field.
	ProviderID *uuid.UUID `json:"provider_id,omitempty"`
	// SourceFilename holds the value of the "source_filename" field.
	SourceFilename string `json:"source_filename,omitempty"`
	// SourceFormat holds the value of the "source_format" field.
	SourceFormat string `json:"source_format,omitempty"`
	// SourceDocument holds the value of the "source_document" field.
	SourceDocument []byte `json:"source_document,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight *entity.Measurement `json:"weight,omitempty"`
	// Height holds the value of the "height" field.
	Height *entity.Measurement `json:"height,omitempty"`
	// Bmi holds the value of the "bmi" field.
	Bmi *entity.Measurement `json:"bmi,omitempty"`
	// MedicalHistory holds the value of the "medical_history" field.
	MedicalHistory *entity.MedicalHistory `json:"medical_history,omitempty"`
	// FamilyHistory holds the value of the "family_history" field.
	FamilyHistory *entity.FamilyHistory `json:"family_history,omitempty"`
	// SocialHistory holds the value of the "social_history" field.
	SocialHistory *entity.SocialHistory `json:"social_history,omitempty"`
	// Allergies holds the value of the "allergies" field.
	Allergies []entity.Allergy `json:"allergies,omitempty"`
	// Medications holds the value of the "medications" field.
	Medications []entity.Medication `json:"medications,omitempty"`
	// Vitals holds the value of the "vitals" field.
	Vitals *entity.Vitals `json:"vitals,omitempty"`
	// TestsOrdered holds the value of the "tests_ordered" field.
	TestsOrdered []entity.TestOrder `json:"tests_ordered,omitempty"`
	// TestResults holds the value of the "test_results" field.
	TestResults []entity.TestResult `json:"test_results,omitempty"`
	// BillingInformation holds the value of the "billing_information" field.
	BillingInformation *entity.BillingInformation `json:"billing_information,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordQuery when eager-loading is set.
	Edges        RecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordEdges holds the relations/edges for other nodes in the graph.
type RecordEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Provider holds the value of the provider edge.
	Provider *Provider `json:"provider,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ProviderOrErr returns the Provider value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordEdges) ProviderOrErr() (*Provider, error) {
	if e.Provider != nil {
		return e.Provider, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: provider.Label}
	}
	return nil, &NotLoadedError{edge: "provider"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Record) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case record.FieldProviderID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case record.FieldSourceDocument, record.FieldWeight, record.FieldHeight, record.FieldBmi, record.FieldMedicalHistory, record.FieldFamilyHistory, record.FieldSocialHistory, record.FieldAllergies, record.FieldMedications, record.FieldVitals, record.FieldTestsOrdered, record.FieldTestResults, record.FieldBillingInformation:
			values[i] = new([]byte)
		case record.FieldSourceFilename, record.FieldSourceFormat, record.FieldStatus, record.FieldErrorMessage, record.FieldNotes:
			values[i] = new(sql.NullString)
		case record.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case record.FieldID, record.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Record fields.
func (_m *Record) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case record.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case record.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case record.FieldProviderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value.Valid {
				_m.ProviderID = new(uuid.UUID)
				*_m.ProviderID = *value.S.(*uuid.UUID)
			}
		case record.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case record.FieldSourceFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_format", values[i])
			} else if value.Valid {
				_m.SourceFormat = value.String
			}
		case record.FieldSourceDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_document", values[i])
			} else if value != nil {
				_m.SourceDocument = *value
			}
		case record.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case record.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case record.FieldWeight:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weight); err != nil {
					return fmt.Errorf("unmarshal field weight: %w", err)
				}
			}
		case record.FieldHeight:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Height); err != nil {
					return fmt.Errorf("unmarshal field height: %w", err)
				}
			}
		case record.FieldBmi:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bmi", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bmi); err != nil {
					return fmt.Errorf("unmarshal field bmi: %w", err)
				}
			}
		case record.FieldMedicalHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medical_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MedicalHistory); err != nil {
					return fmt.Errorf("unmarshal field medical_history: %w", err)
				}
			}
		case record.FieldFamilyHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field family_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FamilyHistory); err != nil {
					return fmt.Errorf("unmarshal field family_history: %w", err)
				}
			}
		case record.FieldSocialHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field social_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SocialHistory); err != nil {
					return fmt.Errorf("unmarshal field social_history: %w", err)
				}
			}
		case record.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case record.FieldMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Medications); err != nil {
					return fmt.Errorf("unmarshal field medications: %w", err)
				}
			}
		case record.FieldVitals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vitals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vitals); err != nil {
					return fmt.Errorf("unmarshal field vitals: %w", err)
				}
			}
		case record.FieldTestsOrdered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tests_ordered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestsOrdered); err != nil {
					return fmt.Errorf("unmarshal field tests_ordered: %w", err)
				}
			}
		case record.FieldTestResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestResults); err != nil {
					return fmt.Errorf("unmarshal field test_results: %w", err)
				}
			}
		case record.FieldBillingInformation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field billing_information", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BillingInformation); err != nil {
					return fmt.Errorf("unmarshal field billing_information: %w", err)
				}
			}
		case record.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case record.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Record.
// This includes values selected through modifiers, order, etc.
func (_m *Record) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Record entity.
func (_m *Record) QueryPatient() *PatientQuery {
	return NewRecordClient(_m.config).QueryPatient(_m)
}

// QueryProvider queries the "provider" edge of the Record entity.
func (_m *Record) QueryProvider() *ProviderQuery {
	return NewRecordClient(_m.config).QueryProvider(_m)
}

// Update returns a builder for updating this Record.
// Note that you need to call Record.Unwrap() before calling this method if this Record
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Record) Update() *RecordUpdateOne {
	return NewRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Record entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Record) Unwrap() *Record {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Record is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Record) String() string {
	var builder strings.Builder
	builder.WriteString("Record(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.ProviderID; v != nil {
		builder.WriteString("provider_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_filename=")
	builder.WriteString(_m.SourceFilename)
	builder.WriteString(", ")
	builder.WriteString("source_format=")
	builder.WriteString(_m.SourceFormat)
	builder.WriteString(", ")
	builder.WriteString("source_document=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceDocument))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("bmi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bmi))
	builder.WriteString(", ")
	builder.WriteString("medical_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicalHistory))
	builder.WriteString(", ")
	builder.WriteString("family_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.FamilyHistory))
	builder.WriteString(", ")
	builder.WriteString("social_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.SocialHistory))
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	builder.WriteString("medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Medications))
	builder.WriteString(", ")
	builder.WriteString("vitals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vitals))
	builder.WriteString(", ")
	builder.WriteString("tests_ordered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestsOrdered))
	builder.WriteString(", ")
	builder.WriteString("test_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestResults))
	builder.WriteString(", ")
	builder.WriteString("billing_information=")
	builder.WriteString(fmt.Sprintf("%v", _m.BillingInformation))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Records is a parsable slice of Record.
type Records []*Record
