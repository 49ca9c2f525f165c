// Code generated by ent, DO NOT EDIT.

package record

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bryankwang/EMR-Processing/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldPatientID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldProviderID, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFormat applies equality check predicate on the "source_format" field. It's identical to SourceFormatEQ.
func SourceFormat(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceFormat, v))
}

// SourceDocument applies equality check predicate on the "source_document" field. It's identical to SourceDocumentEQ.
func SourceDocument(v []byte) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceDocument, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldErrorMessage, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldPatientID, vs...))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDIsNil applies the IsNil predicate on the "provider_id" field.
func ProviderIDIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldProviderID))
}

// ProviderIDNotNil applies the NotNil predicate on the "provider_id" field.
func ProviderIDNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldProviderID))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldSourceFilename, v))
}

// SourceFormatEQ applies the EQ predicate on the "source_format" field.
func SourceFormatEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceFormat, v))
}

// SourceFormatNEQ applies the NEQ predicate on the "source_format" field.
func SourceFormatNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldSourceFormat, v))
}

// SourceFormatIn applies the In predicate on the "source_format" field.
func SourceFormatIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldSourceFormat, vs...))
}

// SourceFormatNotIn applies the NotIn predicate on the "source_format" field.
func SourceFormatNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldSourceFormat, vs...))
}

// SourceFormatGT applies the GT predicate on the "source_format" field.
func SourceFormatGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldSourceFormat, v))
}

// SourceFormatGTE applies the GTE predicate on the "source_format" field.
func SourceFormatGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldSourceFormat, v))
}

// SourceFormatLT applies the LT predicate on the "source_format" field.
func SourceFormatLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldSourceFormat, v))
}

// SourceFormatLTE applies the LTE predicate on the "source_format" field.
func SourceFormatLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldSourceFormat, v))
}

// SourceFormatContains applies the Contains predicate on the "source_format" field.
func SourceFormatContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldSourceFormat, v))
}

// SourceFormatHasPrefix applies the HasPrefix predicate on the "source_format" field.
func SourceFormatHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldSourceFormat, v))
}

// SourceFormatHasSuffix applies the HasSuffix predicate on the "source_format" field.
func SourceFormatHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldSourceFormat, v))
}

// SourceFormatEqualFold applies the EqualFold predicate on the "source_format" field.
func SourceFormatEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldSourceFormat, v))
}

// SourceFormatContainsFold applies the ContainsFold predicate on the "source_format" field.
func SourceFormatContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldSourceFormat, v))
}

// SourceDocumentEQ applies the EQ predicate on the "source_document" field.
func SourceDocumentEQ(v []byte) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldSourceDocument, v))
}

// SourceDocumentNEQ applies the NEQ predicate on the "source_document" field.
func SourceDocumentNEQ(v []byte) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldSourceDocument, v))
}

// SourceDocumentIn applies the In predicate on the "source_document" field.
func SourceDocumentIn(vs ...[]byte) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldSourceDocument, vs...))
}

// SourceDocumentNotIn applies the NotIn predicate on the "source_document" field.
func SourceDocumentNotIn(vs ...[]byte) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldSourceDocument, vs...))
}

// SourceDocumentGT applies the GT predicate on the "source_document" field.
func SourceDocumentGT(v []byte) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldSourceDocument, v))
}

// SourceDocumentGTE applies the GTE predicate on the "source_document" field.
func SourceDocumentGTE(v []byte) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldSourceDocument, v))
}

// SourceDocumentLT applies the LT predicate on the "source_document" field.
func SourceDocumentLT(v []byte) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldSourceDocument, v))
}

// SourceDocumentLTE applies the LTE predicate on the "source_document" field.
func SourceDocumentLTE(v []byte) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldSourceDocument, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldErrorMessage, v))
}

// WeightIsNil applies the IsNil predicate on the "weight" field.
func WeightIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldWeight))
}

// WeightNotNil applies the NotNil predicate on the "weight" field.
func WeightNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldWeight))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldHeight))
}

// BmiIsNil applies the IsNil predicate on the "bmi" field.
func BmiIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldBmi))
}

// BmiNotNil applies the NotNil predicate on the "bmi" field.
func BmiNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldBmi))
}

// MedicalHistoryIsNil applies the IsNil predicate on the "medical_history" field.
func MedicalHistoryIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldMedicalHistory))
}

// MedicalHistoryNotNil applies the NotNil predicate on the "medical_history" field.
func MedicalHistoryNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldMedicalHistory))
}

// FamilyHistoryIsNil applies the IsNil predicate on the "family_history" field.
func FamilyHistoryIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldFamilyHistory))
}

// FamilyHistoryNotNil applies the NotNil predicate on the "family_history" field.
func FamilyHistoryNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldFamilyHistory))
}

// SocialHistoryIsNil applies the IsNil predicate on the "social_history" field.
func SocialHistoryIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldSocialHistory))
}

// SocialHistoryNotNil applies the NotNil predicate on the "social_history" field.
func SocialHistoryNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldSocialHistory))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldAllergies))
}

// MedicationsIsNil applies the IsNil predicate on the "medications" field.
func MedicationsIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldMedications))
}

// MedicationsNotNil applies the NotNil predicate on the "medications" field.
func MedicationsNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldMedications))
}

// VitalsIsNil applies the IsNil predicate on the "vitals" field.
func VitalsIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldVitals))
}

// VitalsNotNil applies the NotNil predicate on the "vitals" field.
func VitalsNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldVitals))
}

// TestsOrderedIsNil applies the IsNil predicate on the "tests_ordered" field.
func TestsOrderedIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldTestsOrdered))
}

// TestsOrderedNotNil applies the NotNil predicate on the "tests_ordered" field.
func TestsOrderedNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldTestsOrdered))
}

// TestResultsIsNil applies the IsNil predicate on the "test_results" field.
func TestResultsIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldTestResults))
}

// TestResultsNotNil applies the NotNil predicate on the "test_results" field.
func TestResultsNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldTestResults))
}

// BillingInformationIsNil applies the IsNil predicate on the "billing_information" field.
func BillingInformationIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldBillingInformation))
}

// BillingInformationNotNil applies the NotNil predicate on the "billing_information" field.
func BillingInformationNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldBillingInformation))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Record {
	return predicate.Record(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Record {
	return predicate.Record(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Record {
	return predicate.Record(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Record {
	return predicate.Record(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProvider applies the HasEdge predicate on the "provider" edge.
func HasProvider() predicate.Record {
	return predicate.Record(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProviderTable, ProviderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProviderWith applies the HasEdge predicate on the "provider" edge with a given conditions (other predicates).
func HasProviderWith(preds ...predicate.Provider) predicate.Record {
	return predicate.Record(func(s *sql.Selector) {
		step := newProviderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Record) predicate.Record {
	return predicate.Record(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Record) predicate.Record {
	return predicate.Record(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Record) predicate.Record {
	return predicate.Record(sql.NotPredicates(p))
}
