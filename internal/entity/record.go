package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/constants"
)

// SourceDocument is the raw uploaded document tied to a record.
type SourceDocument struct {
	Filename string `json:"filename"`
	Content  []byte `json:"-"`
}

// Record is one document-processing attempt for a patient. A record is either
// fully populated with status COMPLETED, or an ERROR audit row carrying only
// the raw document and the error message.
type Record struct {
	ID             uuid.UUID              `json:"id"`
	PatientID      uuid.UUID              `json:"patient_id"`
	ProviderID     *uuid.UUID             `json:"provider_id,omitempty"`
	SourceFilename string                 `json:"source_filename"`
	SourceFormat   constants.Format       `json:"source_format"`
	Status         constants.RecordStatus `json:"status"`
	ErrorMessage   *string                `json:"error_message,omitempty"`
	Sections       RecordSections         `json:"sections"`
	CreatedAt      time.Time              `json:"created_at"`
}

// RecordSections holds the structured clinical sections of a record. Every
// section is nillable: a nil pointer (or nil slice) means the structuring
// pass could not resolve the section, which is distinct from a present but
// empty value.
type RecordSections struct {
	Weight             *Measurement        `json:"weight"`
	Height             *Measurement        `json:"height"`
	BMI                *Measurement        `json:"bmi"`
	MedicalHistory     *MedicalHistory     `json:"medical_history"`
	FamilyHistory      *FamilyHistory      `json:"family_history"`
	SocialHistory      *SocialHistory      `json:"social_history"`
	Allergies          []Allergy           `json:"allergies"`
	Medications        []Medication        `json:"medications"`
	Vitals             *Vitals             `json:"vitals"`
	TestsOrdered       []TestOrder         `json:"tests_ordered"`
	TestResults        []TestResult        `json:"test_results"`
	BillingInformation *BillingInformation `json:"billing_information"`
	Notes              *string             `json:"notes"`
}

// Measurement is a value+unit pair (weight kg, height cm; BMI is unitless).
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type MedicalHistory struct {
	Conditions    []Condition    `json:"conditions"`
	Surgeries     []Surgery      `json:"surgeries"`
	Immunizations []Immunization `json:"immunizations"`
}

type Condition struct {
	Condition     string `json:"condition"`
	DiagnosisDate string `json:"diagnosis_date,omitempty"` // YYYY-MM-DD
	Status        string `json:"status,omitempty"`
}

type Surgery struct {
	Procedure string `json:"procedure"`
	Date      string `json:"date,omitempty"`
}

type Immunization struct {
	Vaccine string `json:"vaccine"`
	Date    string `json:"date,omitempty"`
}

type FamilyHistory struct {
	Conditions []FamilyCondition `json:"conditions"`
}

type FamilyCondition struct {
	Condition string `json:"condition"`
	Relation  string `json:"relation,omitempty"`
}

type SocialHistory struct {
	SmokingStatus   *string `json:"smoking_status"`
	AlcoholUse      *string `json:"alcohol_use"`
	Exercise        *string `json:"exercise"`
	Occupation      *string `json:"occupation"`
	LivingSituation *string `json:"living_situation"`
}

type Allergy struct {
	Allergen string `json:"allergen"`
	Reaction string `json:"reaction,omitempty"`
	Severity string `json:"severity,omitempty"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
}

// Vitals carries the named vitals the structuring contract recognizes.
// All fields are nillable so an unresolved vital stays distinguishable.
type Vitals struct {
	BloodPressure    *string  `json:"blood_pressure"`
	HeartRate        *int     `json:"heart_rate"`
	Temperature      *float64 `json:"temperature"`
	RespiratoryRate  *int     `json:"respiratory_rate"`
	OxygenSaturation *int     `json:"oxygen_saturation"`
}

type TestOrder struct {
	TestName    string `json:"test_name"`
	Reason      string `json:"reason,omitempty"`
	DateOrdered string `json:"date_ordered,omitempty"`
}

type TestResult struct {
	TestName       string `json:"test_name"`
	Result         string `json:"result"`
	Date           string `json:"date,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
}

// BillingInformation is the billing sub-document of a record. Monetary
// amounts travel as decimal strings (e.g. "120.50") in USD.
type BillingInformation struct {
	DiagnosisCodes []DiagnosisCode `json:"diagnosis_codes"`
	ProcedureCodes []ProcedureCode `json:"procedure_codes"`
	TotalEstimate  string          `json:"total_estimate"`
}

type DiagnosisCode struct {
	Code        string `json:"code"` // ICD-10
	Description string `json:"description,omitempty"`
	Type        string `json:"type"` // primary | secondary
}

type ProcedureCode struct {
	ProcedureCode string `json:"procedure_code"` // CPT
	Description   string `json:"description,omitempty"`
	EstimatedCost string `json:"estimated_cost"` // non-negative decimal, USD
}
