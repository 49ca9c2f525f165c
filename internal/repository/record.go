package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/gen/ent"
	"github.com/bryankwang/EMR-Processing/gen/ent/record"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/pipeline"
)

type RecordRepository interface {
	pipeline.RecordStore
	GetLatest(ctx context.Context, patientID uuid.UUID) (*entity.Record, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Record, error)
}

type recordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(client *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{client: client, logger: logger}
}

// CreateCompleted persists a fully structured record in a single insert.
// The row insert is atomic: concurrent readers never observe a COMPLETED
// record with missing sections.
func (r *recordRepository) CreateCompleted(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID,
	doc entity.SourceDocument, format constants.Format, sections entity.RecordSections) (*entity.Record, error) {

	builder := r.client.Record.Create().
		SetPatientID(patientID).
		SetNillableProviderID(providerID).
		SetSourceFilename(doc.Filename).
		SetSourceFormat(string(format)).
		SetSourceDocument(doc.Content).
		SetStatus(string(constants.RecordStatusCompleted)).
		SetNillableNotes(sections.Notes)

	if sections.Weight != nil {
		builder = builder.SetWeight(sections.Weight)
	}
	if sections.Height != nil {
		builder = builder.SetHeight(sections.Height)
	}
	if sections.BMI != nil {
		builder = builder.SetBmi(sections.BMI)
	}
	if sections.MedicalHistory != nil {
		builder = builder.SetMedicalHistory(sections.MedicalHistory)
	}
	if sections.FamilyHistory != nil {
		builder = builder.SetFamilyHistory(sections.FamilyHistory)
	}
	if sections.SocialHistory != nil {
		builder = builder.SetSocialHistory(sections.SocialHistory)
	}
	if sections.Allergies != nil {
		builder = builder.SetAllergies(sections.Allergies)
	}
	if sections.Medications != nil {
		builder = builder.SetMedications(sections.Medications)
	}
	if sections.Vitals != nil {
		builder = builder.SetVitals(sections.Vitals)
	}
	if sections.TestsOrdered != nil {
		builder = builder.SetTestsOrdered(sections.TestsOrdered)
	}
	if sections.TestResults != nil {
		builder = builder.SetTestResults(sections.TestResults)
	}
	if sections.BillingInformation != nil {
		builder = builder.SetBillingInformation(sections.BillingInformation)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create record", "patient_id", patientID, "error", err)
		return nil, err
	}
	return toRecord(row), nil
}

// CreateError persists an audit row for a failed attempt: raw document and
// error message only, no structured sections.
func (r *recordRepository) CreateError(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID,
	doc entity.SourceDocument, format constants.Format, message string) (*entity.Record, error) {

	row, err := r.client.Record.Create().
		SetPatientID(patientID).
		SetNillableProviderID(providerID).
		SetSourceFilename(doc.Filename).
		SetSourceFormat(string(format)).
		SetSourceDocument(doc.Content).
		SetStatus(string(constants.RecordStatusError)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create error record", "patient_id", patientID, "error", err)
		return nil, err
	}
	return toRecord(row), nil
}

// GetLatest returns the most recent COMPLETED record for the patient, or nil
// when the patient has no completed records.
func (r *recordRepository) GetLatest(ctx context.Context, patientID uuid.UUID) (*entity.Record, error) {
	row, err := r.client.Record.Query().
		Where(
			record.PatientID(patientID),
			record.Status(string(constants.RecordStatusCompleted)),
		).
		Order(record.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get latest record", "patient_id", patientID, "error", err)
		return nil, err
	}
	return toRecord(row), nil
}

func (r *recordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.Record, error) {
	rows, err := r.client.Record.Query().
		Where(record.PatientID(patientID)).
		Order(record.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list records", "patient_id", patientID, "error", err)
		return nil, err
	}
	out := make([]*entity.Record, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

func toRecord(row *ent.Record) *entity.Record {
	return &entity.Record{
		ID:             row.ID,
		PatientID:      row.PatientID,
		ProviderID:     row.ProviderID,
		SourceFilename: row.SourceFilename,
		SourceFormat:   constants.Format(row.SourceFormat),
		Status:         constants.RecordStatus(row.Status),
		ErrorMessage:   row.ErrorMessage,
		Sections: entity.RecordSections{
			Weight:             row.Weight,
			Height:             row.Height,
			BMI:                row.Bmi,
			MedicalHistory:     row.MedicalHistory,
			FamilyHistory:      row.FamilyHistory,
			SocialHistory:      row.SocialHistory,
			Allergies:          row.Allergies,
			Medications:        row.Medications,
			Vitals:             row.Vitals,
			TestsOrdered:       row.TestsOrdered,
			TestResults:        row.TestResults,
			BillingInformation: row.BillingInformation,
			Notes:              row.Notes,
		},
		CreatedAt: row.CreatedAt,
	}
}
