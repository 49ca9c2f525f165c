package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/gen/ent"
	"github.com/bryankwang/EMR-Processing/gen/ent/patient"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/pipeline"
)

type PatientRepository interface {
	Create(ctx context.Context, p *entity.Patient) (*entity.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
}

// The repository satisfies the pipeline's patient collaborator contract.
var _ pipeline.PatientDirectory = (PatientRepository)(nil)

type patientRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPatientRepository(client *ent.Client, logger *slog.Logger) PatientRepository {
	return &patientRepository{client: client, logger: logger}
}

func (r *patientRepository) Create(ctx context.Context, p *entity.Patient) (*entity.Patient, error) {
	row, err := r.client.Patient.Create().
		SetFirstName(p.FirstName).
		SetLastName(p.LastName).
		SetDateOfBirth(p.DateOfBirth).
		SetNillableAddress(p.Address).
		SetNillablePhoneNumber(p.PhoneNumber).
		SetNillableEmergencyContact(p.EmergencyContact).
		SetNillableEmergencyContactPhone(p.EmergencyContactPhone).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create patient", "error", err)
		return nil, err
	}
	return toPatient(row), nil
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	row, err := r.client.Patient.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.E(common.KindPatientNotFound, "patient "+id.String(), err)
		}
		r.logger.Error("failed to get patient", "patient_id", id, "error", err)
		return nil, err
	}
	return toPatient(row), nil
}

func (r *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	rows, err := r.client.Patient.Query().
		Order(patient.ByLastName(), patient.ByFirstName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list patients", "error", err)
		return nil, err
	}
	out := make([]*entity.Patient, len(rows))
	for i, row := range rows {
		out[i] = toPatient(row)
	}
	return out, nil
}

func toPatient(row *ent.Patient) *entity.Patient {
	return &entity.Patient{
		ID:                    row.ID,
		FirstName:             row.FirstName,
		LastName:              row.LastName,
		DateOfBirth:           row.DateOfBirth,
		Address:               row.Address,
		PhoneNumber:           row.PhoneNumber,
		EmergencyContact:      row.EmergencyContact,
		EmergencyContactPhone: row.EmergencyContactPhone,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}
