package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	emrpb "github.com/bryankwang/EMR-Processing/gen/proto/emr/v1"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/repository"
)

type PatientsService struct {
	emrpb.UnimplementedPatientsServiceServer
	patientRepo repository.PatientRepository
	logger      *slog.Logger
}

func NewPatientsService(patientRepo repository.PatientRepository, logger *slog.Logger) *PatientsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatientsService{patientRepo: patientRepo, logger: logger}
}

func (s *PatientsService) CreatePatient(ctx context.Context, req *emrpb.CreatePatientRequest) (*emrpb.CreatePatientResponse, error) {
	if strings.TrimSpace(req.GetFirstName()) == "" || strings.TrimSpace(req.GetLastName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "first_name and last_name are required")
	}
	dob, err := time.Parse("2006-01-02", strings.TrimSpace(req.GetDateOfBirth()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date_of_birth invalid (YYYY-MM-DD): %v", err)
	}

	p := &entity.Patient{
		FirstName:             req.GetFirstName(),
		LastName:              req.GetLastName(),
		DateOfBirth:           dob,
		Address:               optional(req.GetAddress()),
		PhoneNumber:           optional(req.GetPhoneNumber()),
		EmergencyContact:      optional(req.GetEmergencyContact()),
		EmergencyContactPhone: optional(req.GetEmergencyContactPhone()),
	}
	created, err := s.patientRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error("create patient failed", "error", err)
		return nil, status.Error(codes.Internal, "create patient failed")
	}
	return &emrpb.CreatePatientResponse{Patient: toPBPatient(created)}, nil
}

func (s *PatientsService) GetPatient(ctx context.Context, req *emrpb.GetPatientRequest) (*emrpb.GetPatientResponse, error) {
	id, err := parseUUIDField(req.GetId(), "id")
	if err != nil {
		return nil, err
	}
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if common.IsKind(err, common.KindPatientNotFound) {
			return nil, status.Error(codes.NotFound, "patient not found")
		}
		s.logger.Error("get patient failed", "patient_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get patient failed")
	}
	return &emrpb.GetPatientResponse{Patient: toPBPatient(p)}, nil
}

func (s *PatientsService) ListPatients(ctx context.Context, _ *emrpb.ListPatientsRequest) (*emrpb.ListPatientsResponse, error) {
	ps, err := s.patientRepo.List(ctx)
	if err != nil {
		s.logger.Error("list patients failed", "error", err)
		return nil, status.Error(codes.Internal, "list patients failed")
	}
	out := make([]*emrpb.Patient, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPBPatient(p))
	}
	return &emrpb.ListPatientsResponse{Patients: out}, nil
}

func toPBPatient(p *entity.Patient) *emrpb.Patient {
	return &emrpb.Patient{
		Id:                    p.ID.String(),
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		DateOfBirth:           p.DateOfBirth.Format("2006-01-02"),
		Address:               strOrEmpty(p.Address),
		PhoneNumber:           strOrEmpty(p.PhoneNumber),
		EmergencyContact:      strOrEmpty(p.EmergencyContact),
		EmergencyContactPhone: strOrEmpty(p.EmergencyContactPhone),
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
