package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	emrpb "github.com/bryankwang/EMR-Processing/gen/proto/emr/v1"
	"github.com/bryankwang/EMR-Processing/internal/billing"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/export"
	"github.com/bryankwang/EMR-Processing/internal/pipeline"
	"github.com/bryankwang/EMR-Processing/internal/repository"
)

type EMRService struct {
	emrpb.UnimplementedEMRServiceServer
	processor  *pipeline.Processor
	recordRepo repository.RecordRepository
	exporter   *export.Service
	logger     *slog.Logger
}

func NewEMRService(processor *pipeline.Processor, recordRepo repository.RecordRepository, exporter *export.Service, logger *slog.Logger) *EMRService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EMRService{
		processor:  processor,
		recordRepo: recordRepo,
		exporter:   exporter,
		logger:     logger,
	}
}

func (s *EMRService) ProcessDocument(ctx context.Context, req *emrpb.ProcessDocumentRequest) (*emrpb.ProcessDocumentResponse, error) {
	patientID, err := parseUUIDField(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}
	var providerID *uuid.UUID
	if p := strings.TrimSpace(req.GetProviderId()); p != "" {
		id, err := parseUUIDField(p, "provider_id")
		if err != nil {
			return nil, err
		}
		providerID = &id
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	s.logger.Info("processing document",
		"request_id", common.RequestIDFromContext(ctx),
		"patient_id", patientID,
		"filename", req.GetFilename(),
		"bytes", len(req.GetContent()),
	)

	rec, err := s.processor.Process(ctx, pipeline.Request{
		PatientID:  patientID,
		ProviderID: providerID,
		Filename:   req.GetFilename(),
		Content:    req.GetContent(),
	})
	if err != nil {
		s.logger.Error("document processing failed",
			"patient_id", patientID, "kind", common.KindOf(err), "error", err)
		return nil, common.ToStatus(err)
	}

	return &emrpb.ProcessDocumentResponse{
		RecordId:     rec.ID.String(),
		Status:       string(rec.Status),
		CostEstimate: billing.Total(rec),
	}, nil
}

func (s *EMRService) GetBillingSummary(ctx context.Context, req *emrpb.GetBillingSummaryRequest) (*emrpb.GetBillingSummaryResponse, error) {
	patientID, err := parseUUIDField(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}

	rec, err := s.recordRepo.GetLatest(ctx, patientID)
	if err != nil {
		s.logger.Error("failed to load latest record", "patient_id", patientID, "error", err)
		return nil, status.Error(codes.Internal, "load latest record")
	}
	if rec == nil {
		return nil, status.Error(codes.NotFound, "no completed records for patient")
	}

	resp := &emrpb.GetBillingSummaryResponse{
		RecordId:        rec.ID.String(),
		StoredTotal:     billing.Total(rec),
		RecomputedTotal: billing.RecomputeTotal(rec),
	}
	if bi := rec.Sections.BillingInformation; bi != nil {
		for _, dc := range bi.DiagnosisCodes {
			resp.DiagnosisCodes = append(resp.DiagnosisCodes, &emrpb.DiagnosisCode{
				Code:        dc.Code,
				Description: dc.Description,
				Type:        dc.Type,
			})
		}
	}
	for _, item := range billing.Itemize(rec) {
		resp.Items = append(resp.Items, &emrpb.BillingLineItem{
			Code:        item.Code,
			Description: item.Description,
			Cost:        item.Cost,
		})
	}
	return resp, nil
}

func (s *EMRService) ListRecords(ctx context.Context, req *emrpb.ListRecordsRequest) (*emrpb.ListRecordsResponse, error) {
	patientID, err := parseUUIDField(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}

	recs, err := s.recordRepo.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("failed to list records", "patient_id", patientID, "error", err)
		return nil, status.Error(codes.Internal, "list records")
	}

	out := make([]*emrpb.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBRecord(r))
	}
	return &emrpb.ListRecordsResponse{Records: out}, nil
}

func (s *EMRService) ExportBilling(ctx context.Context, req *emrpb.ExportBillingRequest) (*emrpb.ExportBillingResponse, error) {
	patientID, err := parseUUIDField(req.GetPatientId(), "patient_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportBillingXLSX(ctx, patientID)
	if err != nil {
		s.logger.Error("billing export failed", "patient_id", patientID, "error", err)
		return nil, common.ToStatus(err)
	}
	return &emrpb.ExportBillingResponse{Xlsx: xlsx}, nil
}

func toPBRecord(r *entity.Record) *emrpb.Record {
	pb := &emrpb.Record{
		Id:             r.ID.String(),
		PatientId:      r.PatientID.String(),
		SourceFilename: r.SourceFilename,
		SourceFormat:   string(r.SourceFormat),
		Status:         string(r.Status),
		CostEstimate:   billing.Total(r),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ProviderID != nil {
		pb.ProviderId = r.ProviderID.String()
	}
	if r.ErrorMessage != nil {
		pb.ErrorMessage = *r.ErrorMessage
	}
	return pb
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
