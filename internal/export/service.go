package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/bryankwang/EMR-Processing/internal/billing"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

// LatestRecordSource is the read-side record lookup the exporter needs.
type LatestRecordSource interface {
	GetLatest(ctx context.Context, patientID uuid.UUID) (*entity.Record, error)
}

// Service produces XLSX billing summaries from persisted records.
type Service struct {
	records LatestRecordSource
	logger  *slog.Logger
}

func NewService(records LatestRecordSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// ExportBillingXLSX returns an XLSX workbook (as bytes) summarizing the
// billing block of the patient's latest completed record: diagnosis codes,
// itemized procedure charges, and both the stored and recomputed totals.
func (s *Service) ExportBillingXLSX(ctx context.Context, patientID uuid.UUID) ([]byte, error) {
	start := time.Now()

	rec, err := s.records.GetLatest(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("query latest record: %w", err)
	}
	if rec == nil {
		return nil, common.Ef(common.KindPatientNotFound, "no completed records for patient %s", patientID)
	}

	f := excelize.NewFile()
	const sheet = "Billing"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet if distinct
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	row := 1
	setRow := func(values ...any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	setRow("Patient ID", rec.PatientID.String())
	setRow("Record ID", rec.ID.String())
	setRow("Record Date", rec.CreatedAt.UTC().Format(time.RFC3339))
	row++

	bi := rec.Sections.BillingInformation
	setRow("Diagnosis Codes")
	setRow("Code", "Description", "Type")
	if bi != nil {
		for _, dc := range bi.DiagnosisCodes {
			setRow(dc.Code, dc.Description, dc.Type)
		}
	}
	row++

	setRow("Procedure Codes")
	setRow("Code", "Description", "Estimated Cost (USD)")
	for _, item := range billing.Itemize(rec) {
		setRow(item.Code, item.Description, item.Cost)
	}
	row++

	setRow("Stored Total (USD)", billing.Total(rec))
	setRow("Recomputed Total (USD)", billing.RecomputeTotal(rec))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.billing.ok",
		"patient_id", patientID,
		"record_id", rec.ID,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
