package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
)

var _ LatestRecordSource = (*MockLatestRecordSource)(nil)

type MockLatestRecordSource struct {
	GetLatestFunc func(ctx context.Context, patientID uuid.UUID) (*entity.Record, error)
}

func (m *MockLatestRecordSource) GetLatest(ctx context.Context, patientID uuid.UUID) (*entity.Record, error) {
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc(ctx, patientID)
	}
	return nil, errors.New("GetLatestFunc not implemented in mock")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completedRecord(patientID uuid.UUID) *entity.Record {
	return &entity.Record{
		ID:             uuid.New(),
		PatientID:      patientID,
		SourceFilename: "visit.pdf",
		SourceFormat:   constants.PDF,
		Status:         constants.RecordStatusCompleted,
		CreatedAt:      time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		Sections: entity.RecordSections{
			BillingInformation: &entity.BillingInformation{
				DiagnosisCodes: []entity.DiagnosisCode{
					{Code: "I10", Description: "Essential hypertension", Type: "primary"},
				},
				ProcedureCodes: []entity.ProcedureCode{
					{ProcedureCode: "99213", Description: "Office visit", EstimatedCost: "120.50"},
					{ProcedureCode: "85025", Description: "CBC", EstimatedCost: "30.00"},
				},
				TotalEstimate: "150.50",
			},
		},
	}
}

func TestExportBillingXLSX(t *testing.T) {
	patientID := uuid.New()
	rec := completedRecord(patientID)
	svc := NewService(&MockLatestRecordSource{
		GetLatestFunc: func(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
			assert.Equal(t, patientID, id)
			return rec, nil
		},
	}, discardLogger())

	data, err := svc.ExportBillingXLSX(context.Background(), patientID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Billing", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Patient ID", cell("A1"))
	assert.Equal(t, patientID.String(), cell("B1"))
	assert.Equal(t, rec.ID.String(), cell("B2"))
	assert.Equal(t, "2024-03-05T10:30:00Z", cell("B3"))

	assert.Equal(t, "Diagnosis Codes", cell("A5"))
	assert.Equal(t, "I10", cell("A7"))
	assert.Equal(t, "primary", cell("C7"))

	assert.Equal(t, "Procedure Codes", cell("A9"))
	assert.Equal(t, "99213", cell("A11"))
	assert.Equal(t, "120.50", cell("C11"))
	assert.Equal(t, "85025", cell("A12"))
	assert.Equal(t, "30.00", cell("C12"))

	assert.Equal(t, "Stored Total (USD)", cell("A14"))
	assert.Equal(t, "150.50", cell("B14"))
	assert.Equal(t, "Recomputed Total (USD)", cell("A15"))
	assert.Equal(t, "150.50", cell("B15"))
}

func TestExportBillingXLSXNoBilling(t *testing.T) {
	patientID := uuid.New()
	rec := completedRecord(patientID)
	rec.Sections.BillingInformation = nil
	svc := NewService(&MockLatestRecordSource{
		GetLatestFunc: func(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
			return rec, nil
		},
	}, discardLogger())

	data, err := svc.ExportBillingXLSX(context.Background(), patientID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	stored, err := f.GetCellValue("Billing", "B11")
	require.NoError(t, err)
	assert.Equal(t, "0.00", stored)
	recomputed, err := f.GetCellValue("Billing", "B12")
	require.NoError(t, err)
	assert.Equal(t, "0.00", recomputed)
}

func TestExportBillingXLSXNoRecords(t *testing.T) {
	svc := NewService(&MockLatestRecordSource{
		GetLatestFunc: func(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
			return nil, nil
		},
	}, discardLogger())

	data, err := svc.ExportBillingXLSX(context.Background(), uuid.New())
	assert.Nil(t, data)
	assert.True(t, common.IsKind(err, common.KindPatientNotFound))
}

func TestExportBillingXLSXStoreError(t *testing.T) {
	svc := NewService(&MockLatestRecordSource{
		GetLatestFunc: func(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
			return nil, errors.New("connection reset")
		},
	}, discardLogger())

	_, err := svc.ExportBillingXLSX(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "query latest record")
}
