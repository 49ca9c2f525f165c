package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/extract"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// conformantJSON satisfies the full record extraction contract, so a .json
// upload carrying it takes the pre-structured bypass.
const conformantJSON = `{
  "weight": {"value": 70.5, "unit": "kg"},
  "height": {"value": 175, "unit": "cm"},
  "bmi": {"value": 23.0},
  "medical_history": {"conditions": [{"condition": "Hypertension", "diagnosis_date": "2020-01-15", "status": "active"}], "surgeries": [], "immunizations": []},
  "family_history": {"conditions": [{"condition": "Diabetes", "relation": "father"}]},
  "social_history": {"smoking_status": "never", "alcohol_use": null, "exercise": null, "occupation": "accountant", "living_situation": null},
  "allergies": [{"allergen": "penicillin", "reaction": "rash", "severity": "moderate"}],
  "medications": [{"name": "Lisinopril", "dosage": "10mg", "frequency": "daily", "purpose": "blood pressure"}],
  "vitals": {"blood_pressure": "120/80", "heart_rate": 72, "temperature": 36.8, "respiratory_rate": 16, "oxygen_saturation": 98},
  "tests_ordered": [{"test_name": "CBC", "reason": "routine", "date_ordered": "2024-03-01"}],
  "test_results": [{"test_name": "A1C", "result": "5.6%", "date": "2024-03-05", "reference_range": "4.0-5.6"}],
  "billing_information": {"diagnosis_codes": [{"code": "I10", "description": "Essential hypertension", "type": "primary"}], "procedure_codes": [{"procedure_code": "99213", "description": "Office visit", "estimated_cost": "120.50"}, {"procedure_code": "85025", "description": "CBC", "estimated_cost": "30.00"}], "total_estimate": "150.50"},
  "notes": "Follow up in 3 months."
}`

type testDeps struct {
	extractor  *MockContentExtractor
	structurer *MockStructurer
	patients   *MockPatientDirectory
	records    *MockRecordStore
	stagingDir string
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	return &testDeps{
		extractor: &MockContentExtractor{
			ExtractFunc: func(ctx context.Context, path string) (extract.Result, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return extract.Result{}, err
				}
				return extract.Result{Text: string(data), Pages: 1}, nil
			},
		},
		structurer: &MockStructurer{},
		patients:   &MockPatientDirectory{},
		records:    &MockRecordStore{},
		stagingDir: t.TempDir(),
	}
}

func (d *testDeps) processor(opts ...Option) *Processor {
	return NewProcessor(testLogger(), d.extractor, d.structurer, d.patients, d.records, d.stagingDir, opts...)
}

func stagingEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestProcessUnsupportedExtension(t *testing.T) {
	deps := newTestDeps(t)
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "scan.docx",
		Content:   []byte("irrelevant"),
	})

	assert.Nil(t, rec)
	assert.True(t, common.IsKind(err, common.KindUnsupportedFormat))
	// Rejected before any collaborator call or staging write.
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.patients.GetByIDCallCount))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.extractor.ExtractCallCount))
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}

func TestProcessPatientNotFound(t *testing.T) {
	deps := newTestDeps(t)
	deps.patients.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
		return nil, common.Ef(common.KindPatientNotFound, "patient %s not found", id)
	}
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "visit.pdf",
		Content:   []byte("%PDF-1.4"),
	})

	assert.Nil(t, rec)
	assert.True(t, common.IsKind(err, common.KindPatientNotFound))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.extractor.ExtractCallCount))
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}

func TestProcessPrestructuredJSONBypass(t *testing.T) {
	deps := newTestDeps(t)
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "export.json",
		Content:   []byte(conformantJSON),
	})

	require.NoError(t, err)
	require.NotNil(t, rec)
	// Conformant input never reaches the structuring service.
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.structurer.StructureCallCount))
	assert.Equal(t, int32(1), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))

	// Sections round-trip verbatim from the upload.
	require.NotNil(t, rec.Sections.BillingInformation)
	assert.Equal(t, "150.50", rec.Sections.BillingInformation.TotalEstimate)
	require.NotNil(t, rec.Sections.Weight)
	assert.Equal(t, 70.5, rec.Sections.Weight.Value)
	assert.Equal(t, "kg", rec.Sections.Weight.Unit)
	require.NotNil(t, rec.Sections.Notes)
	assert.Equal(t, "Follow up in 3 months.", *rec.Sections.Notes)
}

func TestProcessNonConformantJSONGoesToStructurer(t *testing.T) {
	deps := newTestDeps(t)
	deps.structurer.StructureFunc = func(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
		assert.NotEmpty(t, text)
		return &entity.RecordSections{}, []byte("{}"), nil
	}
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "partial.json",
		Content:   []byte(`{"patient_notes": "free-form export, not our shape"}`),
	})

	require.NoError(t, err)
	require.NotNil(t, rec)
	// Exactly one structuring call, no internal retries.
	assert.Equal(t, int32(1), atomic.LoadInt32(&deps.structurer.StructureCallCount))
	assert.Equal(t, int32(1), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
}

func TestProcessEmptyExtraction(t *testing.T) {
	deps := newTestDeps(t)
	deps.extractor.ExtractFunc = func(ctx context.Context, path string) (extract.Result, error) {
		return extract.Result{Text: "", Pages: 3}, nil
	}
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "scanned.pdf",
		Content:   []byte("%PDF-1.4 image-only"),
	})

	assert.Nil(t, rec)
	assert.True(t, common.IsKind(err, common.KindExtractionFailed))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.structurer.StructureCallCount))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateErrorCallCount))
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}

func TestProcessEmptyExtractionWithAuditErrors(t *testing.T) {
	deps := newTestDeps(t)
	deps.extractor.ExtractFunc = func(ctx context.Context, path string) (extract.Result, error) {
		return extract.Result{Text: "   \n  ", Pages: 1}, nil
	}
	p := deps.processor(WithAuditErrors(true))

	_, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "scanned.pdf",
		Content:   []byte("%PDF-1.4"),
	})

	assert.True(t, common.IsKind(err, common.KindExtractionFailed))
	assert.Equal(t, int32(1), atomic.LoadInt32(&deps.records.CreateErrorCallCount))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
}

func TestProcessStructuringFailure(t *testing.T) {
	t.Run("service unavailable", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.structurer.StructureFunc = func(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
			return nil, nil, common.E(common.KindServiceUnavailable, "structuring service call failed", errors.New("connection refused"))
		}
		p := deps.processor()

		rec, err := p.Process(context.Background(), Request{
			PatientID: uuid.New(),
			Filename:  "visit.pdf",
			Content:   []byte("%PDF-1.4 content"),
		})

		assert.Nil(t, rec)
		assert.True(t, common.IsKind(err, common.KindServiceUnavailable))
		assert.True(t, common.Retryable(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
	})

	t.Run("schema violation", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.structurer.StructureFunc = func(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
			return nil, []byte("not json"), common.Ef(common.KindSchemaViolation, "response does not match record schema")
		}
		p := deps.processor()

		rec, err := p.Process(context.Background(), Request{
			PatientID: uuid.New(),
			Filename:  "visit.pdf",
			Content:   []byte("%PDF-1.4 content"),
		})

		assert.Nil(t, rec)
		assert.True(t, common.IsKind(err, common.KindSchemaViolation))
		assert.False(t, common.Retryable(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
	})
}

func TestProcessInvalidBillingBlocksPersist(t *testing.T) {
	deps := newTestDeps(t)
	deps.structurer.StructureFunc = func(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
		return &entity.RecordSections{
			BillingInformation: &entity.BillingInformation{
				DiagnosisCodes: []entity.DiagnosisCode{{Code: "I10", Type: "tertiary"}},
				TotalEstimate:  "10.00",
			},
		}, []byte("{}"), nil
	}
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "visit.pdf",
		Content:   []byte("%PDF-1.4 content"),
	})

	assert.Nil(t, rec)
	assert.True(t, common.IsKind(err, common.KindSchemaViolation))
	assert.Equal(t, int32(0), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
}

func TestProcessPersistFailure(t *testing.T) {
	deps := newTestDeps(t)
	deps.records.CreateCompletedFunc = func(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID, doc entity.SourceDocument, format constants.Format, sections entity.RecordSections) (*entity.Record, error) {
		return nil, errors.New("connection reset by peer")
	}
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID: uuid.New(),
		Filename:  "visit.pdf",
		Content:   []byte("%PDF-1.4 content"),
	})

	assert.Nil(t, rec)
	assert.True(t, common.IsKind(err, common.KindPersistenceFailure))
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}

func TestProcessSuccessCleansStaging(t *testing.T) {
	deps := newTestDeps(t)
	providerID := uuid.New()
	p := deps.processor()

	rec, err := p.Process(context.Background(), Request{
		PatientID:  uuid.New(),
		ProviderID: &providerID,
		Filename:   "/uploads/2024/visit.pdf",
		Content:    []byte("%PDF-1.4 clinical text"),
	})

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "visit.pdf", rec.SourceFilename)
	require.NotNil(t, rec.ProviderID)
	assert.Equal(t, providerID, *rec.ProviderID)
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}

func TestProcessConcurrentPatients(t *testing.T) {
	deps := newTestDeps(t)
	p := deps.processor()

	patients := []uuid.UUID{uuid.New(), uuid.New()}
	records := make([]*entity.Record, len(patients))
	errs := make([]error, len(patients))

	var wg sync.WaitGroup
	for i, pid := range patients {
		wg.Add(1)
		go func(i int, pid uuid.UUID) {
			defer wg.Done()
			records[i], errs[i] = p.Process(context.Background(), Request{
				PatientID: pid,
				Filename:  "visit.pdf",
				Content:   []byte("%PDF-1.4 clinical text"),
			})
		}(i, pid)
	}
	wg.Wait()

	for i := range patients {
		require.NoError(t, errs[i])
		require.NotNil(t, records[i])
		assert.Equal(t, patients[i], records[i].PatientID)
	}
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&deps.records.CreateCompletedCallCount))
	assert.Equal(t, 0, stagingEntries(t, deps.stagingDir))
}
