package pipeline

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/extract"
	"github.com/bryankwang/EMR-Processing/internal/llm"
)

var _ ContentExtractor = (*MockContentExtractor)(nil)

type MockContentExtractor struct {
	ExtractFunc      func(ctx context.Context, path string) (extract.Result, error)
	ExtractCallCount int32
}

func (m *MockContentExtractor) Extract(ctx context.Context, path string) (extract.Result, error) {
	atomic.AddInt32(&m.ExtractCallCount, 1)
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, path)
	}
	return extract.Result{}, errors.New("ExtractFunc not implemented in mock")
}

var _ PatientDirectory = (*MockPatientDirectory)(nil)

type MockPatientDirectory struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	GetByIDCallCount int32
}

func (m *MockPatientDirectory) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &entity.Patient{ID: id}, nil
}

var _ llm.Structurer = (*MockStructurer)(nil)

type MockStructurer struct {
	StructureFunc      func(ctx context.Context, text string) (*entity.RecordSections, []byte, error)
	StructureCallCount int32
}

func (m *MockStructurer) Structure(ctx context.Context, text string) (*entity.RecordSections, []byte, error) {
	atomic.AddInt32(&m.StructureCallCount, 1)
	if m.StructureFunc != nil {
		return m.StructureFunc(ctx, text)
	}
	return &entity.RecordSections{}, []byte("{}"), nil
}

var _ RecordStore = (*MockRecordStore)(nil)

type MockRecordStore struct {
	CreateCompletedFunc      func(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID, doc entity.SourceDocument, format constants.Format, sections entity.RecordSections) (*entity.Record, error)
	CreateErrorFunc          func(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID, doc entity.SourceDocument, format constants.Format, message string) (*entity.Record, error)
	CreateCompletedCallCount int32
	CreateErrorCallCount     int32
}

func (m *MockRecordStore) CreateCompleted(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID, doc entity.SourceDocument, format constants.Format, sections entity.RecordSections) (*entity.Record, error) {
	atomic.AddInt32(&m.CreateCompletedCallCount, 1)
	if m.CreateCompletedFunc != nil {
		return m.CreateCompletedFunc(ctx, patientID, providerID, doc, format, sections)
	}
	return &entity.Record{
		ID:             uuid.New(),
		PatientID:      patientID,
		ProviderID:     providerID,
		SourceFilename: doc.Filename,
		SourceFormat:   format,
		Status:         constants.RecordStatusCompleted,
		Sections:       sections,
	}, nil
}

func (m *MockRecordStore) CreateError(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID, doc entity.SourceDocument, format constants.Format, message string) (*entity.Record, error) {
	atomic.AddInt32(&m.CreateErrorCallCount, 1)
	if m.CreateErrorFunc != nil {
		return m.CreateErrorFunc(ctx, patientID, providerID, doc, format, message)
	}
	return &entity.Record{
		ID:             uuid.New(),
		PatientID:      patientID,
		SourceFilename: doc.Filename,
		SourceFormat:   format,
		Status:         constants.RecordStatusError,
		ErrorMessage:   &message,
	}, nil
}
