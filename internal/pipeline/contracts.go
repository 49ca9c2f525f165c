package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/extract"
)

// Request is one document-processing attempt.
type Request struct {
	PatientID  uuid.UUID
	ProviderID *uuid.UUID // optional: the professional who uploaded the document
	Filename   string
	Content    []byte
}

// ContentExtractor turns a staged document into a text payload.
type ContentExtractor interface {
	Extract(ctx context.Context, path string) (extract.Result, error)
}

// PatientDirectory is the external patient collaborator lookup.
type PatientDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
}

// RecordStore persists processing outcomes. CreateCompleted must be a single
// atomic write; concurrent readers never observe a partial record. A given
// attempt results in at most one create.
type RecordStore interface {
	CreateCompleted(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID,
		doc entity.SourceDocument, format constants.Format, sections entity.RecordSections) (*entity.Record, error)
	CreateError(ctx context.Context, patientID uuid.UUID, providerID *uuid.UUID,
		doc entity.SourceDocument, format constants.Format, message string) (*entity.Record, error)
}
