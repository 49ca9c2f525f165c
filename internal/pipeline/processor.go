// Package pipeline coordinates the end-to-end EMR processing flow: stage the
// upload, extract text, structure it (or take the pre-structured JSON
// bypass), validate, and persist the record atomically.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/billing"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/entity"
	"github.com/bryankwang/EMR-Processing/internal/llm"
)

// Processor coordinates content extraction then structuring then persistence.
type Processor struct {
	logger      *slog.Logger
	extractor   ContentExtractor
	structurer  llm.Structurer
	patients    PatientDirectory
	records     RecordStore
	stagingDir  string
	auditErrors bool // persist ERROR records for failed attempts
}

type Option func(*Processor)

// WithAuditErrors makes failed attempts (post patient lookup) leave an
// ERROR-status record carrying only the raw document and the error message.
func WithAuditErrors(enabled bool) Option {
	return func(p *Processor) { p.auditErrors = enabled }
}

func NewProcessor(
	logger *slog.Logger,
	extractor ContentExtractor,
	structurer llm.Structurer,
	patients PatientDirectory,
	records RecordStore,
	stagingDir string,
	opts ...Option,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:     logger,
		extractor:  extractor,
		structurer: structurer,
		patients:   patients,
		records:    records,
		stagingDir: stagingDir,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs one document-processing attempt. Each invocation is
// independent: staging is invocation-scoped and cleaned up on every exit
// path, there are no internal retries, and at most one record is created.
func (p *Processor) Process(ctx context.Context, req Request) (*entity.Record, error) {
	format := constants.MapExtToFormat(filepath.Ext(req.Filename))
	if format == "" {
		// Rejected before staging: no files, no external calls, no writes.
		return nil, common.Ef(common.KindUnsupportedFormat,
			"unsupported file extension %q (only .pdf and .json are accepted)", filepath.Ext(req.Filename))
	}

	patient, err := p.patients.GetByID(ctx, req.PatientID)
	if err != nil {
		p.logger.Error("pipeline.patient_lookup.failed", "patient_id", req.PatientID, "err", err)
		return nil, err
	}

	staged, err := stageUpload(p.stagingDir, req, p.logger)
	if err != nil {
		return nil, err
	}
	defer staged.Remove()

	doc := entity.SourceDocument{Filename: filepath.Base(req.Filename), Content: req.Content}

	sections, err := p.extractAndStructure(ctx, req, format, staged.Path)
	if err != nil {
		p.recordFailure(ctx, req, doc, format, err)
		return nil, err
	}

	if err := billing.Validate(sections.BillingInformation); err != nil {
		p.logger.Error("pipeline.billing_invalid", "patient_id", patient.ID, "err", err)
		p.recordFailure(ctx, req, doc, format, err)
		return nil, err
	}

	rec, err := p.records.CreateCompleted(ctx, req.PatientID, req.ProviderID, doc, format, *sections)
	if err != nil {
		p.logger.Error("pipeline.persist.failed", "patient_id", patient.ID, "err", err)
		return nil, common.E(common.KindPersistenceFailure, "create record", err)
	}

	p.logger.Info("pipeline.process.ok",
		"patient_id", patient.ID,
		"record_id", rec.ID,
		"format", format,
		"has_billing", rec.Sections.BillingInformation != nil,
	)
	return rec, nil
}

// extractAndStructure runs content extraction, the pre-structured JSON
// bypass, and the structuring service call.
func (p *Processor) extractAndStructure(ctx context.Context, req Request, format constants.Format, stagedPath string) (*entity.RecordSections, error) {
	res, err := p.extractor.Extract(ctx, stagedPath)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "patient_id", req.PatientID, "err", err)
		return nil, err
	}
	if strings.TrimSpace(res.Text) == "" {
		// Image-only or unreadable document: soft extractor result, hard
		// pipeline failure.
		p.logger.Warn("pipeline.extract.empty", "patient_id", req.PatientID, "format", format, "pages", res.Pages)
		return nil, common.Ef(common.KindExtractionFailed, "no text content extracted from %s", req.Filename)
	}

	if format == constants.JSON {
		// Self-describing input bypasses the structuring service entirely,
		// keeping previously-structured data byte-faithful.
		if sections, ok := llm.ParseConformant(req.Content); ok {
			p.logger.Info("pipeline.bypass.prestructured", "patient_id", req.PatientID)
			return sections, nil
		}
	}

	sections, _, err := p.structurer.Structure(ctx, res.Text)
	if err != nil {
		p.logger.Error("pipeline.structure.failed", "patient_id", req.PatientID, "err", err)
		return nil, err
	}
	return sections, nil
}

// recordFailure optionally leaves an ERROR audit record. It never coexists
// with a COMPLETED record: it runs only on paths that abort before persist.
func (p *Processor) recordFailure(ctx context.Context, req Request, doc entity.SourceDocument, format constants.Format, cause error) {
	if !p.auditErrors {
		return
	}
	if _, err := p.records.CreateError(ctx, req.PatientID, req.ProviderID, doc, format, cause.Error()); err != nil {
		p.logger.Warn("pipeline.audit_record.failed", "patient_id", req.PatientID, "err", err)
	}
}
