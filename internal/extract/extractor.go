// Package extract converts raw EMR documents (PDF or JSON) into a single
// extraction-ready text payload for the structuring stage.
package extract

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
)

// Result summarizes one content extraction.
type Result struct {
	Text   string
	Format constants.Format
	Pages  int // PDF page count; 1 for JSON
}

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract reads the staged document at path and returns its text payload.
// PDF pages are concatenated in page order; JSON is re-serialized to a
// canonical indented form so downstream stages always receive text. An
// unreadable or image-only PDF yields an empty string, not an error; the
// caller treats empty output as a soft failure.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	switch format {
	case constants.PDF:
		text, pages, err := e.pdfToText(ctx, path)
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text, Format: constants.PDF, Pages: pages}, nil
	case constants.JSON:
		text, err := e.jsonToText(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text, Format: constants.JSON, Pages: 1}, nil
	default:
		return Result{}, common.Ef(common.KindUnsupportedFormat, "unsupported file type: %s", filepath.Ext(path))
	}
}
