package extract

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
)

func newTestExtractor() *Extractor {
	return NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestExtractJSON(t *testing.T) {
	e := newTestExtractor()
	path := writeTemp(t, "visit.json", []byte(`{"patient":"John Doe","visit_date":"2024-03-01"}`))

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, constants.JSON, res.Format)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, `"patient": "John Doe"`)
	assert.Contains(t, res.Text, `"visit_date": "2024-03-01"`)
}

func TestExtractMalformedJSON(t *testing.T) {
	e := newTestExtractor()
	path := writeTemp(t, "broken.json", []byte(`{"patient": `))

	_, err := e.Extract(context.Background(), path)
	assert.True(t, common.IsKind(err, common.KindMalformedInput))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor()
	path := writeTemp(t, "notes.txt", []byte("plain text"))

	_, err := e.Extract(context.Background(), path)
	assert.True(t, common.IsKind(err, common.KindUnsupportedFormat))
}

func TestExtractCaseInsensitiveExtension(t *testing.T) {
	e := newTestExtractor()
	path := writeTemp(t, "EXPORT.JSON", []byte(`{"a": 1}`))

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, constants.JSON, res.Format)
}

func TestExtractUnreadablePDFIsSoftFailure(t *testing.T) {
	e := newTestExtractor()
	// not a PDF at all; extraction yields empty text, not an error
	path := writeTemp(t, "corrupt.pdf", []byte("this is not a pdf"))

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, res.Text)
	assert.Equal(t, constants.PDF, res.Format)
}
