package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageUpload(t *testing.T) {
	base := t.TempDir()
	req := Request{
		PatientID: uuid.New(),
		Filename:  "Visit Summary.PDF",
		Content:   []byte("%PDF-1.4 payload"),
	}

	staged, err := stageUpload(base, req, testLogger())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(staged.dir), "emr-stage-"))
	assert.Equal(t, "document.pdf", filepath.Base(staged.Path))

	data, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, req.Content, data)

	info, err := os.Stat(staged.dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestStageUploadIsolation(t *testing.T) {
	base := t.TempDir()
	req := Request{PatientID: uuid.New(), Filename: "a.json", Content: []byte(`{}`)}

	a, err := stageUpload(base, req, testLogger())
	require.NoError(t, err)
	b, err := stageUpload(base, req, testLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.dir, b.dir)

	a.Remove()
	_, err = os.Stat(a.dir)
	assert.True(t, os.IsNotExist(err))
	// the sibling staging dir is untouched
	_, err = os.Stat(b.Path)
	assert.NoError(t, err)
	b.Remove()
}

func TestStagedFileRemoveIdempotent(t *testing.T) {
	base := t.TempDir()
	staged, err := stageUpload(base, Request{Filename: "x.json", Content: []byte(`{}`)}, testLogger())
	require.NoError(t, err)

	staged.Remove()
	staged.Remove() // second call on a gone dir must not panic or log-fatal

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
