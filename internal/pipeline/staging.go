package pipeline

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/constants"
	"github.com/bryankwang/EMR-Processing/internal/common"
)

// stagedFile is a per-invocation copy of the upload. The directory is keyed
// by a fresh UUID so concurrent invocations never share staging state.
type stagedFile struct {
	dir    string
	Path   string
	logger *slog.Logger
}

func stageUpload(baseDir string, req Request, logger *slog.Logger) (*stagedFile, error) {
	dir := filepath.Join(baseDir, "emr-stage-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, common.E(common.KindPersistenceFailure, "create staging dir", err)
	}
	name := "document." + constants.NormalizeExt(filepath.Ext(req.Filename))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, req.Content, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return nil, common.E(common.KindPersistenceFailure, "write staged document", err)
	}
	return &stagedFile{dir: dir, Path: path, logger: logger}, nil
}

// Remove deletes the staged copy. Called on every exit path; staging must
// never leak files.
func (s *stagedFile) Remove() {
	if err := os.RemoveAll(s.dir); err != nil {
		s.logger.Warn("pipeline.staging.cleanup_failed", "dir", s.dir, "error", err)
	}
}
