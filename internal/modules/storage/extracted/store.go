package extracted

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/fsutil"
	"go.uber.org/zap"
)

const (
	// EmptyContentPlaceholder is written when OCR produced no text.
	EmptyContentPlaceholder = "No content extracted from document."
	defaultOutputName       = "extracted_document.md"
	outputPrefix            = "extracted_"
	outputExt               = ".md"
	dirPerm                 = 0o755
	filePerm                = 0o644
)

// Archiver mirrors a persisted file somewhere else. Failures are logged by
// the Store and never fail the request.
type Archiver interface {
	Archive(ctx context.Context, name string, content []byte) error
}

// Store writes extracted markdown into an output directory. Writes to the same
// derived name overwrite each other; last write wins.
type Store struct {
	dir      string
	archiver Archiver
	log      *zap.Logger
}

func NewStore(dir string, archiver Archiver, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, archiver: archiver, log: log}
}

// OutputName derives the file name for an uploaded document name.
func OutputName(originalFilename string) string {
	if originalFilename == "" {
		return defaultOutputName
	}
	base := originalFilename
	if strings.HasSuffix(strings.ToLower(base), ".pdf") {
		base = base[:len(base)-len(".pdf")]
	}
	return outputPrefix + fsutil.SafeFilename(base) + outputExt
}

// Save writes content under the name derived from originalFilename and
// returns the written path.
func (s *Store) Save(ctx context.Context, content, originalFilename string) (string, error) {
	if content == "" {
		s.log.Warn("empty content provided for saving")
		content = EmptyContentPlaceholder
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		s.log.Error("failed to create output directory", zap.String("dir", s.dir), zap.Error(err))
		return "", fmt.Errorf("create output directory %q: %w", s.dir, err)
	}

	name := OutputName(originalFilename)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		s.log.Error("failed to save extracted content", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("save extracted content: %w", err)
	}
	s.log.Info("saved extracted content", zap.String("path", path))

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, name, []byte(content)); err != nil {
			s.log.Warn("failed to archive extracted content", zap.String("name", name), zap.Error(err))
		}
	}
	return path, nil
}
