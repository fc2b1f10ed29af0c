package file

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/repository"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"github.com/m-mizutani/octowatch/pkg/utils/safe"
)

const (
	DefaultPath = "last_known_issues.json"

	fileMode os.FileMode = 0o644
)

type cursorRepository struct {
	path string
}

var _ interfaces.CursorRepository = (*cursorRepository)(nil)

// New creates a repository that keeps cursors in a JSON file at path.
func New(path string) (interfaces.CursorRepository, error) {
	if path == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "cursor file path is empty")
	}
	return &cursorRepository{path: path}, nil
}

// LoadCursors reads the cursor file. A missing or corrupted file is an empty map.
func (r *cursorRepository) LoadCursors(ctx context.Context) (model.Cursors, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.From(ctx).Info("Cursor file not found, starting without baseline", slog.String("path", r.path))
			return model.Cursors{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read cursor file", goerr.V("path", r.path))
	}

	cursors, err := repository.UnmarshalCursors(raw)
	if err != nil {
		logging.From(ctx).Warn("Cursor file is corrupted, starting without baseline",
			slog.String("path", r.path),
			slog.Any("error", err),
		)
		return model.Cursors{}, nil
	}

	return cursors, nil
}

// SaveCursors replaces the cursor file atomically: a temporary file in the same directory is written,
// synced and renamed over the target.
func (r *cursorRepository) SaveCursors(ctx context.Context, cursors model.Cursors) error {
	raw, err := repository.MarshalCursors(cursors)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary cursor file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(fileMode); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpPath)
		return goerr.Wrap(err, "failed to set cursor file mode", goerr.V("path", tmpPath))
	}

	if err := writeAndSync(tmp, raw); err != nil {
		safe.Remove(tmpPath)
		return goerr.Wrap(err, "failed to write temporary cursor file", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		safe.Remove(tmpPath)
		return goerr.Wrap(err, "failed to replace cursor file", goerr.V("path", r.path))
	}

	return nil
}

func writeAndSync(f *os.File, raw []byte) error {
	if _, err := f.Write(raw); err != nil {
		safe.Close(f)
		return err
	}
	if err := f.Sync(); err != nil {
		safe.Close(f)
		return err
	}
	return f.Close()
}
