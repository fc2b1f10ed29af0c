package gcs

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/repository"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"github.com/m-mizutani/octowatch/pkg/utils/safe"
	"google.golang.org/api/option"
)

const DefaultObject = "octowatch/last_known_issues.json"

type cursorRepository struct {
	client *storage.Client
	bucket string
	object string
}

var _ interfaces.CursorRepository = (*cursorRepository)(nil)

// New creates a repository that keeps cursors in a Cloud Storage object. The document has the same format as
// the file backend.
func New(ctx context.Context, bucket, object string, options ...option.ClientOption) (interfaces.CursorRepository, error) {
	if bucket == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "bucket name is empty")
	}
	if object == "" {
		object = DefaultObject
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &cursorRepository{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

func (r *cursorRepository) obj() *storage.ObjectHandle {
	return r.client.Bucket(r.bucket).Object(r.object)
}

func (r *cursorRepository) LoadCursors(ctx context.Context) (model.Cursors, error) {
	reader, err := r.obj().NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			logging.From(ctx).Info("Cursor object not found, starting without baseline",
				slog.String("bucket", r.bucket),
				slog.String("object", r.object),
			)
			return model.Cursors{}, nil
		}
		return nil, goerr.Wrap(err, "failed to open cursor object", goerr.V("bucket", r.bucket), goerr.V("object", r.object))
	}
	defer safe.Close(reader)

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read cursor object", goerr.V("bucket", r.bucket), goerr.V("object", r.object))
	}

	cursors, err := repository.UnmarshalCursors(raw)
	if err != nil {
		logging.From(ctx).Warn("Cursor object is corrupted, starting without baseline",
			slog.String("bucket", r.bucket),
			slog.String("object", r.object),
			slog.Any("error", err),
		)
		return model.Cursors{}, nil
	}

	return cursors, nil
}

// SaveCursors uploads the whole document. The object is replaced only when the upload completes.
func (r *cursorRepository) SaveCursors(ctx context.Context, cursors model.Cursors) error {
	raw, err := repository.MarshalCursors(cursors)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := r.obj().NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(raw); err != nil {
		// cancel aborts the upload before Close commits it
		cancel()
		safe.Close(w)
		return goerr.Wrap(err, "failed to write cursor object", goerr.V("bucket", r.bucket), goerr.V("object", r.object))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to upload cursor object", goerr.V("bucket", r.bucket), goerr.V("object", r.object))
	}

	return nil
}
