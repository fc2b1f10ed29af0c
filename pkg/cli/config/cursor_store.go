package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository/file"
	"github.com/m-mizutani/octowatch/pkg/repository/gcs"
	"github.com/m-mizutani/octowatch/pkg/repository/postgres"
	"github.com/urfave/cli/v3"
)

const (
	CursorBackendFile      = "file"
	CursorBackendGCS       = "gcs"
	CursorBackendFirestore = "firestore"
	CursorBackendPostgres  = "postgres"
)

type CursorStore struct {
	backend     string
	filePath    string
	gcsBucket   string
	gcsObject   string
	postgresDSN types.PostgresDSN `masq:"secret"`
	firestore   Firestore
}

func (x *CursorStore) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:        "cursor-backend",
			Usage:       "Cursor store backend [file|gcs|firestore|postgres]",
			Category:    "Cursor store",
			Value:       CursorBackendFile,
			Destination: &x.backend,
			Sources:     cli.EnvVars("OCTOWATCH_CURSOR_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "cursor-file",
			Usage:       "Path to the cursor file for the file backend",
			Category:    "Cursor store",
			Value:       file.DefaultPath,
			Destination: &x.filePath,
			Sources:     cli.EnvVars("OCTOWATCH_CURSOR_FILE"),
		},
		&cli.StringFlag{
			Name:        "cursor-gcs-bucket",
			Usage:       "Cloud Storage bucket for the gcs backend",
			Category:    "Cursor store",
			Destination: &x.gcsBucket,
			Sources:     cli.EnvVars("OCTOWATCH_CURSOR_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "cursor-gcs-object",
			Usage:       "Cloud Storage object name for the gcs backend",
			Category:    "Cursor store",
			Value:       gcs.DefaultObject,
			Destination: &x.gcsObject,
			Sources:     cli.EnvVars("OCTOWATCH_CURSOR_GCS_OBJECT"),
		},
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "PostgreSQL DSN for the postgres backend",
			Category:    "Cursor store",
			Destination: (*string)(&x.postgresDSN),
			Sources:     cli.EnvVars("OCTOWATCH_POSTGRES_DSN"),
		},
	}, x.firestore.Flags()...)
}

// NewRepository creates the cursor repository of the selected backend.
func (x *CursorStore) NewRepository(ctx context.Context) (interfaces.CursorRepository, error) {
	switch x.backend {
	case CursorBackendFile:
		return file.New(x.filePath)

	case CursorBackendGCS:
		if x.gcsBucket == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "--cursor-gcs-bucket is required for gcs cursor backend")
		}
		return gcs.New(ctx, x.gcsBucket, x.gcsObject)

	case CursorBackendFirestore:
		return x.firestore.NewRepository(ctx)

	case CursorBackendPostgres:
		if x.postgresDSN == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "--postgres-dsn is required for postgres cursor backend")
		}
		return postgres.New(ctx, x.postgresDSN)

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown cursor backend", goerr.V("backend", x.backend))
	}
}

func (x CursorStore) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("backend", x.backend)}
	switch x.backend {
	case CursorBackendFile:
		attrs = append(attrs, slog.String("path", x.filePath))
	case CursorBackendGCS:
		attrs = append(attrs, slog.String("bucket", x.gcsBucket), slog.String("object", x.gcsObject))
	case CursorBackendFirestore:
		attrs = append(attrs, slog.Any("firestore", &x.firestore))
	case CursorBackendPostgres:
		attrs = append(attrs, slog.Int("dsn.len", len(x.postgresDSN)))
	}
	return slog.GroupValue(attrs...)
}
