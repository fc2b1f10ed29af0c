package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  types.GoogleProjectID
	databaseID types.FirestoreDatabaseID
	collection types.FirestoreCollectionName
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID for the firestore cursor backend",
			Category:    "Cursor store",
			Sources:     cli.EnvVars("OCTOWATCH_FIRESTORE_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Cursor store",
			Sources:     cli.EnvVars("OCTOWATCH_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: (*string)(&x.databaseID),
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection to keep cursors in",
			Category:    "Cursor store",
			Sources:     cli.EnvVars("OCTOWATCH_FIRESTORE_COLLECTION"),
			Value:       string(firestore.DefaultCollection),
			Destination: (*string)(&x.collection),
		},
	}
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collection", x.collection),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (interfaces.CursorRepository, error) {
	if x.projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--firestore-project-id is required for firestore cursor backend")
	}
	return firestore.New(ctx, x.projectID, x.databaseID, x.collection)
}
