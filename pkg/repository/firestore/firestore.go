package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

const DefaultCollection types.FirestoreCollectionName = "octowatch_cursors"

// New creates a new Firestore-based repository
func New(ctx context.Context, projectID types.GoogleProjectID, databaseID types.FirestoreDatabaseID, collection types.FirestoreCollectionName) (interfaces.CursorRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID.String(), string(databaseID))
	} else {
		client, err = firestore.NewClient(ctx, projectID.String())
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	if collection == "" {
		collection = DefaultCollection
	}

	return &cursorRepository{
		client:     client,
		collection: string(collection),
	}, nil
}
