package firestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository/firestore"
	"github.com/m-mizutani/octowatch/pkg/repository/testhelper"
	"github.com/m-mizutani/octowatch/pkg/utils/testutil"
)

func TestFirestoreCursorRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	collection := types.FirestoreCollectionName(time.Now().Format("cursor_test_20060102_150405"))
	repo, err := firestore.New(ctx, types.GoogleProjectID(projectID), types.FirestoreDatabaseID(databaseID), collection)
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	id, err := firestore.ToFirestoreID("https://github.com/owner1/repo1")
	gt.NoError(t, err)
	gt.V(t, len(id)).Equal(64)
	gt.V(t, id).NotEqual("https://github.com/owner1/repo1")

	same := gt.R1(firestore.ToFirestoreID("https://github.com/owner1/repo1")).NoError(t)
	gt.V(t, same).Equal(id)

	other := gt.R1(firestore.ToFirestoreID("https://github.com/owner1/repo1/")).NoError(t)
	gt.V(t, other).NotEqual(id)

	_, err = firestore.ToFirestoreID("")
	gt.Error(t, err)
}
