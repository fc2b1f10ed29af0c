package gcs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/repository/gcs"
	"github.com/m-mizutani/octowatch/pkg/repository/testhelper"
	"github.com/m-mizutani/octowatch/pkg/utils/testutil"
)

func TestGCSCursorRepository(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")

	ctx := context.Background()
	object := fmt.Sprintf("octowatch-test/%s/cursors.json", time.Now().Format("20060102_150405"))
	repo := gt.R1(gcs.New(ctx, bucket, object)).NoError(t)

	t.Run("missing object is empty map", func(t *testing.T) {
		cursors := gt.R1(repo.LoadCursors(ctx)).NoError(t)
		gt.V(t, len(cursors)).Equal(0)
	})

	testhelper.TestAll(t, repo)
}

func TestNew(t *testing.T) {
	_, err := gcs.New(context.Background(), "", "cursors.json")
	gt.Error(t, err)
}
