package postgres_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository/postgres"
	"github.com/m-mizutani/octowatch/pkg/repository/testhelper"
	"github.com/m-mizutani/octowatch/pkg/utils/testutil"
)

func TestPostgresCursorRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	repo, err := postgres.New(context.Background(), types.PostgresDSN(dsn))
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}

func TestNew(t *testing.T) {
	_, err := postgres.New(context.Background(), "")
	gt.Error(t, err)
}
