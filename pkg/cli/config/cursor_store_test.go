package config_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/cli/config"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

func TestCursorStore(t *testing.T) {
	ctx := context.Background()

	t.Run("file backend by default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cursors.json")

		var cfg config.CursorStore
		parseFlags(t, cfg.Flags(), "--cursor-file", path)

		repo := gt.R1(cfg.NewRepository(ctx)).NoError(t)
		gt.NoError(t, repo.SaveCursors(ctx, model.Cursors{"https://github.com/a/b": model.NewIssueNumber(1)}))
		loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
		gt.V(t, len(loaded)).Equal(1)
	})

	t.Run("unknown backend", func(t *testing.T) {
		var cfg config.CursorStore
		parseFlags(t, cfg.Flags(), "--cursor-backend", "redis")
		_, err := cfg.NewRepository(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("backends require their settings", func(t *testing.T) {
		for _, backend := range []string{"gcs", "firestore", "postgres"} {
			var cfg config.CursorStore
			parseFlags(t, cfg.Flags(), "--cursor-backend", backend)
			_, err := cfg.NewRepository(ctx)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		}
	})
}

func TestBigQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without project", func(t *testing.T) {
		var cfg config.BigQuery
		parseFlags(t, cfg.Flags())
		gt.False(t, cfg.Enabled())

		client, err := cfg.NewClient(ctx)
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("dataset is required", func(t *testing.T) {
		var cfg config.BigQuery
		parseFlags(t, cfg.Flags(), "--bigquery-project-id", "my-project")
		_, err := cfg.NewClient(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestPoll(t *testing.T) {
	var cfg config.Poll
	parseFlags(t, cfg.Flags())
	gt.V(t, cfg.ReposFile()).Equal("github_repo_links.txt")
	gt.A(t, cfg.PollerOptions()).Length(1)
}
