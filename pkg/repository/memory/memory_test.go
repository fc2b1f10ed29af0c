package memory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository/memory"
	"github.com/m-mizutani/octowatch/pkg/repository/testhelper"
)

func TestMemoryCursorRepository(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}

func TestMemoryCursorRepositoryCopiesMap(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	cursors := model.Cursors{"https://github.com/a/b": model.NewIssueNumber(1)}
	gt.NoError(t, repo.SaveCursors(ctx, cursors))
	cursors.Set("https://github.com/a/b", 2)

	loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	n, _ := loaded.Get("https://github.com/a/b")
	gt.V(t, n).Equal(types.IssueNumber(1))

	loaded.Set("https://github.com/a/b", 3)
	again := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	n, _ = again.Get("https://github.com/a/b")
	gt.V(t, n).Equal(types.IssueNumber(1))
}
