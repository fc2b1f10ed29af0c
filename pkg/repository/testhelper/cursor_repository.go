package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

// TestAll runs all test cases for CursorRepository.
// This is the main entry point for testing any CursorRepository implementation. The repository is
// overwritten by every case, so it must not be shared with other tests.
func TestAll(t *testing.T, repo interfaces.CursorRepository) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		TestSaveAndLoad(t, repo)
	})
	t.Run("NilCursor", func(t *testing.T) {
		TestNilCursor(t, repo)
	})
	t.Run("RemovedKey", func(t *testing.T) {
		TestRemovedKey(t, repo)
	})
	t.Run("EmptyMap", func(t *testing.T) {
		TestEmptyMap(t, repo)
	})
	t.Run("Idempotent", func(t *testing.T) {
		TestIdempotent(t, repo)
	})
}

func newRepoURL() types.RepoURL {
	return types.RepoURL(fmt.Sprintf("https://github.com/owner-%s/repo-%s", uuid.NewString()[:8], uuid.NewString()[:8]))
}

// TestSaveAndLoad checks that a saved map is loaded back unchanged.
func TestSaveAndLoad(t *testing.T, repo interfaces.CursorRepository) {
	ctx := context.Background()

	cursors := model.Cursors{
		newRepoURL(): model.NewIssueNumber(1),
		newRepoURL(): model.NewIssueNumber(12345),
	}
	gt.NoError(t, repo.SaveCursors(ctx, cursors))

	loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.True(t, loaded.Equal(cursors))

	// update one entry
	for url := range cursors {
		cursors.Set(url, 99999)
		break
	}
	gt.NoError(t, repo.SaveCursors(ctx, cursors))
	loaded = gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.True(t, loaded.Equal(cursors))
}

// TestNilCursor checks that a repository without baseline survives a round trip as nil, not zero.
func TestNilCursor(t *testing.T, repo interfaces.CursorRepository) {
	ctx := context.Background()

	noBaseline := newRepoURL()
	cursors := model.Cursors{
		noBaseline:   nil,
		newRepoURL(): model.NewIssueNumber(0),
	}
	gt.NoError(t, repo.SaveCursors(ctx, cursors))

	loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.True(t, loaded.Equal(cursors))

	p, ok := loaded[noBaseline]
	gt.True(t, ok)
	gt.V(t, p).Equal(nil)
}

// TestRemovedKey checks that a key absent from the saved map is absent after load.
func TestRemovedKey(t *testing.T, repo interfaces.CursorRepository) {
	ctx := context.Background()

	kept, removed := newRepoURL(), newRepoURL()
	gt.NoError(t, repo.SaveCursors(ctx, model.Cursors{
		kept:    model.NewIssueNumber(3),
		removed: model.NewIssueNumber(4),
	}))
	gt.NoError(t, repo.SaveCursors(ctx, model.Cursors{
		kept: model.NewIssueNumber(5),
	}))

	loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.V(t, len(loaded)).Equal(1)
	_, ok := loaded[removed]
	gt.False(t, ok)
	n, ok := loaded.Get(kept)
	gt.True(t, ok)
	gt.V(t, n).Equal(types.IssueNumber(5))
}

// TestEmptyMap checks that saving an empty map clears the record.
func TestEmptyMap(t *testing.T, repo interfaces.CursorRepository) {
	ctx := context.Background()

	gt.NoError(t, repo.SaveCursors(ctx, model.Cursors{newRepoURL(): model.NewIssueNumber(1)}))
	gt.NoError(t, repo.SaveCursors(ctx, model.Cursors{}))

	loaded := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.V(t, loaded).NotEqual(nil)
	gt.V(t, len(loaded)).Equal(0)
}

// TestIdempotent checks that saving a loaded map does not change the record.
func TestIdempotent(t *testing.T, repo interfaces.CursorRepository) {
	ctx := context.Background()

	cursors := model.Cursors{
		newRepoURL(): model.NewIssueNumber(7),
		newRepoURL(): nil,
	}
	gt.NoError(t, repo.SaveCursors(ctx, cursors))

	first := gt.R1(repo.LoadCursors(ctx)).NoError(t)
	gt.NoError(t, repo.SaveCursors(ctx, first))
	second := gt.R1(repo.LoadCursors(ctx)).NoError(t)

	gt.True(t, second.Equal(first))
	gt.True(t, second.Equal(cursors))
}
