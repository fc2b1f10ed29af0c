package repository_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/repository"
)

func TestMarshalCursors(t *testing.T) {
	cursors := model.Cursors{
		"https://github.com/a/b": model.NewIssueNumber(42),
		"https://github.com/c/d": nil,
	}

	raw := gt.R1(repository.MarshalCursors(cursors)).NoError(t)
	gt.V(t, string(raw)).Equal("{\n" +
		"    \"https://github.com/a/b\": 42,\n" +
		"    \"https://github.com/c/d\": null\n" +
		"}\n")

	decoded := gt.R1(repository.UnmarshalCursors(raw)).NoError(t)
	gt.True(t, decoded.Equal(cursors))
}

func TestUnmarshalCursors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		cursors := gt.R1(repository.UnmarshalCursors([]byte("  \n"))).NoError(t)
		gt.V(t, len(cursors)).Equal(0)
	})

	t.Run("null document", func(t *testing.T) {
		cursors := gt.R1(repository.UnmarshalCursors([]byte("null"))).NoError(t)
		gt.V(t, cursors).NotEqual(nil)
	})

	t.Run("corrupted document", func(t *testing.T) {
		_, err := repository.UnmarshalCursors([]byte(`{"https://github.com/a/b": "x"`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrCorruptedCursors))
	})

	t.Run("non integer value", func(t *testing.T) {
		_, err := repository.UnmarshalCursors([]byte(`{"https://github.com/a/b": "12"}`))
		gt.True(t, errors.Is(err, repository.ErrCorruptedCursors))
	})
}
