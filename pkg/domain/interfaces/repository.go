package interfaces

import (
	"context"

	"github.com/m-mizutani/octowatch/pkg/domain/model"
)

//go:generate moq -out ../mock/cursor_repository_mock.go -pkg mock . CursorRepository

// CursorRepository persists the cursor map of the poller
type CursorRepository interface {
	// LoadCursors returns an empty map if nothing is stored yet or the stored record is corrupted.
	LoadCursors(ctx context.Context) (model.Cursors, error)
	// SaveCursors replaces the stored record with cursors.
	SaveCursors(ctx context.Context, cursors model.Cursors) error
}
