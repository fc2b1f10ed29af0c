package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
)

type cursorRepository struct {
	mu      sync.RWMutex
	cursors model.Cursors
}

var _ interfaces.CursorRepository = (*cursorRepository)(nil)

// New creates a new in-memory repository
func New() interfaces.CursorRepository {
	return &cursorRepository{
		cursors: model.Cursors{},
	}
}

func (r *cursorRepository) LoadCursors(ctx context.Context) (model.Cursors, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cursors.Clone(), nil
}

func (r *cursorRepository) SaveCursors(ctx context.Context, cursors model.Cursors) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursors = cursors.Clone()
	return nil
}
