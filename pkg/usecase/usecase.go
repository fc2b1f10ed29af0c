package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

// ListCursors returns the persisted cursors. It reads the store, not the state of a running Poller.
func (x *UseCase) ListCursors(ctx context.Context) (model.Cursors, error) {
	if x.clients.CursorRepository() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "cursor repository is not configured")
	}

	cursors, err := x.clients.CursorRepository().LoadCursors(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load cursors")
	}
	return cursors, nil
}
