package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/octowatch/pkg/domain/model"
)

type UseCase interface {
	ListCursors(ctx context.Context) (model.Cursors, error)
}
