package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . IssueSource Notifier BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/octowatch/pkg/domain/model"
)

// IssueSource lists currently open issues of a repository, excluding pull requests.
type IssueSource interface {
	ListOpenIssues(ctx context.Context, repo *model.GitHubRepo) (model.Issues, error)
}

// Notifier delivers a notification batch to the chat destination.
type Notifier interface {
	Notify(ctx context.Context, batch *model.NotificationBatch) error
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
