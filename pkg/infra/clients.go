package infra

import (
	"net/http"

	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
)

type Clients struct {
	issueSource      interfaces.IssueSource
	notifier         interfaces.Notifier
	cursorRepository interfaces.CursorRepository
	bqClient         interfaces.BigQuery
}

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) IssueSource() interfaces.IssueSource {
	return x.issueSource
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) CursorRepository() interfaces.CursorRepository {
	return x.cursorRepository
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithIssueSource(client interfaces.IssueSource) Option {
	return func(x *Clients) {
		x.issueSource = client
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithCursorRepository(repo interfaces.CursorRepository) Option {
	return func(x *Clients) {
		x.cursorRepository = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
