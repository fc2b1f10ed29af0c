package gh

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const (
	// DefaultPageSize is the number of most recent issues fetched per call. Issues created beyond this window
	// between two checks of the same repository are not detected.
	DefaultPageSize = 30
	MaxPageSize     = 100

	DefaultTimeout = 30 * time.Second
)

type Client struct {
	client   *github.Client
	pageSize int
}

var _ interfaces.IssueSource = (*Client)(nil)

type appInstallation struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
}

type config struct {
	token    types.GitHubToken
	app      *appInstallation
	baseURL  string
	timeout  time.Duration
	pageSize int
}

type Option func(*config)

// WithToken authenticates requests with a bearer token.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithAppInstallation authenticates requests as a GitHub App installation.
func WithAppInstallation(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.app = &appInstallation{
			appID:     appID,
			installID: installID,
			pem:       pem,
		}
	}
}

// WithBaseURL overrides the REST API endpoint, e.g. for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

func WithPageSize(size int) Option {
	return func(cfg *config) {
		cfg.pageSize = size
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		timeout:  DefaultTimeout,
		pageSize: DefaultPageSize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.pageSize < 1 || MaxPageSize < cfg.pageSize {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page size is out of range", goerr.V("pageSize", cfg.pageSize))
	}
	if cfg.token != "" && cfg.app != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token and GitHub App can not be used together")
	}

	transport, err := buildTransport(cfg)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(&http.Client{
		Transport: transport,
		Timeout:   cfg.timeout,
	})

	if cfg.baseURL != "" {
		baseURL, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	return &Client{
		client:   client,
		pageSize: cfg.pageSize,
	}, nil
}

func buildTransport(cfg *config) (http.RoundTripper, error) {
	tr := http.DefaultTransport

	switch {
	case cfg.app != nil:
		if cfg.app.appID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
		}
		if cfg.app.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
		}
		if cfg.app.pem == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
		}

		itr, err := ghinstallation.New(tr, int64(cfg.app.appID), int64(cfg.app.installID), []byte(cfg.app.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("appID", cfg.app.appID),
				goerr.V("installID", cfg.app.installID),
			)
		}
		return itr, nil

	case cfg.token != "":
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)}),
			Base:   tr,
		}, nil

	default:
		return tr, nil
	}
}

// ListOpenIssues returns the most recently created open issues of repo, newest first. Pull requests are
// dropped.
func (x *Client) ListOpenIssues(ctx context.Context, repo *model.GitHubRepo) (model.Issues, error) {
	opt := &github.IssueListByRepoOptions{
		State:     types.IssueStateOpen,
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: x.pageSize,
		},
	}

	// https://docs.github.com/en/rest/issues/issues?apiVersion=2022-11-28#list-repository-issues
	items, resp, err := x.client.Issues.ListByRepo(ctx, repo.Owner, repo.RepoName, opt)
	if err != nil {
		values := []goerr.Option{
			goerr.V("owner", repo.Owner),
			goerr.V("repo", repo.RepoName),
		}
		if resp != nil {
			values = append(values, goerr.V("status", resp.StatusCode))
		}
		return nil, goerr.Wrap(err, "failed to list issues", values...)
	}

	issues := make(model.Issues, 0, len(items))
	for _, item := range items {
		if item.IsPullRequest() {
			continue
		}
		issues = append(issues, &model.Issue{
			Number:    types.IssueNumber(item.GetNumber()),
			Title:     item.GetTitle(),
			State:     item.GetState(),
			HTMLURL:   item.GetHTMLURL(),
			CreatedAt: item.GetCreatedAt().Time,
		})
	}

	logging.From(ctx).Debug("Listed open issues",
		slog.String("repo", repo.FullName()),
		slog.Int("items", len(items)),
		slog.Int("issues", len(issues)),
		slog.Int("rate_remaining", resp.Rate.Remaining),
	)

	return issues, nil
}
