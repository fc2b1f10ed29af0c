package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token    types.GitHubToken `masq:"secret"`
	apiURL   string
	timeout  time.Duration
	pageSize int64

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for API requests (optional, raises rate limit)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint, e.g. for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a GitHub API request",
			Category:    "GitHub",
			Value:       gh.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "page-size",
			Usage:       "Number of most recent open issues fetched per check (1-100)",
			Category:    "GitHub",
			Value:       gh.DefaultPageSize,
			Destination: &x.pageSize,
			Sources:     cli.EnvVars("OCTOWATCH_PAGE_SIZE"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of token",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("OCTOWATCH_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) appEnabled() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

func (x *GitHub) New() (*gh.Client, error) {
	options := []gh.Option{
		gh.WithTimeout(x.timeout),
		gh.WithPageSize(int(x.pageSize)),
	}
	if x.apiURL != "" {
		options = append(options, gh.WithBaseURL(x.apiURL))
	}
	if x.token != "" {
		options = append(options, gh.WithToken(x.token))
	}
	if x.appEnabled() {
		options = append(options, gh.WithAppInstallation(x.appID, x.installID, x.privateKey))
	}

	return gh.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("apiURL", x.apiURL),
		slog.Duration("timeout", x.timeout),
		slog.Int64("pageSize", x.pageSize),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
