package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octowatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const DefaultReposFile = "github_repo_links.txt"

type Poll struct {
	reposFile string
	interval  time.Duration
}

func (x *Poll) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repos-file",
			Usage:       "Path to the list of repository URLs, one per line",
			Category:    "Poll",
			Value:       DefaultReposFile,
			Destination: &x.reposFile,
			Sources:     cli.EnvVars("OCTOWATCH_REPOS_FILE"),
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Minimum time between two repository checks",
			Category:    "Poll",
			Value:       usecase.DefaultPollInterval,
			Destination: &x.interval,
			Sources:     cli.EnvVars("OCTOWATCH_INTERVAL"),
		},
	}
}

func (x *Poll) ReposFile() string {
	return x.reposFile
}

func (x *Poll) PollerOptions() []usecase.PollerOption {
	return []usecase.PollerOption{
		usecase.WithPollInterval(x.interval),
	}
}

func (x Poll) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("reposFile", x.reposFile),
		slog.Duration("interval", x.interval),
	)
}
