package usecase

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"github.com/m-mizutani/octowatch/pkg/utils/safe"
)

// LoadRepositoryList reads newline separated repository URLs. Blank lines and lines starting with "#" are
// ignored, malformed lines are skipped with a warning. Order and duplicates are kept.
func LoadRepositoryList(ctx context.Context, r io.Reader) ([]*model.GitHubRepo, error) {
	logger := logging.From(ctx)

	var repos []*model.GitHubRepo
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		repo, err := model.ParseGitHubRepo(line)
		if err != nil {
			logger.Warn("Skipping malformed repository URL",
				slog.Int("line", lineNo),
				slog.String("url", line),
				slog.Any("error", err),
			)
			continue
		}
		repos = append(repos, repo)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read repository list")
	}

	if len(repos) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no valid repository in the list")
	}

	return repos, nil
}

// LoadRepositoryListFromFile loads the repository list from a file
func LoadRepositoryListFromFile(ctx context.Context, filePath string) ([]*model.GitHubRepo, error) {
	fd, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository list file", goerr.V("path", filePath))
	}
	defer safe.Close(fd)

	repos, err := LoadRepositoryList(ctx, fd)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load repository list", goerr.V("path", filePath))
	}

	logging.From(ctx).Info("Loaded repository list",
		slog.String("path", filePath),
		slog.Int("repos", len(repos)),
	)
	return repos, nil
}
