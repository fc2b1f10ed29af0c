package model

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ptnGitHubRepo matches https://github.com/owner/repo, github.com/owner/repo/issues and git@github.com:owner/repo.git
var ptnGitHubRepo = regexp.MustCompile(`(?:^|//|@)github\.com[/:]([^/\s?#]+)/([^/\s?#]+)`)

// GitHubRepo is a monitored repository. URL is kept as written in the repository list and is used as cursor key.
type GitHubRepo struct {
	URL      types.RepoURL `validate:"required"`
	Owner    string        `validate:"required,excludesall=/:"`
	RepoName string        `validate:"required,excludesall=/:"`
}

// ParseGitHubRepo resolves owner and repository name from a GitHub URL.
func ParseGitHubRepo(raw string) (*GitHubRepo, error) {
	url := strings.TrimSpace(raw)
	m := ptnGitHubRepo.FindStringSubmatch(url)
	if m == nil {
		return nil, goerr.Wrap(types.ErrInvalidRepository, "not a GitHub repository URL", goerr.V("url", url))
	}

	repo := &GitHubRepo{
		URL:      types.RepoURL(url),
		Owner:    m[1],
		RepoName: strings.TrimSuffix(m[2], ".git"),
	}
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (x *GitHubRepo) Validate() error {
	if err := validate.Struct(x); err != nil {
		return goerr.Wrap(types.ErrInvalidRepository, err.Error(), goerr.V("url", x.URL))
	}
	return nil
}

// FullName returns "owner/repo".
func (x *GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// IssuesURL returns the web page listing the repository's issues.
func (x *GitHubRepo) IssuesURL() string {
	return "https://github.com/" + x.FullName() + "/issues"
}

func (x *GitHubRepo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.URL.String()),
		slog.String("owner", x.Owner),
		slog.String("repo", x.RepoName),
	)
}
