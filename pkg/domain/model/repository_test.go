package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

func TestParseGitHubRepo(t *testing.T) {
	testCases := map[string]struct {
		input    string
		owner    string
		repoName string
		isErr    bool
	}{
		"https URL": {
			input:    "https://github.com/secmon-lab/octovy",
			owner:    "secmon-lab",
			repoName: "octovy",
		},
		"URL with issues path": {
			input:    "https://github.com/golang/go/issues",
			owner:    "golang",
			repoName: "go",
		},
		"URL with .git suffix": {
			input:    "https://github.com/golang/go.git",
			owner:    "golang",
			repoName: "go",
		},
		"ssh remote": {
			input:    "git@github.com:m-mizutani/goerr.git",
			owner:    "m-mizutani",
			repoName: "goerr",
		},
		"without scheme": {
			input:    "github.com/urfave/cli",
			owner:    "urfave",
			repoName: "cli",
		},
		"trailing spaces are trimmed": {
			input:    "  https://github.com/urfave/cli  ",
			owner:    "urfave",
			repoName: "cli",
		},
		"owner only": {
			input: "https://github.com/golang",
			isErr: true,
		},
		"not github": {
			input: "https://gitlab.com/gitlab-org/gitlab",
			isErr: true,
		},
		"github.com in path of another host": {
			input: "https://example.com/github.com/golang/go",
			isErr: true,
		},
		"subdomain of another host": {
			input: "https://notgithub.com/golang/go",
			isErr: true,
		},
		"empty": {
			input: "",
			isErr: true,
		},
		"only .git as repo name": {
			input: "https://github.com/golang/.git",
			isErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo, err := model.ParseGitHubRepo(tc.input)
			if tc.isErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrInvalidRepository))
				return
			}

			gt.NoError(t, err)
			gt.V(t, repo.Owner).Equal(tc.owner)
			gt.V(t, repo.RepoName).Equal(tc.repoName)
		})
	}
}

func TestGitHubRepoURLIsKeptVerbatim(t *testing.T) {
	repo := gt.R1(model.ParseGitHubRepo("https://github.com/golang/go/")).NoError(t)
	gt.V(t, repo.URL).Equal(types.RepoURL("https://github.com/golang/go/"))
	gt.V(t, repo.FullName()).Equal("golang/go")
	gt.V(t, repo.IssuesURL()).Equal("https://github.com/golang/go/issues")
}
